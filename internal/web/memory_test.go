package web

import (
	"context"
	"sync"

	"github.com/abenov/authweb/internal/user/domain"
	"github.com/abenov/authweb/internal/user/repository"
)

// memoryRepo mirrors the Postgres repository's contract, including the
// duplicate-email rejection that the unique index provides.
type memoryRepo struct {
	mu          sync.Mutex
	users       map[string]domain.User
	createCalls int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[string]domain.User)}
}

func (m *memoryRepo) Create(ctx context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.createCalls++
	if _, ok := m.users[user.Email]; ok {
		return repository.ErrEmailTaken
	}
	m.users[user.Email] = user
	return nil
}

func (m *memoryRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func (m *memoryRepo) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return domain.User{}, repository.ErrUserNotFound
}

func (m *memoryRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.users[email]
	return ok, nil
}

func (m *memoryRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

func (m *memoryRepo) get(email string) (domain.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[email]
	return user, ok
}
