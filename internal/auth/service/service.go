package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abenov/authweb/internal/common/clock"
	"github.com/abenov/authweb/internal/common/crypto"
	"github.com/abenov/authweb/internal/common/logger"
	"github.com/abenov/authweb/internal/observability/metrics"
	"github.com/abenov/authweb/internal/user/domain"
	"github.com/abenov/authweb/internal/user/repository"
)

type AuthService struct {
	repo        repository.Repository
	hasher      crypto.PasswordHasher
	idGenerator crypto.IDGenerator
	clock       clock.Clock
	log         *logger.Logger
}

func NewAuthService(
	repo repository.Repository,
	hasher crypto.PasswordHasher,
	idGenerator crypto.IDGenerator,
	clk clock.Clock,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		repo:        repo,
		hasher:      hasher,
		idGenerator: idGenerator,
		clock:       clk,
		log:         log,
	}
}

// Register creates a new account. An existence query answers the common
// duplicate case before any hashing work, but the unique index on
// users.email stays authoritative: a concurrent insert that slips past the
// query still loses at the index and comes back as ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	s.log.WithFields(ctx, logger.Fields{
		"email":  input.Email,
		"action": "register_attempt",
	}).Info("register attempt")

	if err := validateInput(input); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "register_validation_failed",
		}).Warnf("register validation failed: %v", err)
		metrics.RegistrationsTotal.WithLabelValues("invalid_input").Inc()
		return domain.User{}, err
	}

	email := normalizeEmail(input.Email)

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  email,
			"action": "register_existence_check_failed",
		}).Errorf("register failed: existence check error: %v", err)
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return domain.User{}, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		s.log.WithFields(ctx, logger.Fields{
			"email":  email,
			"action": "register_email_taken",
		}).Warn("register failed: email already exists")
		metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		return domain.User{}, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "register_hash_failed",
		}).Errorf("register failed: password hash error: %v", err)
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return domain.User{}, err
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "register_id_generation_failed",
		}).Errorf("register failed: id generation error: %v", err)
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return domain.User{}, err
	}

	user := domain.User{
		ID:           domain.ID(id),
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			s.log.WithFields(ctx, logger.Fields{
				"email":  user.Email,
				"action": "register_email_taken",
			}).Warn("register failed: email already exists")
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return domain.User{}, ErrEmailTaken
		}
		s.log.WithFields(ctx, logger.Fields{
			"email":  user.Email,
			"action": "register_create_failed",
		}).Errorf("register failed: %v", err)
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"email":   user.Email,
		"user_id": string(user.ID),
		"action":  "register_success",
	}).Info("register success")
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()

	return user, nil
}

// Login verifies the submitted credentials against the stored bcrypt digest.
// The two failure modes stay distinguishable, matching the user-facing copy
// of the forms.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (domain.User, error) {
	s.log.WithFields(ctx, logger.Fields{
		"email":  input.Email,
		"action": "login_attempt",
	}).Info("login attempt")

	if err := validateInput(input); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "login_validation_failed",
		}).Warnf("login validation failed: %v", err)
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_input").Inc()
		return domain.User{}, err
	}

	user, err := s.repo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"email":  input.Email,
				"action": "login_user_not_found",
			}).Warn("login failed: account not found")
			metrics.LoginAttemptsTotal.WithLabelValues("not_found").Inc()
			return domain.User{}, ErrAccountNotFound
		}
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "login_fetch_failed",
		}).Errorf("login failed: %v", err)
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "login_invalid_password",
		}).Warn("login failed: invalid password")
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_password").Inc()
		return domain.User{}, ErrInvalidCredentials
	}

	s.log.WithFields(ctx, logger.Fields{
		"email":   user.Email,
		"user_id": string(user.ID),
		"action":  "login_success",
	}).Info("login success")
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	return user, nil
}

// FindUser loads an account by id for session-backed requests.
func (s *AuthService) FindUser(ctx context.Context, id domain.ID) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrAccountNotFound
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
