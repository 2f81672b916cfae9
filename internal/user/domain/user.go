package domain

import "time"

type ID string

// User is the sole persistent entity: an account keyed by its unique email.
// The password is only ever held as a bcrypt digest.
type User struct {
	ID           ID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
