package service

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already exists")
)

// ValidationError is a form-recoverable input error; handlers surface its
// message to the user the same way they surface the auth errors above.
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
