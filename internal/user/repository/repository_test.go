package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	if !isUniqueViolation(uniqueErr) {
		t.Error("expected 23505 to be reported as a unique violation")
	}

	if !isUniqueViolation(fmt.Errorf("exec failed: %w", uniqueErr)) {
		t.Error("expected wrapped 23505 to be reported as a unique violation")
	}

	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("expected foreign key violation not to be reported as unique violation")
	}

	if isUniqueViolation(errors.New("connection refused")) {
		t.Error("expected plain error not to be reported as unique violation")
	}
}
