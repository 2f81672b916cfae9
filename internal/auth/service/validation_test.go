package service

import (
	"strings"
	"testing"
)

func TestValidateInput_RegisterValid(t *testing.T) {
	err := validateInput(RegisterInput{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestValidateInput_RegisterBadEmail(t *testing.T) {
	err := validateInput(RegisterInput{
		Name:     "Ann",
		Email:    "ann-at-example",
		Password: "hunter2",
	})

	vErr, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}

	if vErr.Error() != "Enter a valid email address" {
		t.Errorf("unexpected message: %q", vErr.Error())
	}
}

func TestValidateInput_RegisterPasswordTooShort(t *testing.T) {
	err := validateInput(RegisterInput{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "abc",
	})

	vErr, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}

	if !strings.Contains(vErr.Error(), "too short") {
		t.Errorf("unexpected message: %q", vErr.Error())
	}
}

func TestValidateInput_RegisterPasswordTooLong(t *testing.T) {
	err := validateInput(RegisterInput{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: strings.Repeat("x", 73),
	})

	vErr, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}

	if !strings.Contains(vErr.Error(), "too long") {
		t.Errorf("unexpected message: %q", vErr.Error())
	}
}

func TestValidateInput_LoginRequiredFields(t *testing.T) {
	if err := validateInput(LoginInput{Email: "", Password: "hunter2"}); err == nil {
		t.Error("expected error for missing email")
	}

	if err := validateInput(LoginInput{Email: "ann@example.com", Password: ""}); err == nil {
		t.Error("expected error for missing password")
	}

	// Login does not second-guess the email shape; an unknown string simply
	// fails lookup as "account not found".
	if err := validateInput(LoginInput{Email: "not-an-email", Password: "x"}); err != nil {
		t.Errorf("expected non-email login identifier to pass validation, got %v", err)
	}
}
