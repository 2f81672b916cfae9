package config

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadWebConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/authweb")
	t.Setenv("SESSION_SECRET", testSecret)

	cfg, err := LoadWebConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("expected default request timeout 5s, got %v", cfg.RequestTimeout)
	}

	if cfg.CookieSecure {
		t.Error("expected CookieSecure to default to false")
	}
}

func TestLoadWebConfig_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SESSION_SECRET", testSecret)

	_, err := LoadWebConfig()
	if !errors.Is(err, ErrMissingRequiredEnv) {
		t.Fatalf("expected ErrMissingRequiredEnv, got %v", err)
	}
}

func TestLoadWebConfig_ShortSessionSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/authweb")
	t.Setenv("SESSION_SECRET", "too-short")

	_, err := LoadWebConfig()
	if !errors.Is(err, ErrInvalidSessionSecret) {
		t.Fatalf("expected ErrInvalidSessionSecret, got %v", err)
	}
}

func TestLoadWebConfig_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/authweb")
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("REQUEST_TIMEOUT", "10s")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := LoadWebConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.HTTPPort != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.HTTPPort)
	}

	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("expected request timeout 10s, got %v", cfg.RequestTimeout)
	}

	if !cfg.CookieSecure {
		t.Error("expected CookieSecure to be true")
	}
}
