package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/abenov/authweb/internal/common/constants"
)

var (
	ErrMissingRequiredEnv   = errors.New("missing required environment variable")
	ErrInvalidSessionSecret = errors.New("SESSION_SECRET must be at least 32 bytes")
)

type WebConfig struct {
	HTTPPort       string
	DatabaseURL    string
	SessionSecret  string
	CookieSecure   bool
	RequestTimeout time.Duration
}

func LoadWebConfig() (WebConfig, error) {
	databaseURL, err := mustEnv("DATABASE_URL")
	if err != nil {
		return WebConfig{}, err
	}

	sessionSecret, err := mustEnv("SESSION_SECRET")
	if err != nil {
		return WebConfig{}, err
	}

	if err := validateSessionSecret(sessionSecret); err != nil {
		return WebConfig{}, err
	}

	return WebConfig{
		HTTPPort:       getEnv("HTTP_PORT", constants.DefaultHTTPPort),
		DatabaseURL:    databaseURL,
		SessionSecret:  sessionSecret,
		CookieSecure:   getBoolEnv("COOKIE_SECURE", false),
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
	}, nil
}

func validateSessionSecret(secret string) error {
	if len(secret) < constants.SessionSecretMinLength {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidSessionSecret, len(secret))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getBoolEnv(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
