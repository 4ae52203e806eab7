// Package config provides environment configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultTokenTTL is how long issued tokens stay valid. Tokens are not
	// refreshable; expiry forces a new login.
	DefaultTokenTTL = 7 * 24 * time.Hour

	// DefaultMinPasswordLength is the minimum accepted password length at registration.
	DefaultMinPasswordLength = 8

	// MinTokenSecretLength guards against trivially brute-forceable HMAC secrets.
	MinTokenSecretLength = 16
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port        int
	DatabaseURL string

	TokenSecret       string
	TokenTTL          time.Duration
	MinPasswordLength int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := ValidateEnv([]string{"DATABASE_URL", "TOKEN_SECRET"}); err != nil {
		return nil, err
	}
	if err := ValidateTokenSecret(); err != nil {
		return nil, err
	}

	port, err := strconv.Atoi(GetEnvOrDefault("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	minPassword, err := strconv.Atoi(GetEnvOrDefault("MIN_PASSWORD_LENGTH", strconv.Itoa(DefaultMinPasswordLength)))
	if err != nil || minPassword < 1 {
		return nil, errors.New("invalid MIN_PASSWORD_LENGTH")
	}

	return &Config{
		Port:              port,
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		TokenSecret:       os.Getenv("TOKEN_SECRET"),
		TokenTTL:          getEnvDuration("TOKEN_TTL", DefaultTokenTTL),
		MinPasswordLength: minPassword,
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           0,
		ReadTimeout:       getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:      getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:       getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
	}, nil
}

// ValidateEnv validates that all required environment variables are set
func ValidateEnv(requiredVars []string) error {
	var missing []string

	for _, varName := range requiredVars {
		if os.Getenv(varName) == "" {
			missing = append(missing, varName)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateTokenSecret ensures TOKEN_SECRET meets minimum security requirements
func ValidateTokenSecret() error {
	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		return errors.New("TOKEN_SECRET is required")
	}
	if len(secret) < MinTokenSecretLength {
		return fmt.Errorf("TOKEN_SECRET must be at least %d characters", MinTokenSecretLength)
	}

	return nil
}

// GetEnvOrDefault retrieves an environment variable or returns a default value
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// MustGetEnv retrieves an environment variable or panics
func MustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
