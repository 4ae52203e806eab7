package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/whimsy")
	t.Setenv("TOKEN_SECRET", "0123456789abcdef")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 8, cfg.MinPasswordLength)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TOKEN_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_ShortSecretRejected(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/whimsy")
	t.Setenv("TOKEN_SECRET", "short")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/whimsy")
	t.Setenv("TOKEN_SECRET", "0123456789abcdef")
	t.Setenv("PORT", "3001")
	t.Setenv("TOKEN_TTL", "24h")
	t.Setenv("MIN_PASSWORD_LENGTH", "12")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.MinPasswordLength)
}

func TestValidateEnv(t *testing.T) {
	t.Setenv("PRESENT_VAR", "value")
	t.Setenv("ABSENT_VAR", "")

	assert.NoError(t, ValidateEnv([]string{"PRESENT_VAR"}))
	assert.Error(t, ValidateEnv([]string{"PRESENT_VAR", "ABSENT_VAR"}))
}
