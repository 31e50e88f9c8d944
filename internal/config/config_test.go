package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Empty(t, cfg.AdminEmails)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/test.db")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRY", "30m")
	t.Setenv("ADMIN_EMAILS", " Admin@Example.com, ,ops@example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 30*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, "/tmp/test.db", cfg.DSN())
	assert.Equal(t, []string{"admin@example.com", "ops@example.com"}, cfg.AdminEmails)
	assert.True(t, cfg.IsAdminEmail("ADMIN@example.com "))
	assert.False(t, cfg.IsAdminEmail("user@example.com"))
}

func TestValidate(t *testing.T) {
	cfg := &Config{DBDriver: "postgres"}
	assert.EqualError(t, cfg.Validate(), "JWT_SECRET environment variable is required")

	cfg.JWTSecret = "s"
	assert.EqualError(t, cfg.Validate(), "DB_PASSWORD environment variable is required")

	cfg.DBDriver = "mongo"
	assert.Error(t, cfg.Validate())
}
