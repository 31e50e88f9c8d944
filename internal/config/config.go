package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Database
	DBDriver   string `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"prakriti_db"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"prakriti.db"`

	// Auth
	JWTSecret  string        `env:"JWT_SECRET"`
	JWTExpiry  time.Duration `env:"JWT_EXPIRY" envDefault:"1h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	// Accounts with these emails are created as admins and promoted by the
	// migrate command.
	AdminEmails []string `env:"ADMIN_EMAILS" envSeparator:","`

	// Server
	Port                string `env:"PORT" envDefault:"5000"`
	CORSOrigins         string `env:"CORS_ORIGINS" envDefault:"*"`
	RateLimitPerMinute  int    `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	AuthRateLimitPerMin int    `env:"AUTH_RATE_LIMIT_PER_MINUTE" envDefault:"10"`

	// Logging
	LogRetention     time.Duration `env:"LOG_RETENTION" envDefault:"720h"`
	LogFlushInterval time.Duration `env:"LOG_FLUSH_INTERVAL" envDefault:"5s"`

	// Error tracking
	SentryDSN string `env:"SENTRY_DSN"`
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.AdminEmails = normalizeEmails(cfg.AdminEmails)
	return &cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable is required")
	}
	switch c.DBDriver {
	case "postgres":
		if c.DBPassword == "" {
			return errors.New("DB_PASSWORD environment variable is required")
		}
	case "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

func (c *Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.SQLitePath
	}
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// IsAdminEmail reports whether email is in the admin seed list.
func (c *Config) IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, e := range c.AdminEmails {
		if e == email {
			return true
		}
	}
	return false
}

func normalizeEmails(list []string) []string {
	result := make([]string, 0, len(list))
	for _, e := range list {
		if trimmed := strings.ToLower(strings.TrimSpace(e)); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
