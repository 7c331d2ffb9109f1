package database

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Connection configuration. DATABASE_URL wins when set (the deploy
// story for managed Postgres); otherwise the DSN is composed from the
// discrete DB_* variables. Pool knobs apply either way.
const (
	envDatabaseURL = "DATABASE_URL"

	envHost     = "DB_HOST"
	envPort     = "DB_PORT"
	envUser     = "DB_USER"
	envPassword = "DB_PASSWORD"
	envName     = "DB_NAME"
	envSSLMode  = "DB_SSLMODE"

	envMaxOpenConns    = "DB_MAX_OPEN_CONNS"
	envMaxIdleConns    = "DB_MAX_IDLE_CONNS"
	envConnMaxLifetime = "DB_CONN_MAX_LIFETIME"
	envConnMaxIdleTime = "DB_CONN_MAX_IDLE_TIME"
)

// Config holds the resolved database configuration.
type Config struct {
	// DSN is the full connection string handed to the pgx driver.
	DSN string
	// Database is the logical database name (migration bookkeeping).
	Database string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// LoadConfigFromEnv resolves the connection target and pool limits.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 15 * time.Minute,
	}

	if raw := strings.TrimSpace(os.Getenv(envDatabaseURL)); raw != "" {
		cfg.DSN = raw
		cfg.Database = databaseNameFromURL(raw)
	} else {
		dsn, database, err := composeDSN()
		if err != nil {
			return Config{}, err
		}
		cfg.DSN = dsn
		cfg.Database = database
	}

	if err := applyPoolEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validatePool(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// composeDSN builds a key=value DSN from the discrete variables. The
// password has no default on purpose.
func composeDSN() (dsn, database string, err error) {
	password := os.Getenv(envPassword)
	if password == "" {
		return "", "", fmt.Errorf("%s is required when %s is not set", envPassword, envDatabaseURL)
	}

	port := envOr(envPort, "5432")
	if _, convErr := strconv.Atoi(port); convErr != nil {
		return "", "", fmt.Errorf("invalid %s %q: %w", envPort, port, convErr)
	}

	database = envOr(envName, "kura")
	dsn = fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		envOr(envHost, "localhost"),
		port,
		envOr(envUser, "kura"),
		password,
		database,
		envOr(envSSLMode, "disable"),
	)
	return dsn, database, nil
}

func applyPoolEnv(cfg *Config) error {
	var err error
	if cfg.MaxOpenConns, err = intEnv(envMaxOpenConns, cfg.MaxOpenConns); err != nil {
		return err
	}
	if cfg.MaxIdleConns, err = intEnv(envMaxIdleConns, cfg.MaxIdleConns); err != nil {
		return err
	}
	if cfg.ConnMaxLifetime, err = durationEnv(envConnMaxLifetime, cfg.ConnMaxLifetime); err != nil {
		return err
	}
	if cfg.ConnMaxIdleTime, err = durationEnv(envConnMaxIdleTime, cfg.ConnMaxIdleTime); err != nil {
		return err
	}
	return nil
}

func (c Config) validatePool() error {
	if c.MaxOpenConns < 1 {
		return fmt.Errorf("%s must be at least 1", envMaxOpenConns)
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("%s cannot be negative", envMaxIdleConns)
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return fmt.Errorf("%s (%d) cannot exceed %s (%d)",
			envMaxIdleConns, c.MaxIdleConns, envMaxOpenConns, c.MaxOpenConns)
	}
	return nil
}

// databaseNameFromURL pulls the database name out of a postgres:// URL
// for migration bookkeeping; key=value DSNs or opaque URLs fall back
// to "kura".
func databaseNameFromURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err == nil {
		if name := strings.TrimPrefix(parsed.Path, "/"); name != "" {
			return name
		}
	}
	return "kura"
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return value, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return value, nil
}
