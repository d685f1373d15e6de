// Package config loads application settings from the environment, with an
// optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on hosts without a zoneinfo database

	"github.com/joho/godotenv"

	"github.com/indianbuddy/personal-finance-manager/internal/logger"
)

// Audit database drivers.
const (
	AuditDriverNone     = ""
	AuditDriverSQLite   = "sqlite"
	AuditDriverPostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	// Server
	Env  string
	Port string

	// Ledger
	Timezone       string
	SeedSampleData bool
	CategoriesFile string
	RecentLimit    int
	HistoryMonths  int

	// Dashboard view cache; 0 disables it.
	DashboardCacheMaxCost int64

	// Audit trail
	AuditDriver     string
	AuditSQLitePath string

	// Database (postgres audit driver)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		logger.Get().Debug("no .env file found, using process environment")
	}

	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv() (*Config, error) {
	var errs []error
	intVar := func(key string, def int) int {
		v, err := getEnvInt(key, def)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}

	seed, err := getEnvBool("SEED_SAMPLE_DATA", false)
	if err != nil {
		errs = append(errs, err)
	}

	cfg := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		Timezone:       getEnv("TIMEZONE", "Asia/Kolkata"),
		SeedSampleData: seed,
		CategoriesFile: getEnv("CATEGORIES_FILE", ""),
		RecentLimit:    intVar("RECENT_LIMIT", 15),
		HistoryMonths:  intVar("HISTORY_MONTHS", 6),

		DashboardCacheMaxCost: int64(intVar("DASHBOARD_CACHE_MAX_COST", 1000)),

		AuditDriver:     strings.ToLower(getEnv("AUDIT_DB_DRIVER", AuditDriverNone)),
		AuditSQLitePath: getEnv("AUDIT_SQLITE_PATH", "audit.db"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "finance"),
		DBPassword: getEnv("DB_PASSWORD", "finance"),
		DBName:     getEnv("DB_NAME", "finance"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
	return cfg, errors.Join(errs...)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := strconv.ParseUint(c.Port, 10, 16); err != nil {
		errs = append(errs, fmt.Errorf("PORT %q is not a valid port", c.Port))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err))
	}
	if c.RecentLimit < 1 {
		errs = append(errs, fmt.Errorf("RECENT_LIMIT must be at least 1, got %d", c.RecentLimit))
	}
	if c.HistoryMonths < 1 || c.HistoryMonths > 24 {
		errs = append(errs, fmt.Errorf("HISTORY_MONTHS must be between 1 and 24, got %d", c.HistoryMonths))
	}
	if c.DashboardCacheMaxCost < 0 {
		errs = append(errs, fmt.Errorf("DASHBOARD_CACHE_MAX_COST must not be negative, got %d", c.DashboardCacheMaxCost))
	}

	switch c.AuditDriver {
	case AuditDriverNone, AuditDriverPostgres:
	case AuditDriverSQLite:
		if c.AuditSQLitePath == "" || strings.Contains(c.AuditSQLitePath, ":memory:") {
			errs = append(errs, errors.New("AUDIT_SQLITE_PATH must name a database file"))
		}
	default:
		errs = append(errs, fmt.Errorf("AUDIT_DB_DRIVER %q is not one of sqlite, postgres", c.AuditDriver))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Location returns the configured time zone. Call after Validate.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// AuditEnabled reports whether an audit database is configured.
func (c *Config) AuditEnabled() bool {
	return c.AuditDriver != AuditDriverNone
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue, fmt.Errorf("%s %q is not an integer", key, raw)
	}
	return v, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue, fmt.Errorf("%s %q is not a boolean", key, raw)
	}
	return v, nil
}
