package database

import (
	"fmt"
	"net/url"

	"github.com/indianbuddy/personal-finance-manager/internal/config"
)

// Config holds database configuration
type Config struct {
	Driver     string
	SQLitePath string

	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewConfig extracts the audit database settings from the app config.
func NewConfig(cfg *config.Config) (*Config, error) {
	switch cfg.AuditDriver {
	case config.AuditDriverSQLite, config.AuditDriverPostgres:
	default:
		return nil, fmt.Errorf("audit database driver %q is not supported", cfg.AuditDriver)
	}

	return &Config{
		Driver:     cfg.AuditDriver,
		SQLitePath: cfg.AuditSQLitePath,
		Host:       cfg.DBHost,
		Port:       cfg.DBPort,
		User:       cfg.DBUser,
		Password:   cfg.DBPassword,
		DBName:     cfg.DBName,
		SSLMode:    cfg.DBSSLMode,
	}, nil
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL returns the PostgreSQL connection URL used by the migrator.
func (c *Config) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}
