// Package database opens the audit database and applies its schema
// migrations. Both SQLite and PostgreSQL are supported.
package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/indianbuddy/personal-finance-manager/internal/config"
	"github.com/indianbuddy/personal-finance-manager/internal/logger"
)

//go:embed migrations
var migrationsFS embed.FS

// Manager handles database operations
type Manager struct {
	db     *gorm.DB
	config *Config
}

// NewManager creates a new database manager
func NewManager(cfg *Config) (*Manager, error) {
	db, err := gorm.Open(dialector(cfg), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if cfg.Driver == config.AuditDriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return &Manager{db: db, config: cfg}, nil
}

func dialector(cfg *Config) gorm.Dialector {
	if cfg.Driver == config.AuditDriverSQLite {
		return sqlite.Open(cfg.SQLitePath)
	}
	return postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true,
	})
}

// Migrator wraps a migrate instance together with the connection it owns.
type Migrator struct {
	*migrate.Migrate
	conn *sql.DB
}

// Close releases the migration source and its dedicated connection.
func (m *Migrator) Close() {
	srcErr, dbErr := m.Migrate.Close()
	if srcErr != nil {
		logger.Get().Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Get().Warnf("migrate database close error: %v", dbErr)
	}
	if m.conn != nil {
		_ = m.conn.Close()
	}
}

// NewMigrator builds a migrator for the configured driver. It uses its own
// connection so closing it never touches the GORM pool.
func (m *Manager) NewMigrator() (*Migrator, error) {
	src, err := iofs.New(migrationsFS, "migrations/"+m.config.Driver)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	if m.config.Driver == config.AuditDriverSQLite {
		conn, err := sql.Open("sqlite3", m.config.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open migration database: %w", err)
		}
		driver, err := sqlite3.WithInstance(conn, &sqlite3.Config{})
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to create sqlite driver: %w", err)
		}
		mig, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to create migrate instance: %w", err)
		}
		return &Migrator{Migrate: mig, conn: conn}, nil
	}

	conn, err := sql.Open("postgres", m.config.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to open migration database: %w", err)
	}
	driver, err := migratepostgres.WithInstance(conn, &migratepostgres.Config{})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}
	mig, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return &Migrator{Migrate: mig, conn: conn}, nil
}

// RunMigrations applies pending SQL migrations.
func (m *Manager) RunMigrations() error {
	logger.Get().Info("Running database migrations...")

	mig, err := m.NewMigrator()
	if err != nil {
		return err
	}
	defer mig.Close()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the GORM connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
