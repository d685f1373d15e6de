package main

import (
	"fmt"
	"os"

	"github.com/indianbuddy/personal-finance-manager/internal/catalog"
	"github.com/indianbuddy/personal-finance-manager/internal/config"
	"github.com/indianbuddy/personal-finance-manager/internal/database"
	"github.com/indianbuddy/personal-finance-manager/internal/ledger"
	"github.com/indianbuddy/personal-finance-manager/internal/logger"
	"github.com/indianbuddy/personal-finance-manager/internal/server"
	"github.com/indianbuddy/personal-finance-manager/internal/services"
)

// @title           Daily Finance Tracker API
// @version         1.0
// @description     Single-user income and expense tracker with Indian currency formatting, dashboard statistics and chart series.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	cat, err := catalog.Load(appConfig.CategoriesFile)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	l := ledger.New(cat)
	if appConfig.SeedSampleData {
		l.Seed(ledger.SampleTransactions())
		log.Infow("seeded sample transactions", "count", l.Len())
	}

	store := services.NewStore(l, services.ClockIn(appConfig.Location()))

	cache, err := services.NewViewCache(appConfig.DashboardCacheMaxCost)
	if err != nil {
		return err
	}
	defer cache.Close()

	audit, closeAudit, err := openAudit(appConfig)
	if err != nil {
		return err
	}
	defer closeAudit()

	router := server.NewRouter(server.Deps{
		Ledger:    services.NewLedgerService(store, audit, appConfig.RecentLimit),
		Dashboard: services.NewDashboardService(store, cache, appConfig.HistoryMonths),
		Audit:     audit,
	})

	log.Infof("Starting finance tracker on port %s (timezone %s)", appConfig.Port, appConfig.Timezone)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// openAudit connects the audit database and applies migrations when an audit
// driver is configured. Without one, audit calls are no-ops.
func openAudit(cfg *config.Config) (services.AuditServicer, func(), error) {
	if !cfg.AuditEnabled() {
		return services.NewNopAuditService(), func() {}, nil
	}

	dbConfig, err := database.NewConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		_ = dbManager.Close()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	closeFn := func() {
		if err := dbManager.Close(); err != nil {
			logger.Get().Warnf("audit database close error: %v", err)
		}
	}
	return services.NewAuditService(dbManager.DB()), closeFn, nil
}
