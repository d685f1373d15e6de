package config

import (
	"strings"
	"testing"

	"github.com/indianbuddy/personal-finance-manager/internal/logger"
)

func init() {
	logger.Init("test")
}

var configKeys = []string{
	"ENV", "PORT", "TIMEZONE", "SEED_SAMPLE_DATA", "CATEGORIES_FILE", "RECENT_LIMIT",
	"HISTORY_MONTHS", "DASHBOARD_CACHE_MAX_COST", "AUDIT_DB_DRIVER", "AUDIT_SQLITE_PATH",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.Env != "development" || cfg.Timezone != "Asia/Kolkata" {
		t.Errorf("unexpected server defaults %+v", cfg)
	}
	if cfg.RecentLimit != 15 || cfg.HistoryMonths != 6 || cfg.DashboardCacheMaxCost != 1000 {
		t.Errorf("unexpected ledger defaults %+v", cfg)
	}
	if cfg.SeedSampleData || cfg.AuditEnabled() {
		t.Error("seeding and audit should be off by default")
	}
	if cfg.Location().String() != "Asia/Kolkata" {
		t.Errorf("unexpected location %s", cfg.Location())
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("SEED_SAMPLE_DATA", "true")
	t.Setenv("RECENT_LIMIT", "5")
	t.Setenv("AUDIT_DB_DRIVER", "SQLite")
	t.Setenv("AUDIT_SQLITE_PATH", "/tmp/audit.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || !cfg.SeedSampleData || cfg.RecentLimit != 5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.AuditDriver != AuditDriverSQLite || !cfg.AuditEnabled() {
		t.Errorf("expected sqlite audit driver, got %q", cfg.AuditDriver)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad int", map[string]string{"RECENT_LIMIT": "lots"}, "RECENT_LIMIT"},
		{"bad bool", map[string]string{"SEED_SAMPLE_DATA": "maybe"}, "SEED_SAMPLE_DATA"},
		{"bad port", map[string]string{"PORT": "http"}, "PORT"},
		{"bad timezone", map[string]string{"TIMEZONE": "Mars/Olympus"}, "TIMEZONE"},
		{"history too long", map[string]string{"HISTORY_MONTHS": "48"}, "HISTORY_MONTHS"},
		{"negative cache", map[string]string{"DASHBOARD_CACHE_MAX_COST": "-1"}, "DASHBOARD_CACHE_MAX_COST"},
		{"unknown driver", map[string]string{"AUDIT_DB_DRIVER": "mysql"}, "AUDIT_DB_DRIVER"},
		{"memory sqlite", map[string]string{"AUDIT_DB_DRIVER": "sqlite", "AUDIT_SQLITE_PATH": ":memory:"}, "AUDIT_SQLITE_PATH"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error mentioning %s, got %v", tc.want, err)
			}
		})
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := &Config{Port: "x", Timezone: "Asia/Kolkata", RecentLimit: 0, HistoryMonths: 0}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, key := range []string{"PORT", "RECENT_LIMIT", "HISTORY_MONTHS"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("expected %s in %v", key, err)
		}
	}
}
