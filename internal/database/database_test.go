package database

import (
	"path/filepath"
	"testing"

	"github.com/guillaumevincent/monpatrimoine/internal/config"
)

func TestNewConfig_RejectsUnknownDriver(t *testing.T) {
	if _, err := NewConfig(&config.Config{DBDriver: "mysql"}); err == nil {
		t.Fatal("expected an error for an unsupported driver")
	}
}

func TestConfig_URLs(t *testing.T) {
	cfg, err := NewConfig(&config.Config{
		DBDriver: DriverPostgres, DBHost: "db", DBPort: "5432",
		DBUser: "u", DBPassword: "p", DBName: "n", DBSSLMode: "disable",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := cfg.DSN(), "host=db port=5432 user=u password=p dbname=n sslmode=disable"; got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
	if got, want := cfg.MigrateURL(), "postgres://u:p@db:5432/n?sslmode=disable"; got != want {
		t.Errorf("MigrateURL() = %q, want %q", got, want)
	}
}

func TestManager_SQLiteMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	m, err := NewManager(&Config{Driver: DriverSQLite, SQLitePath: path})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer m.Close()

	if err := m.Migrate(); err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	for _, table := range []string{"kv_entries", "audit_logs"} {
		if !m.DB().Migrator().HasTable(table) {
			t.Errorf("table %q should exist after migration", table)
		}
	}
}
