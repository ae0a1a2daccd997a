package main

import (
	"fmt"

	"github.com/guillaumevincent/monpatrimoine/internal/config"
	"github.com/guillaumevincent/monpatrimoine/internal/database"
	"github.com/guillaumevincent/monpatrimoine/internal/logger"
	"github.com/guillaumevincent/monpatrimoine/internal/store"
)

// openLedger loads the configuration and opens the ledger of the configured
// database. The returned function closes the database.
func openLedger() (*store.Ledger, *config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := dbManager.Migrate(); err != nil {
		_ = dbManager.Close()
		return nil, nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	closeFn := func() {
		if err := dbManager.Close(); err != nil {
			logger.Get().Warnw("failed to close database", "error", err)
		}
	}
	return store.NewLedger(store.NewKV(dbManager.DB()), cfg.StorageVersion), cfg, closeFn, nil
}
