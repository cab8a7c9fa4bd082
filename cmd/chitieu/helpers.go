package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/yunz06/quan-li-chi-tieu/internal/cli"
	"github.com/yunz06/quan-li-chi-tieu/internal/config"
	"github.com/yunz06/quan-li-chi-tieu/internal/ledger"
	"github.com/yunz06/quan-li-chi-tieu/internal/service"
	"github.com/yunz06/quan-li-chi-tieu/internal/storage"
)

// initStorage opens the configured database and applies pending migrations.
func initStorage(ctx context.Context) (service.Storage, error) {
	store, err := openStorage()
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// openStorage opens the configured database without migrating.
func openStorage() (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	return storage.NewSQLiteStorage(dbPath)
}

// newLedger wires a ledger with terminal notifications.
func newLedger(store service.Storage) *ledger.Ledger {
	return ledger.New(store, cli.NewTerminalNotifier(os.Stdout))
}

// reportDir returns the configured report output directory.
func reportDir() string {
	dir := viper.GetString("report.dir")
	if dir == "" {
		return config.DefaultReportDir()
	}
	return config.ExpandPath(dir)
}
