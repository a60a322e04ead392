package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/mindfulmoments/internal/buildinfo"
	"github.com/dmitrijs2005/mindfulmoments/internal/cli"
	"github.com/dmitrijs2005/mindfulmoments/internal/config"
	"github.com/dmitrijs2005/mindfulmoments/internal/logging"
	"github.com/dmitrijs2005/mindfulmoments/internal/models"
	"github.com/dmitrijs2005/mindfulmoments/internal/services"
	"github.com/dmitrijs2005/mindfulmoments/internal/storage"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	if err := run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}

}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	w, closeLog, err := logging.OpenOutput(cfg.LogOutput)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := logging.New(cfg.LogLevel, w)
	if err != nil {
		return err
	}

	hasher, err := services.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return err
	}

	tables, err := openTables(ctx, cfg)
	if err != nil {
		return err
	}
	defer tables.close()

	creds, err := services.NewCredentialStore(ctx, tables.users, hasher, logger)
	if err != nil {
		return err
	}
	entries, err := services.NewEntryStore(ctx, tables.entries, logger)
	if err != nil {
		return err
	}

	logger.Debug(ctx, "stores ready", "driver", cfg.StorageDriver,
		"users", tables.users.Location(), "entries", tables.entries.Location())

	app := cli.NewApp(creds, entries, logger, os.Stdin, os.Stdout)
	return app.Run(ctx)
}

type backend struct {
	users   storage.Table[models.AccountRecord]
	entries storage.Table[[]models.JournalEntry]
	close   func() error
}

// openTables returns the credential and entry tables for the configured
// storage driver.
func openTables(ctx context.Context, cfg *config.Config) (*backend, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		db, err := storage.OpenSQLite(ctx, cfg.SQLitePath())
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return &backend{
			users:   storage.NewSQLiteTable[models.AccountRecord](db, storage.NamespaceUsers),
			entries: storage.NewSQLiteTable[[]models.JournalEntry](db, storage.NamespaceEntries),
			close:   db.Close,
		}, nil
	case config.DriverJSON:
		return &backend{
			users:   storage.NewJSONFile[models.AccountRecord](cfg.UsersPath()),
			entries: storage.NewJSONFile[[]models.JournalEntry](cfg.EntriesPath()),
			close:   func() error { return nil },
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
