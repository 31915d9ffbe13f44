package main

import (
	"context"
	"fmt"

	"github.com/bancaplus/backoffice/internal/core/ports"
	"github.com/bancaplus/backoffice/internal/infrastructure/config"
	mongodb "github.com/bancaplus/backoffice/internal/infrastructure/db/mongo"
	"github.com/bancaplus/backoffice/internal/infrastructure/db/postgres"
)

// datastore bundles the repositories of the selected driver.
type datastore struct {
	name     string
	accounts ports.AccountRepository
	grants   ports.GrantRepository
	records  ports.ErrorRecordRepository
	banks    ports.BankRepository
	ping     func(ctx context.Context) error
	close    func(ctx context.Context) error
}

func openDatastore(ctx context.Context, cfg *config.Config) (*datastore, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		store, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN, Timeout: cfg.RequestTimeout})
		if err != nil {
			return nil, err
		}
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close(ctx)
			return nil, err
		}
		return &datastore{
			name:     "postgres",
			accounts: postgres.NewAccountRepository(store),
			grants:   postgres.NewGrantRepository(store),
			records:  postgres.NewErrorRecordRepository(store),
			banks:    postgres.NewBankRepository(store),
			ping:     store.Ping,
			close:    store.Close,
		}, nil

	case config.DriverMongo:
		store, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database, Timeout: cfg.RequestTimeout})
		if err != nil {
			return nil, err
		}
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = store.Close(ctx)
			return nil, err
		}
		db := store.Database()
		return &datastore{
			name:     "mongodb",
			accounts: mongodb.NewAccountRepository(db),
			grants:   mongodb.NewGrantRepository(db),
			records:  mongodb.NewErrorRecordRepository(db),
			banks:    mongodb.NewBankRepository(db),
			ping:     store.Ping,
			close:    store.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported datastore driver %q", cfg.Driver)
	}
}
