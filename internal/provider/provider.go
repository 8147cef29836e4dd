// Package provider opens the organization and cohort repositories selected
// by DATA_SOURCE.
package provider

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blaisecz/wellness-outcomes/internal/config"
	"github.com/blaisecz/wellness-outcomes/internal/logging"
	"github.com/blaisecz/wellness-outcomes/internal/repository"
	"github.com/blaisecz/wellness-outcomes/internal/seed"
	"gorm.io/gorm"
)

// Set is an opened data source.
type Set struct {
	Organizations repository.OrganizationRepository
	// Users is served through Cache.
	Users repository.UserRepository
	Cache *repository.CachedUserRepository

	close func() error
}

// Close releases the underlying connection, if any.
func (s *Set) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open builds the repositories for cfg.DataSource.
func Open(ctx context.Context, cfg *config.Config) (*Set, error) {
	var (
		orgs    repository.OrganizationRepository
		users   repository.UserRepository
		closeFn func() error
	)

	switch cfg.DataSource {
	case config.DataSourceSynthetic:
		store := repository.NewMemoryStore(seed.Generate(cfg.DataSeed))
		orgs, users = store, store
		logging.Info().Int64("seed", cfg.DataSeed).Msg("serving synthetic cohort")

	case config.DataSourceFile:
		dataset, err := seed.LoadDataset(cfg.DataFile)
		if err != nil {
			return nil, err
		}
		store := repository.NewMemoryStore(dataset)
		orgs, users = store, store
		logging.Info().Str("file", cfg.DataFile).Int("users", len(dataset.Users)).Msg("serving dataset file")

	case config.DataSourcePostgres:
		db, sqlDB, err := openPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		orgs = repository.NewOrganizationRepository(db)
		users = repository.NewUserRepository(db)
		closeFn = sqlDB.Close

	default:
		return nil, fmt.Errorf("unknown DATA_SOURCE %q (want %s, %s or %s)", cfg.DataSource,
			config.DataSourceSynthetic, config.DataSourceFile, config.DataSourcePostgres)
	}

	cache, err := repository.NewCachedUserRepository(users, cfg.CohortCacheSize)
	if err != nil {
		if closeFn != nil {
			_ = closeFn()
		}
		return nil, err
	}

	return &Set{
		Organizations: orgs,
		Users:         cache,
		Cache:         cache,
		close:         closeFn,
	}, nil
}

// connect is swapped in tests.
var connect = config.NewDatabase

// openPostgres connects and prepares the schema. The connection is closed
// when any step after connecting fails.
func openPostgres(ctx context.Context, cfg *config.Config) (*gorm.DB, *sql.DB, error) {
	db, err := connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.Seed {
		logging.Info().Msg("Seeding database with synthetic cohort (SEED=true)")
		err = seed.Run(ctx, db, seed.Generate(cfg.DataSeed))
	} else if err = db.WithContext(ctx).AutoMigrate(repository.Models()...); err != nil {
		err = fmt.Errorf("failed to migrate: %w", err)
	}
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}
	return db, sqlDB, nil
}
