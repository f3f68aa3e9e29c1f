package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/willobee/FarmPatch_Go/internal/concurrency"
	"github.com/willobee/FarmPatch_Go/internal/config"
	"github.com/willobee/FarmPatch_Go/internal/database"
	"github.com/willobee/FarmPatch_Go/internal/database/postgres"
	"github.com/willobee/FarmPatch_Go/internal/economy"
	"github.com/willobee/FarmPatch_Go/internal/farm"
	"github.com/willobee/FarmPatch_Go/internal/item"
	"github.com/willobee/FarmPatch_Go/internal/land"
	"github.com/willobee/FarmPatch_Go/internal/progression"
	"github.com/willobee/FarmPatch_Go/internal/server"
	"github.com/willobee/FarmPatch_Go/internal/user"
)

// SetupDatabase connects the pool and applies pending migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(cfg.GetDBConnString(),
		database.DefaultMaxConnections, 5*time.Minute, 30*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return pool, nil
}

// LoadCatalog loads and validates the item catalog from disk.
func LoadCatalog(cfg *config.Config) (*item.Catalog, error) {
	loader := item.NewLoader()
	itemCfg, err := loader.Load(cfg.ItemsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load items config: %w", err)
	}

	catalog, err := loader.Build(itemCfg)
	if err != nil {
		return nil, fmt.Errorf("invalid items config: %w", err)
	}

	slog.Info("Item catalog loaded", "path", cfg.ItemsConfigPath, "items", catalog.Len())
	return catalog, nil
}

// BuildServices wires the repository, the shared lock manager and the domain
// services. Every service sees the same lock manager so per-player mutations
// serialize across packages.
func BuildServices(cfg *config.Config, pool *pgxpool.Pool, catalog *item.Catalog) (server.Services, error) {
	curve, err := progression.NewCurve(cfg.ProgressionCurve)
	if err != nil {
		return server.Services{}, err
	}

	repo := postgres.NewPlayerRepository(pool)
	locks := concurrency.NewLockManager()

	return server.Services{
		User: user.NewService(repo, locks, curve, catalog, user.Config{
			StartingGold:  cfg.StartingGold,
			StartingPlots: cfg.StartingPlots,
		}),
		Farm:    farm.NewService(repo, locks, curve, catalog),
		Economy: economy.NewService(repo, locks, catalog),
		Land:    land.NewService(repo, locks, curve),
	}, nil
}
