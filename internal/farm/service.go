package farm

import (
	"context"
	"fmt"
	"time"

	"github.com/willobee/FarmPatch_Go/internal/concurrency"
	"github.com/willobee/FarmPatch_Go/internal/domain"
	"github.com/willobee/FarmPatch_Go/internal/item"
	"github.com/willobee/FarmPatch_Go/internal/logger"
	"github.com/willobee/FarmPatch_Go/internal/metrics"
	"github.com/willobee/FarmPatch_Go/internal/progression"
	"github.com/willobee/FarmPatch_Go/internal/repository"
)

// PlantResult contains the result of planting a seed
type PlantResult struct {
	PlotID         int64     `json:"plot_id"`
	Crop           string    `json:"crop"`
	PlantedAt      time.Time `json:"planted_at"`
	ReadyAt        time.Time `json:"ready_at"`
	SeedsRemaining int       `json:"seeds_remaining"`
}

// HarvestResult contains the result of harvesting one plot
type HarvestResult struct {
	PlotID    int64  `json:"plot_id"`
	Crop      string `json:"crop"`
	Quantity  int    `json:"quantity"`
	XPGained  int64  `json:"xp_gained"`
	LeveledUp bool   `json:"leveled_up"`
	NewLevel  int    `json:"new_level"`
}

// HarvestAllResult summarizes a harvest sweep across all ready plots
type HarvestAllResult struct {
	Harvested []HarvestResult `json:"harvested"`
	TotalXP   int64           `json:"total_xp"`
	NewLevel  int             `json:"new_level"`
	LeveledUp bool            `json:"leveled_up"`
}

// Service defines the interface for farm operations
type Service interface {
	Plant(ctx context.Context, playerID string, plotID int64, crop string) (*PlantResult, error)
	Harvest(ctx context.Context, playerID string, plotID int64) (*HarvestResult, error)
	HarvestAll(ctx context.Context, playerID string) (*HarvestAllResult, error)
}

type service struct {
	repo    repository.Player
	locks   *concurrency.LockManager
	curve   progression.Curve
	catalog *item.Catalog
	now     func() time.Time // injected for tests
}

// NewService creates a new farm service
func NewService(repo repository.Player, locks *concurrency.LockManager, curve progression.Curve, catalog *item.Catalog) Service {
	return &service{
		repo:    repo,
		locks:   locks,
		curve:   curve,
		catalog: catalog,
		now:     time.Now,
	}
}

// Plant sows a crop on an empty plot, consuming one seed from inventory.
func (s *service) Plant(ctx context.Context, playerID string, plotID int64, crop string) (*PlantResult, error) {
	log := logger.FromContext(ctx)

	seed, err := s.catalog.Seed(crop)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.LockPlayer(playerID)
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetPlayerForUpdate(ctx, playerID); err != nil {
		return nil, err
	}

	plot, err := tx.GetPlotForUpdate(ctx, plotID)
	if err != nil {
		return nil, err
	}
	if plot.PlayerID != playerID {
		return nil, fmt.Errorf("%w: plot %d", domain.ErrPlotNotOwned, plotID)
	}
	if plot.IsPlanted() {
		return nil, fmt.Errorf("%w: plot %d already grows %s", domain.ErrAlreadyPlanted, plotID, *plot.Crop)
	}

	held, err := tx.GetInventoryQuantity(ctx, playerID, seed.Name)
	if err != nil {
		return nil, err
	}
	if held < 1 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientSeed, seed.Name)
	}
	if err := tx.SetInventoryQuantity(ctx, playerID, seed.Name, held-1); err != nil {
		return nil, err
	}

	plantedAt := s.now().UTC()
	plot.Crop = &crop
	plot.PlantedAt = &plantedAt
	if err := tx.UpdatePlot(ctx, *plot); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.CropsPlanted.WithLabelValues(crop).Inc()
	log.Info("Crop planted", "playerID", playerID, "plot", plotID, "crop", crop)

	return &PlantResult{
		PlotID:         plotID,
		Crop:           crop,
		PlantedAt:      plantedAt,
		ReadyAt:        plantedAt.Add(time.Duration(seed.Growth.GrowSeconds) * time.Second),
		SeedsRemaining: held - 1,
	}, nil
}

// Harvest collects a single ready plot, granting produce and xp. Harvesting
// at exactly the grow time succeeds.
func (s *service) Harvest(ctx context.Context, playerID string, plotID int64) (*HarvestResult, error) {
	log := logger.FromContext(ctx)

	unlock := s.locks.LockPlayer(playerID)
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	plot, err := tx.GetPlotForUpdate(ctx, plotID)
	if err != nil {
		return nil, err
	}
	if plot.PlayerID != playerID {
		return nil, fmt.Errorf("%w: plot %d", domain.ErrPlotNotOwned, plotID)
	}

	result, err := s.harvestPlot(ctx, tx, player, plot)
	if err != nil {
		return nil, err
	}

	if err := tx.UpdatePlayer(ctx, *player); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	recordHarvestMetrics([]HarvestResult{*result})
	log.Info("Crop harvested", "playerID", playerID, "plot", plotID,
		"crop", result.Crop, "quantity", result.Quantity, "xp", result.XPGained)

	return result, nil
}

// HarvestAll sweeps every ready plot in one transaction. Plots that are empty
// or still growing are skipped; an empty sweep is not an error.
func (s *service) HarvestAll(ctx context.Context, playerID string) (*HarvestAllResult, error) {
	log := logger.FromContext(ctx)

	unlock := s.locks.LockPlayer(playerID)
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	plots, err := tx.GetPlots(ctx, playerID)
	if err != nil {
		return nil, err
	}

	summary := &HarvestAllResult{Harvested: []HarvestResult{}}
	startLevel := progression.LevelFor(s.curve, player.XP)

	for i := range plots {
		plot := plots[i]
		if !plot.IsPlanted() {
			continue
		}
		seed, err := s.catalog.Seed(*plot.Crop)
		if err != nil {
			log.Warn("Skipping plot with unknown crop", "plot", plot.ID, "crop", *plot.Crop)
			continue
		}
		if plot.Elapsed(s.now()) < time.Duration(seed.Growth.GrowSeconds)*time.Second {
			continue
		}

		result, err := s.harvestPlot(ctx, tx, player, &plot)
		if err != nil {
			return nil, err
		}
		summary.Harvested = append(summary.Harvested, *result)
		summary.TotalXP += result.XPGained
	}

	if len(summary.Harvested) > 0 {
		if err := tx.UpdatePlayer(ctx, *player); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	summary.NewLevel = progression.LevelFor(s.curve, player.XP)
	summary.LeveledUp = summary.NewLevel > startLevel

	recordHarvestMetrics(summary.Harvested)
	log.Info("Harvest sweep finished", "playerID", playerID, "plots", len(summary.Harvested), "xp", summary.TotalXP)

	return summary, nil
}

// harvestPlot moves one ready plot's produce into inventory, grants xp on the
// locked player and clears the plot. Caller persists the player and commits.
func (s *service) harvestPlot(ctx context.Context, tx repository.PlayerTx, player *domain.Player, plot *domain.Plot) (*HarvestResult, error) {
	if !plot.IsPlanted() {
		return nil, fmt.Errorf("%w: plot %d", domain.ErrNothingToHarvest, plot.ID)
	}
	crop := *plot.Crop

	seed, err := s.catalog.Seed(crop)
	if err != nil {
		return nil, err
	}
	growth := seed.Growth

	growTime := time.Duration(growth.GrowSeconds) * time.Second
	elapsed := plot.Elapsed(s.now())
	if elapsed < growTime {
		remaining := growTime - elapsed
		secs := int64((remaining + time.Second - 1) / time.Second)
		return nil, fmt.Errorf("%w: %s ready in %ds", domain.ErrCropNotReady, crop, secs)
	}

	held, err := tx.GetInventoryQuantity(ctx, player.ID, crop)
	if err != nil {
		return nil, err
	}
	if err := tx.SetInventoryQuantity(ctx, player.ID, crop, held+growth.Yield); err != nil {
		return nil, err
	}

	grant, err := progression.Grant(s.curve, player, int64(growth.XPReward))
	if err != nil {
		return nil, err
	}

	plot.Crop = nil
	plot.PlantedAt = nil
	if err := tx.UpdatePlot(ctx, *plot); err != nil {
		return nil, err
	}

	return &HarvestResult{
		PlotID:    plot.ID,
		Crop:      crop,
		Quantity:  growth.Yield,
		XPGained:  grant.XPGained,
		LeveledUp: grant.LeveledUp,
		NewLevel:  grant.NewLevel,
	}, nil
}

func recordHarvestMetrics(results []HarvestResult) {
	for _, r := range results {
		metrics.CropsHarvested.WithLabelValues(r.Crop).Inc()
		metrics.XPGranted.Add(float64(r.XPGained))
		if r.LeveledUp {
			metrics.LevelUps.Inc()
		}
	}
}
