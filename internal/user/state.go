package user

import (
	"context"
	"fmt"
	"time"

	"github.com/willobee/FarmPatch_Go/internal/domain"
	"github.com/willobee/FarmPatch_Go/internal/farm"
	"github.com/willobee/FarmPatch_Go/internal/logger"
	"github.com/willobee/FarmPatch_Go/internal/progression"
	"github.com/willobee/FarmPatch_Go/internal/repository"
)

// GetState assembles the full player snapshot. Level and progress are always
// derived from lifetime xp, never stored.
func (s *service) GetState(ctx context.Context, playerID string) (*domain.PlayerState, error) {
	player, err := s.repo.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	plots, err := s.repo.GetPlots(ctx, playerID)
	if err != nil {
		return nil, err
	}

	// A raised plot count (config change or upgrade race) may leave the
	// player with fewer plot rows than they are entitled to. Backfill lazily.
	if len(plots) < player.UnlockedPlots {
		plots, err = s.backfillPlots(ctx, playerID)
		if err != nil {
			return nil, err
		}
	}

	inventory, err := s.repo.GetInventory(ctx, playerID)
	if err != nil {
		return nil, err
	}

	level, into, toNext := progression.Progress(s.curve, player.XP)

	return &domain.PlayerState{
		PlayerID:      player.ID,
		Username:      player.Username,
		Gold:          player.Gold,
		XP:            player.XP,
		Level:         level,
		XPIntoLevel:   into,
		XPToNext:      toNext,
		UnlockedPlots: player.UnlockedPlots,
		Plots:         farm.PlotViews(plots, s.catalog, time.Now().UTC()),
		Inventory:     inventory,
	}, nil
}

// backfillPlots creates missing plot rows up to the player's unlocked count.
func (s *service) backfillPlots(ctx context.Context, playerID string) ([]domain.Plot, error) {
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

	missing := player.UnlockedPlots - len(plots)
	for i := 0; i < missing; i++ {
		if _, err := tx.CreatePlot(ctx, playerID); err != nil {
			return nil, err
		}
	}
	if missing > 0 {
		log.Info("Backfilled plots", "playerID", playerID, "created", missing)
	}

	plots, err = tx.GetPlots(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return plots, nil
}
