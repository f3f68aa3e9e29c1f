package land

import (
	"context"
	"fmt"

	"github.com/willobee/FarmPatch_Go/internal/concurrency"
	"github.com/willobee/FarmPatch_Go/internal/domain"
	"github.com/willobee/FarmPatch_Go/internal/logger"
	"github.com/willobee/FarmPatch_Go/internal/metrics"
	"github.com/willobee/FarmPatch_Go/internal/progression"
	"github.com/willobee/FarmPatch_Go/internal/repository"
)

// UpgradeResult contains the result of a land upgrade. NextCost is the price
// of the following plot, zero once the cap is reached.
type UpgradeResult struct {
	PlotID        int64 `json:"plot_id"`
	UnlockedPlots int   `json:"unlocked_plots"`
	GoldSpent     int   `json:"gold_spent"`
	GoldRemaining int   `json:"gold_remaining"`
	NextCost      int   `json:"next_cost,omitempty"`
}

// Quote describes the next upgrade available to a player
type Quote struct {
	UnlockedPlots int  `json:"unlocked_plots"`
	NextPlot      int  `json:"next_plot"`
	Cost          int  `json:"cost"`
	RequiredLevel int  `json:"required_level"`
	Available     bool `json:"available"`
	AtMax         bool `json:"at_max"`
}

// Service defines the interface for land operations
type Service interface {
	Upgrade(ctx context.Context, playerID string) (*UpgradeResult, error)
	GetQuote(ctx context.Context, playerID string) (*Quote, error)
}

type service struct {
	repo  repository.Player
	locks *concurrency.LockManager
	curve progression.Curve
}

// NewService creates a new land service
func NewService(repo repository.Player, locks *concurrency.LockManager, curve progression.Curve) Service {
	return &service{repo: repo, locks: locks, curve: curve}
}

// Upgrade unlocks the player's next plot, spending gold. The level gate is
// checked before gold so a player who can't unlock yet learns that first.
func (s *service) Upgrade(ctx context.Context, playerID string) (*UpgradeResult, error) {
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

	target := player.UnlockedPlots + 1
	level := progression.LevelFor(s.curve, player.XP)

	if target > MaxPlotsForLevel(level) {
		return nil, fmt.Errorf("%w: plot %d requires level %d, player is level %d",
			domain.ErrLevelTooLow, target, requiredLevelFor(target), level)
	}

	cost := UpgradeCost(target)
	if player.Gold < cost {
		return nil, fmt.Errorf("%w: plot %d costs %d gold, have %d",
			domain.ErrInsufficientGold, target, cost, player.Gold)
	}

	player.Gold -= cost
	player.UnlockedPlots = target
	if err := tx.UpdatePlayer(ctx, *player); err != nil {
		return nil, err
	}

	plotID, err := tx.CreatePlot(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.PlotsUnlocked.Inc()
	metrics.GoldSpent.Add(float64(cost))

	log.Info("Plot unlocked", "playerID", playerID, "plot", target, "cost", cost)

	nextCost := 0
	if target < MaxPlots {
		nextCost = UpgradeCost(target + 1)
	}

	return &UpgradeResult{
		PlotID:        plotID,
		UnlockedPlots: target,
		GoldSpent:     cost,
		GoldRemaining: player.Gold,
		NextCost:      nextCost,
	}, nil
}

// GetQuote reports the next upgrade's price and whether the player can take it.
func (s *service) GetQuote(ctx context.Context, playerID string) (*Quote, error) {
	player, err := s.repo.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.UnlockedPlots >= MaxPlots {
		return &Quote{UnlockedPlots: player.UnlockedPlots, AtMax: true}, nil
	}

	target := player.UnlockedPlots + 1
	level := progression.LevelFor(s.curve, player.XP)
	cost := UpgradeCost(target)
	required := requiredLevelFor(target)

	return &Quote{
		UnlockedPlots: player.UnlockedPlots,
		NextPlot:      target,
		Cost:          cost,
		RequiredLevel: required,
		Available:     level >= required && player.Gold >= cost,
	}, nil
}

// requiredLevelFor returns the lowest level whose cap admits plot target.
func requiredLevelFor(target int) int {
	for _, bp := range plotTable {
		if bp.plots >= target {
			return bp.minLevel
		}
	}
	return plotTable[len(plotTable)-1].minLevel
}
