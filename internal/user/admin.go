package user

import (
	"context"
	"fmt"

	"github.com/willobee/FarmPatch_Go/internal/domain"
	"github.com/willobee/FarmPatch_Go/internal/logger"
	"github.com/willobee/FarmPatch_Go/internal/repository"
)

// ListPlayers returns every registered player ordered by signup time.
func (s *service) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	return s.repo.ListPlayers(ctx)
}

// SetGold overwrites a player's gold balance. Operator tooling only.
func (s *service) SetGold(ctx context.Context, username string, gold int) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	if gold < 0 {
		return nil, fmt.Errorf("%w: gold must not be negative", domain.ErrInvalidInput)
	}

	playerID, err := s.ResolvePlayerID(ctx, username)
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

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	player.Gold = gold
	if err := tx.UpdatePlayer(ctx, *player); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Gold overridden", "playerID", playerID, "username", username, "gold", gold)
	return player, nil
}

// DeleteAccount removes a player and everything they own.
func (s *service) DeleteAccount(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	playerID, err := s.ResolvePlayerID(ctx, username)
	if err != nil {
		return err
	}

	unlock := s.locks.LockPlayer(playerID)
	defer unlock()

	if err := s.repo.DeletePlayer(ctx, playerID); err != nil {
		return err
	}

	s.names.Remove(username)
	log.Info("Account deleted", "playerID", playerID, "username", username)
	return nil
}
