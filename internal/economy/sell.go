package economy

import (
	"context"
	"fmt"

	"github.com/willobee/FarmPatch_Go/internal/domain"
	"github.com/willobee/FarmPatch_Go/internal/logger"
	"github.com/willobee/FarmPatch_Go/internal/metrics"
	"github.com/willobee/FarmPatch_Go/internal/repository"
)

// SellItem sells quantity of an item back to the market. Every catalog item
// has a sell price, so anything held can be sold.
func (s *service) SellItem(ctx context.Context, playerID, itemName string, quantity int) (*SellResult, error) {
	log := logger.FromContext(ctx)

	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidInput)
	}
	if quantity > domain.MaxTransactionQuantity {
		quantity = domain.MaxTransactionQuantity
	}

	def, err := s.catalog.Get(itemName)
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

	held, err := tx.GetInventoryQuantity(ctx, playerID, itemName)
	if err != nil {
		return nil, err
	}
	if held < quantity {
		return nil, fmt.Errorf("%w: have %d %s, tried to sell %d",
			domain.ErrInsufficientInventory, held, itemName, quantity)
	}

	if err := tx.SetInventoryQuantity(ctx, playerID, itemName, held-quantity); err != nil {
		return nil, err
	}

	proceeds := def.SellPrice * quantity
	player.Gold += proceeds
	if err := tx.UpdatePlayer(ctx, *player); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.ItemsSold.WithLabelValues(itemName).Add(float64(quantity))
	metrics.GoldEarned.Add(float64(proceeds))

	log.Info("Item sold", "playerID", playerID, "item", itemName, "quantity", quantity, "proceeds", proceeds)

	return &SellResult{
		ItemName:      itemName,
		Quantity:      quantity,
		UnitPrice:     def.SellPrice,
		GoldEarned:    proceeds,
		GoldRemaining: player.Gold,
		NewQuantity:   held - quantity,
	}, nil
}
