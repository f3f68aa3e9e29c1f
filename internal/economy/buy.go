package economy

import (
	"context"
	"fmt"

	"github.com/willobee/FarmPatch_Go/internal/domain"
	"github.com/willobee/FarmPatch_Go/internal/logger"
	"github.com/willobee/FarmPatch_Go/internal/metrics"
	"github.com/willobee/FarmPatch_Go/internal/repository"
)

// BuyItem purchases quantity of an item from the market. Quantities above the
// per-transaction cap are clamped, the player pays only for what they get.
func (s *service) BuyItem(ctx context.Context, playerID, itemName string, quantity int) (*BuyResult, error) {
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
	if !def.Buyable() {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotForSale, itemName)
	}
	unitPrice := *def.BuyPrice

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

	cost := unitPrice * quantity
	if player.Gold < cost {
		return nil, fmt.Errorf("%w: %d %s costs %d gold, have %d",
			domain.ErrInsufficientGold, quantity, itemName, cost, player.Gold)
	}

	held, err := tx.GetInventoryQuantity(ctx, playerID, itemName)
	if err != nil {
		return nil, err
	}
	if err := tx.SetInventoryQuantity(ctx, playerID, itemName, held+quantity); err != nil {
		return nil, err
	}

	player.Gold -= cost
	if err := tx.UpdatePlayer(ctx, *player); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.ItemsBought.WithLabelValues(itemName).Add(float64(quantity))
	metrics.GoldSpent.Add(float64(cost))

	log.Info("Item bought", "playerID", playerID, "item", itemName, "quantity", quantity, "cost", cost)

	return &BuyResult{
		ItemName:      itemName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		GoldSpent:     cost,
		GoldRemaining: player.Gold,
		NewQuantity:   held + quantity,
	}, nil
}
