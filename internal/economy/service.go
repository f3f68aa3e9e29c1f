package economy

import (
	"context"

	"github.com/willobee/FarmPatch_Go/internal/concurrency"
	"github.com/willobee/FarmPatch_Go/internal/item"
	"github.com/willobee/FarmPatch_Go/internal/repository"
)

// BuyResult contains the result of a buy operation
type BuyResult struct {
	ItemName      string `json:"item_name"`
	Quantity      int    `json:"quantity"`
	UnitPrice     int    `json:"unit_price"`
	GoldSpent     int    `json:"gold_spent"`
	GoldRemaining int    `json:"gold_remaining"`
	NewQuantity   int    `json:"new_quantity"`
}

// SellResult contains the result of a sell operation
type SellResult struct {
	ItemName      string `json:"item_name"`
	Quantity      int    `json:"quantity"`
	UnitPrice     int    `json:"unit_price"`
	GoldEarned    int    `json:"gold_earned"`
	GoldRemaining int    `json:"gold_remaining"`
	NewQuantity   int    `json:"new_quantity"`
}

// Price is one row of the public market price list
type Price struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	BuyPrice    *int   `json:"buy_price,omitempty"`
	SellPrice   int    `json:"sell_price"`
}

// Service defines the interface for economy operations
type Service interface {
	BuyItem(ctx context.Context, playerID, itemName string, quantity int) (*BuyResult, error)
	SellItem(ctx context.Context, playerID, itemName string, quantity int) (*SellResult, error)
	GetPrices(ctx context.Context) []Price
}

type service struct {
	repo    repository.Player
	locks   *concurrency.LockManager
	catalog *item.Catalog
}

// NewService creates a new economy service
func NewService(repo repository.Player, locks *concurrency.LockManager, catalog *item.Catalog) Service {
	return &service{repo: repo, locks: locks, catalog: catalog}
}
