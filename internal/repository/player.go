package repository

import (
	"context"

	"github.com/willobee/FarmPatch_Go/internal/domain"
)

// Player defines the interface for player persistence
type Player interface {
	// CreatePlayer inserts the player together with startingPlots empty plots
	// in a single transaction.
	CreatePlayer(ctx context.Context, player *domain.Player, startingPlots int) error
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
	GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error)
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	DeletePlayer(ctx context.Context, playerID string) error

	GetPlots(ctx context.Context, playerID string) ([]domain.Plot, error)
	GetInventory(ctx context.Context, playerID string) ([]domain.InventoryEntry, error)

	BeginTx(ctx context.Context) (PlayerTx, error)
}

// PlayerTx defines the interface for player transactions. Mutating flows lock
// the player row first so concurrent requests against the same player
// serialize at the database even without the in-process lock.
type PlayerTx interface {
	Tx
	GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, player domain.Player) error

	GetPlotForUpdate(ctx context.Context, plotID int64) (*domain.Plot, error)
	GetPlots(ctx context.Context, playerID string) ([]domain.Plot, error)
	CreatePlot(ctx context.Context, playerID string) (int64, error)
	UpdatePlot(ctx context.Context, plot domain.Plot) error

	GetInventoryQuantity(ctx context.Context, playerID, itemName string) (int, error)
	// SetInventoryQuantity upserts the row, deleting it when quantity is zero.
	SetInventoryQuantity(ctx context.Context, playerID, itemName string, quantity int) error
}
