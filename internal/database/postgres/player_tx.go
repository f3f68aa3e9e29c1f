package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/willobee/FarmPatch_Go/internal/domain"
)

// playerTx implements repository.PlayerTx on top of a pgx transaction
type playerTx struct {
	tx pgx.Tx
}

// GetPlayerForUpdate fetches the player row with a row lock held until commit
func (t *playerTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1 FOR UPDATE`

	player, err := scanPlayer(t.tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
		}
		return nil, fmt.Errorf("failed to get player for update: %w", err)
	}
	return player, nil
}

// UpdatePlayer persists the mutable player fields
func (t *playerTx) UpdatePlayer(ctx context.Context, player domain.Player) error {
	query := `
		UPDATE players
		SET gold = $1, xp = $2, unlocked_plots = $3, updated_at = NOW()
		WHERE player_id = $4
	`
	tag, err := t.tx.Exec(ctx, query, player.Gold, player.XP, player.UnlockedPlots, player.ID)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, player.ID)
	}
	return nil
}

// GetPlotForUpdate fetches a plot with a row lock held until commit
func (t *playerTx) GetPlotForUpdate(ctx context.Context, plotID int64) (*domain.Plot, error) {
	query := `SELECT plot_id, player_id, crop, planted_at FROM plots WHERE plot_id = $1 FOR UPDATE`

	plot, err := scanPlot(t.tx.QueryRow(ctx, query, plotID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrPlotNotFound, plotID)
		}
		return nil, fmt.Errorf("failed to get plot for update: %w", err)
	}
	return plot, nil
}

// GetPlots returns the player's plots ordered by ID
func (t *playerTx) GetPlots(ctx context.Context, playerID string) ([]domain.Plot, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	return queryPlots(ctx, t.tx, id)
}

// CreatePlot inserts a new empty plot and returns its ID
func (t *playerTx) CreatePlot(ctx context.Context, playerID string) (int64, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return 0, err
	}

	var plotID int64
	err = t.tx.QueryRow(ctx, `INSERT INTO plots (player_id) VALUES ($1) RETURNING plot_id`, id).Scan(&plotID)
	if err != nil {
		return 0, fmt.Errorf("failed to create plot: %w", err)
	}
	return plotID, nil
}

// UpdatePlot persists the plot's crop and planting time
func (t *playerTx) UpdatePlot(ctx context.Context, plot domain.Plot) error {
	query := `UPDATE plots SET crop = $1, planted_at = $2 WHERE plot_id = $3`

	tag, err := t.tx.Exec(ctx, query, plot.Crop, plot.PlantedAt, plot.ID)
	if err != nil {
		return fmt.Errorf("failed to update plot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrPlotNotFound, plot.ID)
	}
	return nil
}

// GetInventoryQuantity returns the held quantity, zero when no row exists
func (t *playerTx) GetInventoryQuantity(ctx context.Context, playerID, itemName string) (int, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return 0, err
	}

	var quantity int
	query := `SELECT quantity FROM inventory WHERE player_id = $1 AND item_name = $2 FOR UPDATE`
	err = t.tx.QueryRow(ctx, query, id, itemName).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get inventory quantity: %w", err)
	}
	return quantity, nil
}

// SetInventoryQuantity upserts the row, deleting it when quantity reaches zero
func (t *playerTx) SetInventoryQuantity(ctx context.Context, playerID, itemName string, quantity int) error {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidInput)
	}

	if quantity == 0 {
		_, err := t.tx.Exec(ctx,
			`DELETE FROM inventory WHERE player_id = $1 AND item_name = $2`, id, itemName)
		if err != nil {
			return fmt.Errorf("failed to delete inventory row: %w", err)
		}
		return nil
	}

	query := `
		INSERT INTO inventory (player_id, item_name, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id, item_name) DO UPDATE
		SET quantity = EXCLUDED.quantity
	`
	if _, err := t.tx.Exec(ctx, query, id, itemName, quantity); err != nil {
		return fmt.Errorf("failed to upsert inventory row: %w", err)
	}
	return nil
}

// Commit commits the transaction
func (t *playerTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *playerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
