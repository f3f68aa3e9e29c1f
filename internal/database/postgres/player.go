package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/willobee/FarmPatch_Go/internal/domain"
	"github.com/willobee/FarmPatch_Go/internal/repository"
)

const playerColumns = "player_id, username, password_hash, gold, xp, unlocked_plots, created_at, updated_at"

// PlayerRepository implements the player repository for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// CreatePlayer inserts the player and their starting plots atomically. The
// generated ID and timestamps are written back to the passed player.
func (r *PlayerRepository) CreatePlayer(ctx context.Context, player *domain.Player, startingPlots int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO players (username, password_hash, gold, xp, unlocked_plots)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING player_id, created_at, updated_at
	`
	err = tx.QueryRow(ctx, query,
		player.Username, player.PasswordHash, player.Gold, player.XP, player.UnlockedPlots).
		Scan(&player.ID, &player.CreatedAt, &player.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, player.Username)
		}
		return fmt.Errorf("failed to insert player: %w", err)
	}

	for i := 0; i < startingPlots; i++ {
		if _, err := tx.Exec(ctx, `INSERT INTO plots (player_id) VALUES ($1)`, player.ID); err != nil {
			return fmt.Errorf("failed to create starting plot: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetPlayerByUsername finds a player by their unique username
func (r *PlayerRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE username = $1`

	player, err := scanPlayer(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, username)
		}
		return nil, fmt.Errorf("failed to get player by username: %w", err)
	}
	return player, nil
}

// GetPlayerByID finds a player by ID
func (r *PlayerRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1`

	player, err := scanPlayer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
		}
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}
	return player, nil
}

// ListPlayers returns all players ordered by signup time
func (r *PlayerRepository) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players ORDER BY created_at, player_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := []domain.Player{}
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, *player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}
	return players, nil
}

// DeletePlayer removes the player. Plots and inventory cascade.
func (r *PlayerRepository) DeletePlayer(ctx context.Context, playerID string) error {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM players WHERE player_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	return nil
}

// GetPlots returns the player's plots ordered by ID
func (r *PlayerRepository) GetPlots(ctx context.Context, playerID string) ([]domain.Plot, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	return queryPlots(ctx, r.db, id)
}

// GetInventory returns the player's inventory ordered by item name. Items
// with zero quantity have no row and are omitted.
func (r *PlayerRepository) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryEntry, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	query := `SELECT item_name, quantity FROM inventory WHERE player_id = $1 ORDER BY item_name`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	defer rows.Close()

	entries := []domain.InventoryEntry{}
	for rows.Next() {
		var entry domain.InventoryEntry
		if err := rows.Scan(&entry.ItemName, &entry.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan inventory entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory: %w", err)
	}
	return entries, nil
}

// BeginTx starts a player transaction
func (r *PlayerRepository) BeginTx(ctx context.Context) (repository.PlayerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &playerTx{tx: tx}, nil
}

// queryPlots is shared between the pool and transaction paths.
func queryPlots(ctx context.Context, q interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}, playerID any) ([]domain.Plot, error) {
	query := `SELECT plot_id, player_id, crop, planted_at FROM plots WHERE player_id = $1 ORDER BY plot_id`

	rows, err := q.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plots: %w", err)
	}
	defer rows.Close()

	plots := []domain.Plot{}
	for rows.Next() {
		plot, err := scanPlot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plot: %w", err)
		}
		plots = append(plots, *plot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plots: %w", err)
	}
	return plots, nil
}
