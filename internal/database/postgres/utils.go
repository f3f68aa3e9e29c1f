package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/willobee/FarmPatch_Go/internal/domain"
	"github.com/willobee/FarmPatch_Go/internal/logger"
)

// PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// parsePlayerUUID parses a player ID string to uuid.UUID with consistent error message.
func parsePlayerUUID(playerID string) (uuid.UUID, error) {
	u, err := uuid.Parse(playerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid player id: %w", err)
	}
	return u, nil
}

// isUniqueViolation reports whether err is a unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// rowScanner abstracts pgx.Row and pgx.Rows for shared mapping helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(&p.ID, &p.Username, &p.PasswordHash, &p.Gold, &p.XP,
		&p.UnlockedPlots, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanPlot(row rowScanner) (*domain.Plot, error) {
	var plot domain.Plot
	if err := row.Scan(&plot.ID, &plot.PlayerID, &plot.Crop, &plot.PlantedAt); err != nil {
		return nil, err
	}
	return &plot, nil
}
