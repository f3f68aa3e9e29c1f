package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/willobee/FarmPatch_Go/internal/server"
)

// GracefulShutdown stops the HTTP server first so no new requests arrive,
// then closes the database pool. Errors are logged but never abort the
// shutdown sequence.
func GracefulShutdown(ctx context.Context, srv *server.Server, pool *pgxpool.Pool) {
	slog.Info("Shutting down server...")

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	if pool != nil {
		pool.Close()
	}

	slog.Info("Server stopped")
}
