package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/willobee/FarmPatch_Go/internal/bootstrap"
	"github.com/willobee/FarmPatch_Go/internal/config"
	"github.com/willobee/FarmPatch_Go/internal/handler"
	"github.com/willobee/FarmPatch_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg, handler.Version)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := bootstrap.SetupDatabase(ctx, cfg)
	if err != nil {
		slog.Error("Failed to set up database", "error", err)
		os.Exit(1)
	}

	catalog, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		slog.Error("Failed to load item catalog", "error", err)
		pool.Close()
		os.Exit(1)
	}

	services, err := bootstrap.BuildServices(cfg, pool, catalog)
	if err != nil {
		slog.Error("Failed to build services", "error", err)
		pool.Close()
		os.Exit(1)
	}

	srv := server.NewServer(cfg.Port, cfg.AdminAPIKey, nil, pool, services)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		slog.Error("Server exited", "error", err)
		pool.Close()
		os.Exit(1)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, srv, pool)
}
