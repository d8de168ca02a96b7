// @title LootForge API
// @version 1.0
// @description Loot generation for virtual tabletop scenes: budgeted item selection from compendium packs, loot containers and token placement.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/LootForge_Go/internal/bootstrap"
	"github.com/osse101/LootForge_Go/internal/config"
	"github.com/osse101/LootForge_Go/internal/database"
	"github.com/osse101/LootForge_Go/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("LootForge exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	warnings, err := config.ValidateEnvWithWarnings()
	for _, w := range warnings {
		slog.Warn(w)
	}
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
	if err != nil {
		return err
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(pool, cfg)

	if _, err := bootstrap.SyncCompendiums(ctx, repos.Compendium, cfg.CompendiumDir); err != nil {
		pool.Close()
		return err
	}
	if err := bootstrap.SeedScenes(ctx, repos.Containers, cfg.Scenes); err != nil {
		pool.Close()
		return err
	}

	srv := server.NewServer(server.Options{
		Port:             cfg.Port,
		APIKey:           cfg.APIKey,
		TrustedProxies:   cfg.TrustedProxies,
		MaxRequestBody:   cfg.MaxRequestBody,
		CompendiumSyncer: repos.CompendiumReloader(cfg.CompendiumDir),
	}, pool, repos.LootService(), repos.Containers)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: pool,
	})

	return serveErr
}
