// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

// Package main is the entry point for the Forkcast server.
//
// Forkcast recommends dining venues based on recurring temporal
// patterns in a user's "hearts" (likes) for venues and menu items.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered load from defaults, config.yaml, and
//     FORKCAST_-prefixed environment variables (Koanf v2)
//  2. Ledger: BadgerDB-backed heart store with daily/historical split
//  3. Engine: time-aware k-NN recommendation engine over the ledger
//  4. Supervision: suture tree running the rollover ticker and the
//     HTTP server with restart-on-failure
//
// # Signal Handling
//
// SIGINT and SIGTERM trigger graceful shutdown: the HTTP server drains
// in-flight requests within the configured timeout, the rollover
// ticker stops, and the ledger store is closed last.
//
// # Example Usage
//
//	export FORKCAST_SERVER_PORT=8790
//	export FORKCAST_LEDGER_PATH=/data/forkcast/ledger
//	export FORKCAST_LOGGING_LEVEL=info
//	./forkcast
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forkcast/forkcast/internal/api"
	"github.com/forkcast/forkcast/internal/config"
	"github.com/forkcast/forkcast/internal/ledger"
	"github.com/forkcast/forkcast/internal/logging"
	"github.com/forkcast/forkcast/internal/recommend"
	"github.com/forkcast/forkcast/internal/supervisor"
	"github.com/forkcast/forkcast/internal/supervisor/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("ledger_path", cfg.Ledger.Path).
		Int("port", cfg.Server.Port).
		Msg("Starting Forkcast")

	store, err := ledger.Open(ledger.Options{
		Path:     cfg.Ledger.Path,
		InMemory: cfg.Ledger.InMemory,
		Logger:   logging.Logger(),
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open ledger store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing ledger store")
		}
	}()

	engine, err := recommend.NewEngine(recommend.Config{
		VenueNeighbors:    cfg.Recommend.VenueNeighbors,
		MenuItemNeighbors: cfg.Recommend.MenuItemNeighbors,
		VenueWeight:       cfg.Recommend.VenueWeight,
		MenuItemWeight:    cfg.Recommend.MenuItemWeight,
		DefaultCount:      cfg.Recommend.DefaultCount,
		MaxCount:          cfg.Recommend.MaxCount,
		CacheTTL:          cfg.Recommend.CacheTTL,
		CacheSize:         cfg.Recommend.CacheSize,
	}, store, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	handler := api.NewHandler(store, engine, version)
	router := api.NewRouter(handler, api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		CORSAllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.Security.RateLimitReqs,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
	}))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog compatibility.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddLedgerService(services.NewRolloverService(store, cfg.Ledger.RolloverInterval, logging.Logger()))
	tree.AddAPIService(services.NewHTTPService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Forkcast stopped gracefully")
}
