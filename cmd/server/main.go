// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

// Command server runs the Pitwall API: the analytics query catalog, the
// race outcome prediction services, and the constructor clustering pipeline
// over a static historical results database.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/apexgrid/pitwall/internal/api"
	"github.com/apexgrid/pitwall/internal/artifact"
	"github.com/apexgrid/pitwall/internal/cache"
	"github.com/apexgrid/pitwall/internal/cluster"
	"github.com/apexgrid/pitwall/internal/config"
	"github.com/apexgrid/pitwall/internal/database"
	"github.com/apexgrid/pitwall/internal/inference"
	"github.com/apexgrid/pitwall/internal/logging"
	"github.com/apexgrid/pitwall/internal/supervisor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := config.Validate(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Invalid configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Msg("Starting Pitwall")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.New(ctx, &cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()
	logging.Info().Msg("Connected to database")

	// The dataset is static, so query results are memoized for the process
	// lifetime unless a TTL is configured.
	queryCache := cache.New(cfg.Cache.TTL)
	catalog := database.NewCachedCatalog(db, queryCache)

	store := artifact.NewStore(&cfg.Models)
	inferSvc := inference.NewService(store)
	pipeline := cluster.NewPipeline(cfg.Cluster)
	jobs := api.NewJobQueue(inferSvc, cfg.Server.PredictWorkers)

	handler := api.NewHandler(catalog, db, queryCache, store, inferSvc, pipeline, jobs)
	router := api.NewRouter(handler, &cfg.Server)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddWorkerService(jobs)
	tree.AddAPIService(supervisor.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop in time")
		}
	}

	logging.Info().Msg("Stopped")
}
