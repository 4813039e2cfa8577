// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apexgrid/pitwall/internal/config"
	"github.com/apexgrid/pitwall/internal/logging"
	"github.com/apexgrid/pitwall/internal/metrics"
)

// DB wraps the pgx connection pool and provides the query catalog.
type DB struct {
	pool *pgxpool.Pool
	cfg  *config.DatabaseConfig
}

// New opens the connection pool, verifies connectivity, and ensures the
// status_categories view exists. A store that cannot be reached fails fast
// here with an ErrConnection-wrapped error rather than surfacing later as a
// nil-pool dereference.
func New(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid DSN: %v", ErrConnection, err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	db := &DB{pool: pool, cfg: cfg}

	if err := db.ensureStatusCategories(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logging.Info().Int32("max_conns", poolCfg.MaxConns).Msg("Database pool ready")
	return db, nil
}

// Ping checks whether the store is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Close releases the connection pool.
func (db *DB) Close() {
	db.pool.Close()
}

// ensureContext applies the configured query timeout when the caller's
// context carries no deadline of its own.
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, db.cfg.QueryTimeout)
}

// observe records the duration of one catalog query and returns a deferred
// closure that also tallies errors.
func observe(query string, start time.Time, errp *error) {
	metrics.QueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
	if errp != nil && *errp != nil {
		metrics.QueryErrors.WithLabelValues(query).Inc()
	}
}
