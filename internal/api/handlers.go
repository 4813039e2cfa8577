// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package api

import (
	"net/http"
	"time"

	"github.com/apexgrid/pitwall/internal/artifact"
	"github.com/apexgrid/pitwall/internal/cache"
	"github.com/apexgrid/pitwall/internal/cluster"
	"github.com/apexgrid/pitwall/internal/database"
	"github.com/apexgrid/pitwall/internal/inference"
)

// Handler carries the services every endpoint draws from. The catalog is an
// interface so handler tests can run against a stub instead of a database.
type Handler struct {
	catalog   database.Catalog
	db        *database.DB
	cache     *cache.Cache
	store     *artifact.Store
	infer     *inference.Service
	pipeline  *cluster.Pipeline
	jobs      *JobQueue
	startTime time.Time
}

// NewHandler wires the handler. db may be nil in tests; health then reports
// the database as disconnected.
func NewHandler(catalog database.Catalog, db *database.DB, c *cache.Cache, store *artifact.Store, infer *inference.Service, pipeline *cluster.Pipeline, jobs *JobQueue) *Handler {
	return &Handler{
		catalog:   catalog,
		db:        db,
		cache:     c,
		store:     store,
		infer:     infer,
		pipeline:  pipeline,
		jobs:      jobs,
		startTime: time.Now(),
	}
}

// healthStatus is the health endpoint payload.
type healthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	CacheHitRate      float64 `json:"cache_hit_rate"`
	Uptime            float64 `json:"uptime_seconds"`
}

// Health reports overall readiness: degraded when the database is down.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	dbConnected := h.db != nil && h.db.Ping(r.Context()) == nil
	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}

	var hitRate float64
	if h.cache != nil {
		hitRate = h.cache.HitRate()
	}

	respondData(w, healthStatus{
		Status:            status,
		Version:           "1.0.0",
		DatabaseConnected: dbConnected,
		CacheHitRate:      hitRate,
		Uptime:            time.Since(h.startTime).Seconds(),
	}, start)
}

// HealthLive is the liveness probe: 200 whenever the process serves.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondData(w, map[string]string{"status": "alive"}, time.Now())
}
