// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/apexgrid/pitwall/internal/config"
)

// Router assembles the HTTP surface from a handler and server settings.
type Router struct {
	handler *Handler
	cfg     *config.ServerConfig
}

// NewRouter creates a router for the given handler.
func NewRouter(handler *Handler, cfg *config.ServerConfig) *Router {
	return &Router{handler: handler, cfg: cfg}
}

// Setup builds the chi route tree. Health and metrics endpoints bypass rate
// limiting so probes and scrapes never contend with dashboard traffic.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogger())
	r.Use(corsMiddleware(router.cfg.CORSOrigins))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", router.handler.Health)
		r.Get("/health/live", router.handler.HealthLive)

		r.Group(func(r chi.Router) {
			r.Use(rateLimiter(router.cfg.RateLimitReqs, router.cfg.RateLimitWindow))

			r.Get("/seasons", router.handler.Seasons)

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/map-points", router.handler.MapPoints)
				r.Get("/constructor-points", router.handler.ConstructorPoints)
				r.Get("/sankey", router.handler.SankeyFlow)
			})

			r.Route("/constructors", func(r chi.Router) {
				r.Get("/superlatives", router.handler.ConstructorSuperlatives)
				r.Get("/roster", router.handler.ConstructorRoster)
				r.Get("/summary", router.handler.ConstructorSummary)
				r.Get("/drivers", router.handler.ConstructorDrivers)
				r.Get("/status-breakdown", router.handler.ConstructorStatusBreakdown)
				r.Get("/race-counts", router.handler.ConstructorRaceCounts)
			})

			r.Route("/drivers", func(r chi.Router) {
				r.Get("/age-points", router.handler.DriverAgePoints)
				r.Get("/status-radar", router.handler.DriverStatusRadar)
			})

			r.Route("/predict", func(r chi.Router) {
				r.Get("/teams", router.handler.Teams)
				r.Get("/circuits", router.handler.Circuits)
				r.Get("/input-bounds", router.handler.InputBounds)
			})

			r.Route("/predictions", func(r chi.Router) {
				r.Post("/", router.handler.SubmitPrediction)
				r.Get("/{jobID}", router.handler.GetPrediction)
			})

			r.Get("/models/{modelID}/metrics", router.handler.ModelMetrics)
			r.Get("/clusters", router.handler.Clusters)
		})
	})

	return r
}
