// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

// Package metrics provides Prometheus instrumentation for the data layer.
//
// Exposed at /metrics in Prometheus text format:
//   - pitwall_query_duration_seconds: catalog query latency (histogram), label: query
//   - pitwall_query_errors_total: failed catalog queries (counter), label: query
//   - pitwall_cache_hits_total / pitwall_cache_misses_total: memoization effectiveness
//   - pitwall_predictions_total: inference results (counter), labels: model, outcome
//   - pitwall_artifact_fetch_failures_total: remote bundle fetch failures, label: model
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueryDuration tracks catalog query execution time per query name.
	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pitwall_query_duration_seconds",
		Help:    "Catalog query execution time in seconds.",
		Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
	}, []string{"query"})

	// QueryErrors counts failed catalog queries per query name.
	QueryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pitwall_query_errors_total",
		Help: "Total number of failed catalog queries.",
	}, []string{"query"})

	// CacheHits counts memoization cache hits.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pitwall_cache_hits_total",
		Help: "Total number of memoization cache hits.",
	})

	// CacheMisses counts memoization cache misses.
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pitwall_cache_misses_total",
		Help: "Total number of memoization cache misses.",
	})

	// Predictions counts inference outcomes per model.
	Predictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pitwall_predictions_total",
		Help: "Total number of predictions served.",
	}, []string{"model", "outcome"})

	// ArtifactFetchFailures counts remote bundle fetch failures per model.
	ArtifactFetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pitwall_artifact_fetch_failures_total",
		Help: "Total number of failed remote model artifact fetches.",
	}, []string{"model"})
)
