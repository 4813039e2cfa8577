// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package models

import "time"

// Team is a constructor active in a season, used to populate the prediction
// form's team selector.
type Team struct {
	ConstructorID int    `json:"constructorid"`
	Name          string `json:"name"`
	URL           string `json:"url"`
}

// CircuitRace maps a season's races to their circuits for the prediction
// form's circuit selector.
type CircuitRace struct {
	RaceID int    `json:"raceid"`
	Name   string `json:"name"`
}

// InputBounds carries the min/max observed values of each numeric prediction
// input for one season, used to constrain and default the input widgets.
// Minutes are derived from result milliseconds / 60000.
type InputBounds struct {
	MinGrid            int     `json:"min_grid"`
	MaxGrid            int     `json:"max_grid"`
	MinMinutes         float64 `json:"min_minutes"`
	MaxMinutes         float64 `json:"max_minutes"`
	MinFastestLapSpeed float64 `json:"min_fastestlapspeed"`
	MaxFastestLapSpeed float64 `json:"max_fastestlapspeed"`
	MinPitStops        int     `json:"min_pit_stop"`
	MaxPitStops        int     `json:"max_pit_stop"`
}

// ConstructorFeatures is one row of the career-wide constructor feature
// matrix consumed by the clustering pipeline.
type ConstructorFeatures struct {
	ConstructorID   int     `json:"constructorid"`
	Name            string  `json:"name"`
	AvgPoints       float64 `json:"avg_points"`
	AvgGrid         float64 `json:"avg_grid"`
	AvgPosition     float64 `json:"avg_position"`
	AvgLaps         float64 `json:"avg_laps"`
	AvgFastestSpeed float64 `json:"avg_fastestlapspeed"`
	WinRate         float64 `json:"win_rate"`
	AvgPitStops     float64 `json:"avg_pit_stops"`
	NonFinishRate   float64 `json:"non_finish_rate"`
}

// PredictionJobStatus enumerates the lifecycle of an async prediction job.
type PredictionJobStatus string

const (
	PredictionPending  PredictionJobStatus = "pending"
	PredictionRunning  PredictionJobStatus = "running"
	PredictionDone     PredictionJobStatus = "done"
	PredictionFailed   PredictionJobStatus = "failed"
	PredictionRejected PredictionJobStatus = "rejected"
)

// PredictionJob tracks one background prediction from submission to result.
type PredictionJob struct {
	ID          string              `json:"id"`
	ModelID     string              `json:"model_id"`
	Status      PredictionJobStatus `json:"status"`
	Result      *float64            `json:"result,omitempty"`
	Error       string              `json:"error,omitempty"`
	SubmittedAt time.Time           `json:"submitted_at"`
	FinishedAt  *time.Time          `json:"finished_at,omitempty"`
}

// ModelMetrics exposes a bundle's precomputed evaluation metrics.
type ModelMetrics struct {
	ModelID   string   `json:"model_id"`
	Features  []string `json:"features"`
	Precision float64  `json:"precision"`
	Recall    float64  `json:"recall"`
	F1        float64  `json:"f1"`
	AUC       float64  `json:"auc"`
}
