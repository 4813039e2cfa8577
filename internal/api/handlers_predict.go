// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/apexgrid/pitwall/internal/models"
)

// Teams lists the constructors active in a season for the prediction form.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	year, err := parseYear(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}

	teams, err := h.catalog.Teams(r.Context(), year)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, teams, start)
}

// Circuits lists a season's races for the prediction form.
func (h *Handler) Circuits(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	year, err := parseYear(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}

	circuits, err := h.catalog.Circuits(r.Context(), year)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, circuits, start)
}

// InputBounds returns the observed min/max of each numeric prediction input
// for a season, or null when the season has no usable rows.
func (h *Handler) InputBounds(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	year, err := parseYear(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}

	bounds, err := h.catalog.InputParamBounds(r.Context(), year)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, bounds, start)
}

// ModelMetrics returns a bundle's precomputed evaluation metrics.
func (h *Handler) ModelMetrics(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	modelID := chi.URLParam(r, "modelID")

	bundle, err := h.store.Load(r.Context(), modelID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondData(w, models.ModelMetrics{
		ModelID:   bundle.ModelID,
		Features:  bundle.Features,
		Precision: bundle.Precision,
		Recall:    bundle.Recall,
		F1:        bundle.F1,
		AUC:       bundle.AUC,
	}, start)
}

// SubmitPrediction queues a prediction job and returns its ID with 202.
// Feature validation happens in the worker; a malformed body or missing
// model ID fails fast here instead.
func (h *Handler) SubmitPrediction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "request body is not valid JSON", nil)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidationFailed, "model_id and features are required", nil)
		return
	}

	job := h.jobs.Submit(req.ModelID, req.Features)

	status := http.StatusAccepted
	if job.Status == models.PredictionRejected {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, &models.APIResponse{
		Status: "success",
		Data:   job,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// GetPrediction returns the state of a previously submitted job.
func (h *Handler) GetPrediction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	jobID := chi.URLParam(r, "jobID")

	job := h.jobs.Get(jobID)
	if job == nil {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "unknown prediction job", nil)
		return
	}
	respondData(w, job, start)
}
