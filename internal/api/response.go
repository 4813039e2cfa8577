// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/apexgrid/pitwall/internal/artifact"
	"github.com/apexgrid/pitwall/internal/database"
	"github.com/apexgrid/pitwall/internal/inference"
	"github.com/apexgrid/pitwall/internal/logging"
	"github.com/apexgrid/pitwall/internal/models"
)

// Error codes returned in the response envelope.
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeDatabaseError      = "DATABASE_ERROR"
	ErrCodeDatabaseDown       = "DATABASE_UNAVAILABLE"
	ErrCodeModelUnavailable   = "MODEL_UNAVAILABLE"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// respondJSON writes the response envelope. Encoding failures at this point
// can only be logged; headers are already committed.
func respondJSON(w http.ResponseWriter, status int, resp *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Error().Err(err).Msg("Failed to encode response")
	}
}

// respondData wraps a payload in a success envelope.
func respondData(w http.ResponseWriter, data interface{}, start time.Time) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondError wraps an error in the envelope with the given status.
func respondError(w http.ResponseWriter, status int, code, message string, details interface{}) {
	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondServiceError maps domain errors to HTTP statuses. Unrecognized
// errors become opaque 500s so internals never leak to clients.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logging.Ctx(r.Context()).Error().Err(err).
		Str("path", r.URL.Path).
		Msg("Request failed")

	switch {
	case errors.Is(err, database.ErrConnection):
		respondError(w, http.StatusServiceUnavailable, ErrCodeDatabaseDown, "database is unreachable", nil)
	case errors.Is(err, database.ErrQuery):
		respondError(w, http.StatusInternalServerError, ErrCodeDatabaseError, "query execution failed", nil)
	case errors.Is(err, artifact.ErrLoad):
		respondError(w, http.StatusServiceUnavailable, ErrCodeModelUnavailable, "model artifact could not be loaded", nil)
	case errors.Is(err, inference.ErrFeatureValidation):
		respondError(w, http.StatusUnprocessableEntity, ErrCodeValidationFailed, err.Error(), nil)
	default:
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "internal server error", nil)
	}
}
