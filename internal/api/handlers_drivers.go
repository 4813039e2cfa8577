// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package api

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/apexgrid/pitwall/internal/shape"
)

// DriverAgePoints returns the career age/points distribution for every
// driver who raced for the selected constructor in the selected season.
func (h *Handler) DriverAgePoints(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	year, err := parseYear(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	constructor, err := parseConstructor(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}

	rows, err := h.catalog.DriverAgePointDistribution(r.Context(), constructor, year)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, rows, start)
}

// DriverStatusRadar returns each driver's failure category counts for one
// constructor's season, grouped into radar chart series.
func (h *Handler) DriverStatusRadar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	year, err := parseYear(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	constructor, err := parseConstructor(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}

	rows, err := h.catalog.DriverStatusBreakdown(r.Context(), year, constructor)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	respondData(w, shape.BuildRadarSeries(rows, rnd), start)
}
