// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package api

import (
	"net/http"
	"time"
)

// ConstructorSuperlatives returns the season's fastest, winningest, and most
// failure-prone constructor. Any slot can be null in sparse seasons.
func (h *Handler) ConstructorSuperlatives(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	year, err := parseYear(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}

	superlatives, err := h.catalog.ConstructorSuperlatives(r.Context(), year)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, superlatives, start)
}

// ConstructorStatusBreakdown returns per-driver failure category counts for
// one constructor's season.
func (h *Handler) ConstructorStatusBreakdown(w http.ResponseWriter, r *http.Request) {
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

	rows, err := h.catalog.ConstructorStatusBreakdown(r.Context(), year, constructor)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, rows, start)
}

// ConstructorRoster lists the constructors that raced in a season.
func (h *Handler) ConstructorRoster(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	year, err := parseYear(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}

	names, err := h.catalog.ConstructorRosterNames(r.Context(), year)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, names, start)
}

// ConstructorSummary returns a constructor's season aggregate, or null when
// the constructor did not race that year.
func (h *Handler) ConstructorSummary(w http.ResponseWriter, r *http.Request) {
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

	summary, err := h.catalog.ConstructorSummary(r.Context(), year, constructor)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, summary, start)
}

// ConstructorDrivers returns the per-driver season table for one constructor.
func (h *Handler) ConstructorDrivers(w http.ResponseWriter, r *http.Request) {
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

	drivers, err := h.catalog.ConstructorDriverTable(r.Context(), year, constructor)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, drivers, start)
}

// ConstructorRaceCounts returns total race entries per constructor in the
// seasons after the given year.
func (h *Handler) ConstructorRaceCounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	year, err := parseYear(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}

	counts, err := h.catalog.ConstructorRaceCounts(r.Context(), year)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, counts, start)
}
