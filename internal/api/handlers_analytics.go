// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package api

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/apexgrid/pitwall/internal/models"
	"github.com/apexgrid/pitwall/internal/shape"
)

// topConstructorCount is the leaderboard depth shown next to the points chart.
const topConstructorCount = 5

// Seasons lists every championship year, newest first.
func (h *Handler) Seasons(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	seasons, err := h.catalog.Seasons(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, seasons, start)
}

// mapPointView is one race marker on the season map, with the winner's race
// time preformatted for the tooltip.
type mapPointView struct {
	RaceName        string  `json:"race_name"`
	Country         string  `json:"country"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	WinnerTime      string  `json:"winner_time"`
	FastestLapSpeed float64 `json:"fastestlapspeed"`
}

// MapPoints returns the season's circuit markers annotated with winner
// race time and fastest lap speed.
func (h *Handler) MapPoints(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	year, err := parseYear(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}

	points, err := h.catalog.MapPoints(r.Context(), year)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	views := make([]mapPointView, len(points))
	for i, p := range points {
		views[i] = mapPointView{
			RaceName:        shape.ShortRaceName(p.RaceName),
			Country:         p.CircuitCountry,
			Lat:             p.CircuitLat,
			Lng:             p.CircuitLng,
			WinnerTime:      shape.FormatMilliseconds(p.RaceMilliseconds),
			FastestLapSpeed: p.FastestLapSpeed,
		}
	}
	respondData(w, views, start)
}

// constructorPointsView pairs the cumulative series with its leaderboard.
type constructorPointsView struct {
	Series      []models.ConstructorRacePoints `json:"series"`
	Leaderboard []string                       `json:"leaderboard"`
}

// ConstructorPoints returns each constructor's cumulative points across the
// season's races plus a top-5 leaderboard of final totals.
func (h *Handler) ConstructorPoints(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	year, err := parseYear(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}

	series, err := h.catalog.ConstructorPointsByRace(r.Context(), year)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	// The catalog result may be a shared cached slice; shape into a copy so
	// the cached rows stay immutable.
	shaped := make([]models.ConstructorRacePoints, len(series))
	for i, p := range series {
		p.RaceName = shape.ShortRaceName(p.RaceName)
		shaped[i] = p
	}

	respondData(w, constructorPointsView{
		Series:      shaped,
		Leaderboard: shape.TopConstructors(shaped, topConstructorCount),
	}, start)
}

// SankeyFlow returns the points-flow diagram from the root node through the
// top constructors to their drivers. Link colors are randomized per call.
func (h *Handler) SankeyFlow(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	year, err := parseYear(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}

	rows, err := h.catalog.SankeyFlow(r.Context(), year)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	respondData(w, shape.BuildSankey(rows, rnd), start)
}
