// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package shape

import (
	"math/rand"

	"github.com/apexgrid/pitwall/internal/models"
)

// RadarSeries is one entity's (category, count) pairs for a polar plot.
// Multiple drivers or constructors overlay as separate, independently
// colored series.
type RadarSeries struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
	Counts     []int64  `json:"counts"`
	Color      string   `json:"color"`
}

// BuildRadarSeries groups status-breakdown rows by entity name, preserving
// row order within each series (the catalog returns them descending by
// count).
func BuildRadarSeries(rows []models.StatusCount, rnd *rand.Rand) []RadarSeries {
	var order []string
	byName := map[string]*RadarSeries{}

	for _, row := range rows {
		s, ok := byName[row.Name]
		if !ok {
			s = &RadarSeries{Name: row.Name, Color: RandomColor(rnd)}
			byName[row.Name] = s
			order = append(order, row.Name)
		}
		s.Categories = append(s.Categories, row.Status)
		s.Counts = append(s.Counts, row.Count)
	}

	series := make([]RadarSeries, 0, len(order))
	for _, name := range order {
		series = append(series, *byName[name])
	}
	return series
}
