// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package shape

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/apexgrid/pitwall/internal/models"
)

// TopConstructors extracts the top n constructors at the final race of a
// cumulative points series and formats them as ranked "N. Name: Points"
// annotation strings. The series is the output of
// ConstructorPointsByRace: cumulative per constructor, so each
// constructor's standing is its last value in input order. Ties rank by
// name for a stable annotation.
func TopConstructors(series []models.ConstructorRacePoints, n int) []string {
	if len(series) == 0 || n <= 0 {
		return nil
	}

	final := make(map[string]float64, 16)
	for _, p := range series {
		final[p.ConstructorName] = p.TotalPoints
	}

	type standing struct {
		name   string
		points float64
	}
	standings := make([]standing, 0, len(final))
	for name, points := range final {
		standings = append(standings, standing{name, points})
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].points != standings[j].points {
			return standings[i].points > standings[j].points
		}
		return standings[i].name < standings[j].name
	})

	if n > len(standings) {
		n = len(standings)
	}

	annotations := make([]string, 0, n)
	for i := 0; i < n; i++ {
		points := strconv.FormatFloat(standings[i].points, 'f', -1, 64)
		annotations = append(annotations, fmt.Sprintf("%d. %s: %s", i+1, standings[i].name, points))
	}

	return annotations
}
