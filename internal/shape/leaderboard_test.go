// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apexgrid/pitwall/internal/models"
)

func TestTopConstructors(t *testing.T) {
	// Cumulative series: only each constructor's last value counts.
	series := []models.ConstructorRacePoints{
		{RaceName: "Bahrain GP", ConstructorName: "Ferrari", TotalPoints: 44},
		{RaceName: "Bahrain GP", ConstructorName: "Red Bull", TotalPoints: 0},
		{RaceName: "Saudi GP", ConstructorName: "Ferrari", TotalPoints: 78},
		{RaceName: "Saudi GP", ConstructorName: "Red Bull", TotalPoints: 37},
		{RaceName: "Saudi GP", ConstructorName: "Williams", TotalPoints: 0.5},
	}

	got := TopConstructors(series, 5)
	assert.Equal(t, []string{
		"1. Ferrari: 78",
		"2. Red Bull: 37",
		"3. Williams: 0.5",
	}, got)
}

func TestTopConstructorsTruncatesToN(t *testing.T) {
	series := []models.ConstructorRacePoints{
		{ConstructorName: "A", TotalPoints: 3},
		{ConstructorName: "B", TotalPoints: 2},
		{ConstructorName: "C", TotalPoints: 1},
	}
	assert.Len(t, TopConstructors(series, 2), 2)
}

func TestTopConstructorsTieBreaksByName(t *testing.T) {
	series := []models.ConstructorRacePoints{
		{ConstructorName: "Zeta", TotalPoints: 10},
		{ConstructorName: "Alpha", TotalPoints: 10},
	}
	got := TopConstructors(series, 2)
	assert.Equal(t, []string{"1. Alpha: 10", "2. Zeta: 10"}, got)
}

func TestTopConstructorsEmpty(t *testing.T) {
	assert.Nil(t, TopConstructors(nil, 5))
	assert.Nil(t, TopConstructors([]models.ConstructorRacePoints{{ConstructorName: "A"}}, 0))
}
