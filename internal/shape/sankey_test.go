// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package shape

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexgrid/pitwall/internal/models"
)

func sankeyFixture() []models.SankeyRow {
	return []models.SankeyRow{
		{ConstructorName: "Red Bull", DriverSurname: "Verstappen", TotalPoints: 454},
		{ConstructorName: "Red Bull", DriverSurname: "Perez", TotalPoints: 305},
		{ConstructorName: "Ferrari", DriverSurname: "Leclerc", TotalPoints: 308},
		{ConstructorName: "Ferrari", DriverSurname: "Sainz", TotalPoints: 246},
	}
}

func TestBuildSankeyStructure(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	s := BuildSankey(sankeyFixture(), rnd)

	require.Equal(t, []string{"Points", "Red Bull", "Verstappen", "Perez", "Ferrari", "Leclerc", "Sainz"}, s.Labels)

	// Root accumulates everything, constructors their drivers' points.
	assert.Equal(t, 454.0+305+308+246, s.NodeValues[0])
	assert.Equal(t, 759.0, s.NodeValues[1])
	assert.Equal(t, 554.0, s.NodeValues[4])

	// One root link per constructor plus one link per driver row.
	require.Len(t, s.Sources, 6)
	require.Len(t, s.Targets, 6)
	require.Len(t, s.LinkValues, 6)
	require.Len(t, s.LinkColors, 6)

	// The root link carries the constructor total even though it is created
	// before all driver rows are seen.
	assert.Equal(t, 0, s.Sources[0])
	assert.Equal(t, 1, s.Targets[0])
	assert.Equal(t, 759.0, s.LinkValues[0])
}

func TestBuildSankeyReorderingKeepsTotals(t *testing.T) {
	rows := sankeyFixture()
	reversed := make([]models.SankeyRow, len(rows))
	for i, row := range rows {
		reversed[len(rows)-1-i] = row
	}

	a := BuildSankey(rows, rand.New(rand.NewSource(1)))
	b := BuildSankey(reversed, rand.New(rand.NewSource(1)))

	totals := func(s Sankey) map[string]float64 {
		m := make(map[string]float64, len(s.Labels))
		for i, label := range s.Labels {
			m[label] = s.NodeValues[i]
		}
		return m
	}
	assert.Equal(t, totals(a), totals(b))
}

func TestBuildSankeyEmpty(t *testing.T) {
	s := BuildSankey(nil, rand.New(rand.NewSource(1)))
	assert.Equal(t, []string{"Points"}, s.Labels)
	assert.Equal(t, []float64{0}, s.NodeValues)
	assert.Empty(t, s.Sources)
}

func TestRandomColorFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^rgba\((\d+), (\d+), (\d+), (0\.\d+|1)\)$`)
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		c := RandomColor(rnd)
		require.Regexp(t, pattern, c)
	}
}

func TestBuildRadarSeriesGrouping(t *testing.T) {
	rows := []models.StatusCount{
		{Name: "Hamilton", Status: "Mechanical", Count: 3},
		{Name: "Hamilton", Status: "Accident", Count: 1},
		{Name: "Russell", Status: "Mechanical", Count: 2},
	}

	series := BuildRadarSeries(rows, rand.New(rand.NewSource(1)))
	require.Len(t, series, 2)
	assert.Equal(t, "Hamilton", series[0].Name)
	assert.Equal(t, []string{"Mechanical", "Accident"}, series[0].Categories)
	assert.Equal(t, []int64{3, 1}, series[0].Counts)
	assert.Equal(t, "Russell", series[1].Name)
	assert.NotEmpty(t, series[0].Color)
}
