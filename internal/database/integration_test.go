// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexgrid/pitwall/internal/config"
)

// integrationDB connects to the database named by PITWALL_TEST_DSN, or skips
// the test when the variable is unset. The target must hold the historical
// results schema (races, results, drivers, constructors, circuits, status,
// pit_stops).
func integrationDB(t *testing.T) *DB {
	t.Helper()
	dsn := os.Getenv("PITWALL_TEST_DSN")
	if dsn == "" {
		t.Skip("PITWALL_TEST_DSN not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := New(ctx, &config.DatabaseConfig{
		DSN:          dsn,
		MaxConns:     4,
		QueryTimeout: 10 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func TestIntegrationSeasons(t *testing.T) {
	db := integrationDB(t)

	seasons, err := db.Seasons(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, seasons)

	// Newest first.
	for i := 1; i < len(seasons); i++ {
		assert.Greater(t, seasons[i-1].Year, seasons[i].Year)
	}
}

func TestIntegrationSeasonQueries(t *testing.T) {
	db := integrationDB(t)
	ctx := context.Background()

	seasons, err := db.Seasons(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, seasons)
	year := seasons[0].Year

	points, err := db.MapPoints(ctx, year)
	require.NoError(t, err)
	for _, p := range points {
		assert.Equal(t, year, p.Year)
	}

	series, err := db.ConstructorPointsByRace(ctx, year)
	require.NoError(t, err)

	// Cumulative points never decrease within one constructor.
	last := map[string]float64{}
	for _, p := range series {
		assert.GreaterOrEqual(t, p.TotalPoints, last[p.ConstructorName])
		last[p.ConstructorName] = p.TotalPoints
	}

	flows, err := db.SankeyFlow(ctx, year)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(flows), 20)
}

func TestIntegrationEmptySeasonIsValid(t *testing.T) {
	db := integrationDB(t)

	// No season exists this far in the future; every query must return
	// empty results without error.
	points, err := db.MapPoints(context.Background(), 2099)
	require.NoError(t, err)
	assert.Empty(t, points)

	summary, err := db.ConstructorSummary(context.Background(), 2099, "Ferrari")
	require.NoError(t, err)
	assert.Nil(t, summary)

	bounds, err := db.InputParamBounds(context.Background(), 2099)
	require.NoError(t, err)
	assert.Nil(t, bounds)
}

func TestIntegrationFeatureMatrix(t *testing.T) {
	db := integrationDB(t)

	features, err := db.PCAFeatureMatrix(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, features)
	for _, f := range features {
		assert.NotEmpty(t, f.Name)
		assert.GreaterOrEqual(t, f.WinRate, 0.0)
		assert.LessOrEqual(t, f.WinRate, 1.0)
	}
}
