// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexgrid/pitwall/internal/cache"
	"github.com/apexgrid/pitwall/internal/models"
)

// countingCatalog records per-method call counts so tests can observe
// which calls reach the underlying store.
type countingCatalog struct {
	calls map[string]int
	err   error
}

func newCountingCatalog() *countingCatalog {
	return &countingCatalog{calls: map[string]int{}}
}

func (c *countingCatalog) bump(name string) error {
	c.calls[name]++
	return c.err
}

func (c *countingCatalog) Seasons(ctx context.Context) ([]models.Season, error) {
	return []models.Season{{Year: 2020}}, c.bump("seasons")
}

func (c *countingCatalog) MapPoints(ctx context.Context, year int) ([]models.MapPoint, error) {
	return []models.MapPoint{{Year: year}}, c.bump("map_points")
}

func (c *countingCatalog) ConstructorPointsByRace(ctx context.Context, year int) ([]models.ConstructorRacePoints, error) {
	return nil, c.bump("constructor_points_by_race")
}

func (c *countingCatalog) SankeyFlow(ctx context.Context, yearFrom int) ([]models.SankeyRow, error) {
	return nil, c.bump("sankey_flow")
}

func (c *countingCatalog) ConstructorSuperlatives(ctx context.Context, year int) (models.ConstructorSuperlatives, error) {
	return models.ConstructorSuperlatives{}, c.bump("constructor_superlatives")
}

func (c *countingCatalog) ConstructorStatusBreakdown(ctx context.Context, year int, constructor string) ([]models.StatusCount, error) {
	return []models.StatusCount{{Name: constructor}}, c.bump("constructor_status_breakdown")
}

func (c *countingCatalog) ConstructorRosterNames(ctx context.Context, year int) ([]models.ConstructorName, error) {
	return nil, c.bump("constructor_roster")
}

func (c *countingCatalog) ConstructorSummary(ctx context.Context, year int, constructor string) (*models.ConstructorSummary, error) {
	return nil, c.bump("constructor_summary")
}

func (c *countingCatalog) ConstructorDriverTable(ctx context.Context, year int, constructor string) ([]models.DriverSummary, error) {
	return nil, c.bump("constructor_driver_table")
}

func (c *countingCatalog) ConstructorRaceCounts(ctx context.Context, sinceYear int) ([]models.ConstructorRaceCount, error) {
	return nil, c.bump("constructor_race_counts")
}

func (c *countingCatalog) DriverAgePointDistribution(ctx context.Context, constructor string, year int) ([]models.DriverAgePoints, error) {
	return nil, c.bump("driver_age_points")
}

func (c *countingCatalog) DriverStatusBreakdown(ctx context.Context, year int, constructor string) ([]models.StatusCount, error) {
	return nil, c.bump("driver_status_breakdown")
}

func (c *countingCatalog) Teams(ctx context.Context, year int) ([]models.Team, error) {
	return nil, c.bump("teams")
}

func (c *countingCatalog) Circuits(ctx context.Context, year int) ([]models.CircuitRace, error) {
	return nil, c.bump("circuits")
}

func (c *countingCatalog) InputParamBounds(ctx context.Context, year int) (*models.InputBounds, error) {
	return &models.InputBounds{MaxGrid: 20}, c.bump("input_param_bounds")
}

func (c *countingCatalog) PCAFeatureMatrix(ctx context.Context) ([]models.ConstructorFeatures, error) {
	return nil, c.bump("pca_feature_matrix")
}

func TestCachedCatalogMemoizesRepeatedCalls(t *testing.T) {
	inner := newCountingCatalog()
	cc := NewCachedCatalog(inner, cache.New(0))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seasons, err := cc.Seasons(ctx)
		require.NoError(t, err)
		require.Equal(t, []models.Season{{Year: 2020}}, seasons)
	}
	assert.Equal(t, 1, inner.calls["seasons"])
}

func TestCachedCatalogKeysOnParameters(t *testing.T) {
	inner := newCountingCatalog()
	cc := NewCachedCatalog(inner, cache.New(0))
	ctx := context.Background()

	_, err := cc.MapPoints(ctx, 2020)
	require.NoError(t, err)
	_, err = cc.MapPoints(ctx, 2021)
	require.NoError(t, err)
	_, err = cc.MapPoints(ctx, 2020)
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls["map_points"])
}

func TestCachedCatalogMultiArgKeys(t *testing.T) {
	inner := newCountingCatalog()
	cc := NewCachedCatalog(inner, cache.New(0))
	ctx := context.Background()

	_, err := cc.ConstructorStatusBreakdown(ctx, 2020, "Ferrari")
	require.NoError(t, err)
	_, err = cc.ConstructorStatusBreakdown(ctx, 2020, "McLaren")
	require.NoError(t, err)
	_, err = cc.ConstructorStatusBreakdown(ctx, 2021, "Ferrari")
	require.NoError(t, err)
	_, err = cc.ConstructorStatusBreakdown(ctx, 2020, "Ferrari")
	require.NoError(t, err)

	assert.Equal(t, 3, inner.calls["constructor_status_breakdown"])
}

func TestCachedCatalogDoesNotCacheErrors(t *testing.T) {
	inner := newCountingCatalog()
	inner.err = errors.New("boom")
	cc := NewCachedCatalog(inner, cache.New(0))
	ctx := context.Background()

	_, err := cc.Seasons(ctx)
	require.Error(t, err)
	_, err = cc.Seasons(ctx)
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls["seasons"])

	// Once the store recovers, the first success is cached.
	inner.err = nil
	_, err = cc.Seasons(ctx)
	require.NoError(t, err)
	_, err = cc.Seasons(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, inner.calls["seasons"])
}

func TestCachedCatalogCachesNilSummary(t *testing.T) {
	// A constructor with no rows yields nil, which is a valid result and
	// is memoized like any other.
	inner := newCountingCatalog()
	cc := NewCachedCatalog(inner, cache.New(0))
	ctx := context.Background()

	summary, err := cc.ConstructorSummary(ctx, 2020, "Brabham")
	require.NoError(t, err)
	assert.Nil(t, summary)

	_, err = cc.ConstructorSummary(ctx, 2020, "Brabham")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls["constructor_summary"])
}
