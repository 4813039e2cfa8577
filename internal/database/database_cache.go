// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package database

import (
	"context"

	"github.com/apexgrid/pitwall/internal/cache"
	"github.com/apexgrid/pitwall/internal/metrics"
	"github.com/apexgrid/pitwall/internal/models"
)

// CachedCatalog memoizes every catalog operation keyed on the operation name
// and its full argument list. The cache object is constructed once at
// process start and injected here; with a zero TTL entries live for the
// process lifetime, which is correct because the dataset is static.
//
// Only successful results are cached. Errors always propagate and the next
// call retries the store.
type CachedCatalog struct {
	inner Catalog
	cache *cache.Cache
}

// NewCachedCatalog wraps a catalog with the given cache.
func NewCachedCatalog(inner Catalog, c *cache.Cache) *CachedCatalog {
	return &CachedCatalog{inner: inner, cache: c}
}

// memoized runs compute on a cache miss and stores the result. The key must
// include every parameter that affects the result.
func memoized[T any](c *cache.Cache, key string, compute func() (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			metrics.CacheHits.Inc()
			return typed, nil
		}
	}
	metrics.CacheMisses.Inc()

	v, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}

	c.Set(key, v)
	return v, nil
}

func (cc *CachedCatalog) Seasons(ctx context.Context) ([]models.Season, error) {
	return memoized(cc.cache, cache.GenerateKey("seasons", nil), func() ([]models.Season, error) {
		return cc.inner.Seasons(ctx)
	})
}

func (cc *CachedCatalog) MapPoints(ctx context.Context, year int) ([]models.MapPoint, error) {
	return memoized(cc.cache, cache.GenerateKey("map_points", year), func() ([]models.MapPoint, error) {
		return cc.inner.MapPoints(ctx, year)
	})
}

func (cc *CachedCatalog) ConstructorPointsByRace(ctx context.Context, year int) ([]models.ConstructorRacePoints, error) {
	return memoized(cc.cache, cache.GenerateKey("constructor_points_by_race", year), func() ([]models.ConstructorRacePoints, error) {
		return cc.inner.ConstructorPointsByRace(ctx, year)
	})
}

func (cc *CachedCatalog) SankeyFlow(ctx context.Context, yearFrom int) ([]models.SankeyRow, error) {
	return memoized(cc.cache, cache.GenerateKey("sankey_flow", yearFrom), func() ([]models.SankeyRow, error) {
		return cc.inner.SankeyFlow(ctx, yearFrom)
	})
}

func (cc *CachedCatalog) ConstructorSuperlatives(ctx context.Context, year int) (models.ConstructorSuperlatives, error) {
	return memoized(cc.cache, cache.GenerateKey("constructor_superlatives", year), func() (models.ConstructorSuperlatives, error) {
		return cc.inner.ConstructorSuperlatives(ctx, year)
	})
}

func (cc *CachedCatalog) ConstructorStatusBreakdown(ctx context.Context, year int, constructor string) ([]models.StatusCount, error) {
	key := cache.GenerateKey("constructor_status_breakdown", []interface{}{year, constructor})
	return memoized(cc.cache, key, func() ([]models.StatusCount, error) {
		return cc.inner.ConstructorStatusBreakdown(ctx, year, constructor)
	})
}

func (cc *CachedCatalog) ConstructorRosterNames(ctx context.Context, year int) ([]models.ConstructorName, error) {
	return memoized(cc.cache, cache.GenerateKey("constructor_roster_names", year), func() ([]models.ConstructorName, error) {
		return cc.inner.ConstructorRosterNames(ctx, year)
	})
}

func (cc *CachedCatalog) ConstructorSummary(ctx context.Context, year int, constructor string) (*models.ConstructorSummary, error) {
	key := cache.GenerateKey("constructor_summary", []interface{}{year, constructor})
	return memoized(cc.cache, key, func() (*models.ConstructorSummary, error) {
		return cc.inner.ConstructorSummary(ctx, year, constructor)
	})
}

func (cc *CachedCatalog) ConstructorDriverTable(ctx context.Context, year int, constructor string) ([]models.DriverSummary, error) {
	key := cache.GenerateKey("constructor_driver_table", []interface{}{year, constructor})
	return memoized(cc.cache, key, func() ([]models.DriverSummary, error) {
		return cc.inner.ConstructorDriverTable(ctx, year, constructor)
	})
}

func (cc *CachedCatalog) ConstructorRaceCounts(ctx context.Context, sinceYear int) ([]models.ConstructorRaceCount, error) {
	return memoized(cc.cache, cache.GenerateKey("constructor_race_counts", sinceYear), func() ([]models.ConstructorRaceCount, error) {
		return cc.inner.ConstructorRaceCounts(ctx, sinceYear)
	})
}

func (cc *CachedCatalog) DriverAgePointDistribution(ctx context.Context, constructor string, year int) ([]models.DriverAgePoints, error) {
	key := cache.GenerateKey("driver_age_point_distribution", []interface{}{constructor, year})
	return memoized(cc.cache, key, func() ([]models.DriverAgePoints, error) {
		return cc.inner.DriverAgePointDistribution(ctx, constructor, year)
	})
}

func (cc *CachedCatalog) DriverStatusBreakdown(ctx context.Context, year int, constructor string) ([]models.StatusCount, error) {
	key := cache.GenerateKey("driver_status_breakdown", []interface{}{year, constructor})
	return memoized(cc.cache, key, func() ([]models.StatusCount, error) {
		return cc.inner.DriverStatusBreakdown(ctx, year, constructor)
	})
}

func (cc *CachedCatalog) Teams(ctx context.Context, year int) ([]models.Team, error) {
	return memoized(cc.cache, cache.GenerateKey("teams", year), func() ([]models.Team, error) {
		return cc.inner.Teams(ctx, year)
	})
}

func (cc *CachedCatalog) Circuits(ctx context.Context, year int) ([]models.CircuitRace, error) {
	return memoized(cc.cache, cache.GenerateKey("circuits", year), func() ([]models.CircuitRace, error) {
		return cc.inner.Circuits(ctx, year)
	})
}

func (cc *CachedCatalog) InputParamBounds(ctx context.Context, year int) (*models.InputBounds, error) {
	return memoized(cc.cache, cache.GenerateKey("input_param_bounds", year), func() (*models.InputBounds, error) {
		return cc.inner.InputParamBounds(ctx, year)
	})
}

func (cc *CachedCatalog) PCAFeatureMatrix(ctx context.Context) ([]models.ConstructorFeatures, error) {
	return memoized(cc.cache, cache.GenerateKey("pca_feature_matrix", nil), func() ([]models.ConstructorFeatures, error) {
		return cc.inner.PCAFeatureMatrix(ctx)
	})
}
