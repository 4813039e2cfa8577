// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package database

import (
	"context"

	"github.com/apexgrid/pitwall/internal/models"
)

// Catalog is the full set of analytical queries the dashboard consumes.
// *DB implements it directly; *CachedCatalog wraps any implementation with
// process-lifetime memoization. API handlers depend on this interface, not
// on *DB, so tests can substitute a stub.
type Catalog interface {
	Seasons(ctx context.Context) ([]models.Season, error)
	MapPoints(ctx context.Context, year int) ([]models.MapPoint, error)
	ConstructorPointsByRace(ctx context.Context, year int) ([]models.ConstructorRacePoints, error)
	SankeyFlow(ctx context.Context, yearFrom int) ([]models.SankeyRow, error)
	ConstructorSuperlatives(ctx context.Context, year int) (models.ConstructorSuperlatives, error)
	ConstructorStatusBreakdown(ctx context.Context, year int, constructor string) ([]models.StatusCount, error)
	ConstructorRosterNames(ctx context.Context, year int) ([]models.ConstructorName, error)
	ConstructorSummary(ctx context.Context, year int, constructor string) (*models.ConstructorSummary, error)
	ConstructorDriverTable(ctx context.Context, year int, constructor string) ([]models.DriverSummary, error)
	ConstructorRaceCounts(ctx context.Context, sinceYear int) ([]models.ConstructorRaceCount, error)
	DriverAgePointDistribution(ctx context.Context, constructor string, year int) ([]models.DriverAgePoints, error)
	DriverStatusBreakdown(ctx context.Context, year int, constructor string) ([]models.StatusCount, error)
	Teams(ctx context.Context, year int) ([]models.Team, error)
	Circuits(ctx context.Context, year int) ([]models.CircuitRace, error)
	InputParamBounds(ctx context.Context, year int) (*models.InputBounds, error)
	PCAFeatureMatrix(ctx context.Context) ([]models.ConstructorFeatures, error)
}

// compile-time interface checks
var (
	_ Catalog = (*DB)(nil)
	_ Catalog = (*CachedCatalog)(nil)
)
