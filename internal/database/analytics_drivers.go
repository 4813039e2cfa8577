// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/apexgrid/pitwall/internal/models"
)

// DriverAgePointDistribution returns career-wide points at each age for the
// drivers who drove for a constructor in a given season. The driver set is
// resolved from the (constructor, year) filter in a CTE; the outer aggregate
// then covers those drivers' entire careers, unfiltered by year, so the
// distribution extends beyond the selected season in both directions.
func (db *DB) DriverAgePointDistribution(ctx context.Context, constructor string, year int) (_ []models.DriverAgePoints, err error) {
	defer observe("driver_age_point_distribution", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.pool.Query(ctx, `
		WITH season_drivers AS (
			SELECT DISTINCT d.driverid
			FROM drivers d
			JOIN results rs ON d.driverid = rs.driverid
			JOIN races ra ON rs.raceid = ra.raceid
			JOIN constructors c ON rs.constructorid = c.constructorid
			WHERE ra.year = $1 AND c.name = $2
		)
		SELECT
			d.surname AS driver,
			c.name AS constructor,
			(DATE_PART('year', ra.date) - DATE_PART('year', d.dob))::int AS age,
			SUM(r.points) AS points
		FROM drivers d
		JOIN results r ON d.driverid = r.driverid
		JOIN races ra ON r.raceid = ra.raceid
		JOIN constructors c ON r.constructorid = c.constructorid
		WHERE d.driverid IN (SELECT driverid FROM season_drivers)
		GROUP BY d.surname, c.name, age
		ORDER BY age;
	`, year, constructor)
	if err != nil {
		return nil, fmt.Errorf("%w: driver_age_point_distribution: %v", ErrQuery, err)
	}
	defer rows.Close()

	var dist []models.DriverAgePoints
	for rows.Next() {
		var d models.DriverAgePoints
		if err := rows.Scan(&d.Driver, &d.Constructor, &d.Age, &d.Points); err != nil {
			return nil, fmt.Errorf("failed to scan age distribution row: %w", err)
		}
		dist = append(dist, d)
	}

	return dist, rows.Err()
}

// DriverStatusBreakdown returns the per-driver, per-status-category result
// counts for one constructor and season, descending by count.
func (db *DB) DriverStatusBreakdown(ctx context.Context, year int, constructor string) (_ []models.StatusCount, err error) {
	defer observe("driver_status_breakdown", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.pool.Query(ctx, `
		SELECT d.surname, s.status_category AS status, COUNT(s.status_category) AS problems, c.url
		FROM results r
		JOIN races ra ON r.raceid = ra.raceid
		JOIN constructors c ON r.constructorid = c.constructorid
		JOIN status_categories s ON r.statusid = s.statusid
		JOIN drivers d ON r.driverid = d.driverid
		WHERE ra.year = $1 AND c.name = $2
		GROUP BY d.surname, c.url, s.status_category
		ORDER BY problems DESC;
	`, year, constructor)
	if err != nil {
		return nil, fmt.Errorf("%w: driver_status_breakdown: %v", ErrQuery, err)
	}
	defer rows.Close()

	return scanStatusCounts(rows)
}
