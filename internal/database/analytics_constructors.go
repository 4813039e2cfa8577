// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/apexgrid/pitwall/internal/models"
)

// ConstructorSuperlatives returns the three independent season superlatives:
// the constructor with the single highest fastest-lap speed, the constructor
// with the most wins, and the constructor with the most "problem" results
// (status category outside Finished / Not finished). Each aggregate is
// tie-broken by descending metric value and returns at most one row; a
// season with no qualifying data leaves the corresponding field nil.
func (db *DB) ConstructorSuperlatives(ctx context.Context, year int) (_ models.ConstructorSuperlatives, err error) {
	defer observe("constructor_superlatives", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var out models.ConstructorSuperlatives

	out.Fastest, err = db.topSuperlative(ctx, `
		SELECT c.name, MAX(COALESCE(r.fastestlapspeed, 0)) AS value, c.url
		FROM results r
		JOIN races ra ON r.raceid = ra.raceid
		JOIN constructors c ON r.constructorid = c.constructorid
		WHERE ra.year = $1
		GROUP BY c.name, c.url
		ORDER BY value DESC
		LIMIT 1;
	`, year)
	if err != nil {
		return out, fmt.Errorf("%w: superlative fastest: %v", ErrQuery, err)
	}

	out.MostWins, err = db.topSuperlative(ctx, `
		SELECT c.name, COUNT(*)::float8 AS value, c.url
		FROM results r
		JOIN races ra ON r.raceid = ra.raceid
		JOIN constructors c ON r.constructorid = c.constructorid
		WHERE ra.year = $1 AND r.position = 1
		GROUP BY c.name, c.url
		ORDER BY value DESC
		LIMIT 1;
	`, year)
	if err != nil {
		return out, fmt.Errorf("%w: superlative wins: %v", ErrQuery, err)
	}

	out.MostProblems, err = db.topSuperlative(ctx, `
		SELECT c.name, COUNT(s.status_category)::float8 AS value, c.url
		FROM results r
		JOIN races ra ON r.raceid = ra.raceid
		JOIN constructors c ON r.constructorid = c.constructorid
		JOIN status_categories s ON r.statusid = s.statusid
		WHERE ra.year = $1 AND s.status_category NOT IN ('Finished', 'Not finished')
		GROUP BY c.name, c.url
		ORDER BY value DESC
		LIMIT 1;
	`, year)
	if err != nil {
		return out, fmt.Errorf("%w: superlative problems: %v", ErrQuery, err)
	}

	return out, nil
}

// topSuperlative runs one top-1 aggregate. No rows is valid and yields nil.
func (db *DB) topSuperlative(ctx context.Context, query string, year int) (*models.SuperlativeRow, error) {
	var row models.SuperlativeRow
	err := db.pool.QueryRow(ctx, query, year).Scan(&row.Name, &row.Value, &row.URL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ConstructorStatusBreakdown returns the per-status-category result counts
// for one constructor in one season, descending by count. An unknown
// constructor or an empty season returns an empty slice.
func (db *DB) ConstructorStatusBreakdown(ctx context.Context, year int, constructor string) (_ []models.StatusCount, err error) {
	defer observe("constructor_status_breakdown", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.pool.Query(ctx, `
		SELECT c.name, s.status_category AS status, COUNT(s.status_category) AS problems, c.url
		FROM results r
		JOIN races ra ON r.raceid = ra.raceid
		JOIN constructors c ON r.constructorid = c.constructorid
		JOIN status_categories s ON r.statusid = s.statusid
		WHERE ra.year = $1 AND c.name = $2
		GROUP BY c.name, c.url, s.status_category
		ORDER BY problems DESC;
	`, year, constructor)
	if err != nil {
		return nil, fmt.Errorf("%w: constructor_status_breakdown: %v", ErrQuery, err)
	}
	defer rows.Close()

	return scanStatusCounts(rows)
}

// ConstructorRosterNames returns the distinct constructor names active in a
// season, for populating selection controls.
func (db *DB) ConstructorRosterNames(ctx context.Context, year int) (_ []models.ConstructorName, err error) {
	defer observe("constructor_roster_names", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.pool.Query(ctx, `
		SELECT c.name
		FROM results r
		JOIN races ra ON r.raceid = ra.raceid
		JOIN constructors c ON r.constructorid = c.constructorid
		WHERE ra.year = $1
		GROUP BY c.name
		ORDER BY c.name;
	`, year)
	if err != nil {
		return nil, fmt.Errorf("%w: constructor_roster_names: %v", ErrQuery, err)
	}
	defer rows.Close()

	var names []models.ConstructorName
	for rows.Next() {
		var n models.ConstructorName
		if err := rows.Scan(&n.Name); err != nil {
			return nil, fmt.Errorf("failed to scan constructor name row: %w", err)
		}
		names = append(names, n)
	}

	return names, rows.Err()
}

// ConstructorSummary returns the one-row season summary for a constructor:
// distinct-driver count, best fastest-lap speed, total points, total wins.
// Returns nil (not an error) when the constructor did not run that season.
func (db *DB) ConstructorSummary(ctx context.Context, year int, constructor string) (_ *models.ConstructorSummary, err error) {
	defer observe("constructor_summary", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var s models.ConstructorSummary
	err = db.pool.QueryRow(ctx, `
		SELECT
			c.name, c.url,
			COUNT(DISTINCT r.driverid) AS total_drivers,
			MAX(COALESCE(r.fastestlapspeed, 0)) AS max_speed,
			SUM(r.points) AS total_points,
			SUM(CASE WHEN r.position = 1 THEN 1 ELSE 0 END) AS total_wins
		FROM results r
		JOIN races ra ON r.raceid = ra.raceid
		JOIN constructors c ON r.constructorid = c.constructorid
		WHERE ra.year = $1 AND c.name = $2
		GROUP BY c.name, c.url;
	`, year, constructor).Scan(
		&s.Name,
		&s.URL,
		&s.TotalDrivers,
		&s.MaxSpeed,
		&s.TotalPoints,
		&s.TotalWins,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: constructor_summary: %v", ErrQuery, err)
	}

	return &s, nil
}

// ConstructorDriverTable returns each driver's best speed, points and wins
// for one constructor and season.
func (db *DB) ConstructorDriverTable(ctx context.Context, year int, constructor string) (_ []models.DriverSummary, err error) {
	defer observe("constructor_driver_table", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.pool.Query(ctx, `
		SELECT
			d.surname,
			MAX(COALESCE(r.fastestlapspeed, 0)) AS max_speed,
			SUM(r.points) AS total_points,
			SUM(CASE WHEN r.position = 1 THEN 1 ELSE 0 END) AS total_wins
		FROM results r
		JOIN races ra ON r.raceid = ra.raceid
		JOIN constructors c ON r.constructorid = c.constructorid
		JOIN drivers d ON r.driverid = d.driverid
		WHERE ra.year = $1 AND c.name = $2
		GROUP BY d.surname
		ORDER BY total_points DESC;
	`, year, constructor)
	if err != nil {
		return nil, fmt.Errorf("%w: constructor_driver_table: %v", ErrQuery, err)
	}
	defer rows.Close()

	var drivers []models.DriverSummary
	for rows.Next() {
		var d models.DriverSummary
		if err := rows.Scan(&d.Surname, &d.MaxSpeed, &d.TotalPoints, &d.TotalWins); err != nil {
			return nil, fmt.Errorf("failed to scan driver summary row: %w", err)
		}
		drivers = append(drivers, d)
	}

	return drivers, rows.Err()
}

// ConstructorRaceCounts returns each constructor's race participation count
// for all seasons after sinceYear, descending. Range semantics (year > $1)
// are intentional: the view compares eras, not single seasons.
func (db *DB) ConstructorRaceCounts(ctx context.Context, sinceYear int) (_ []models.ConstructorRaceCount, err error) {
	defer observe("constructor_race_counts", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.pool.Query(ctx, `
		SELECT c.name AS constructor_name, COUNT(DISTINCT r.raceid) AS total_races
		FROM constructors c
		JOIN results rs ON c.constructorid = rs.constructorid
		JOIN races r ON rs.raceid = r.raceid
		WHERE r.year > $1
		GROUP BY c.name
		ORDER BY total_races DESC;
	`, sinceYear)
	if err != nil {
		return nil, fmt.Errorf("%w: constructor_race_counts: %v", ErrQuery, err)
	}
	defer rows.Close()

	var counts []models.ConstructorRaceCount
	for rows.Next() {
		var c models.ConstructorRaceCount
		if err := rows.Scan(&c.ConstructorName, &c.TotalRaces); err != nil {
			return nil, fmt.Errorf("failed to scan race count row: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// scanStatusCounts collects status-breakdown rows shared by the constructor
// and driver variants.
func scanStatusCounts(rows pgx.Rows) ([]models.StatusCount, error) {
	var counts []models.StatusCount
	for rows.Next() {
		var s models.StatusCount
		if err := rows.Scan(&s.Name, &s.Status, &s.Count, &s.URL); err != nil {
			return nil, fmt.Errorf("failed to scan status count row: %w", err)
		}
		counts = append(counts, s)
	}
	return counts, rows.Err()
}
