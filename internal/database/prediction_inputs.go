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

// Teams returns the constructors active in a season for the prediction
// form's team selector.
func (db *DB) Teams(ctx context.Context, year int) (_ []models.Team, err error) {
	defer observe("teams", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.pool.Query(ctx, `
		SELECT DISTINCT c.constructorid, c.name, c.url
		FROM constructors c
		JOIN results r ON c.constructorid = r.constructorid
		JOIN races ra ON r.raceid = ra.raceid
		WHERE ra.year = $1
		ORDER BY c.name;
	`, year)
	if err != nil {
		return nil, fmt.Errorf("%w: teams: %v", ErrQuery, err)
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ConstructorID, &t.Name, &t.URL); err != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", err)
		}
		teams = append(teams, t)
	}

	return teams, rows.Err()
}

// Circuits returns a season's races with their circuit names for the
// prediction form's circuit selector.
func (db *DB) Circuits(ctx context.Context, year int) (_ []models.CircuitRace, err error) {
	defer observe("circuits", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.pool.Query(ctx, `
		SELECT DISTINCT r.raceid, c.name
		FROM results r
		JOIN races ra ON r.raceid = ra.raceid
		JOIN circuits c ON ra.circuitid = c.circuitid
		WHERE ra.year = $1
		ORDER BY r.raceid;
	`, year)
	if err != nil {
		return nil, fmt.Errorf("%w: circuits: %v", ErrQuery, err)
	}
	defer rows.Close()

	var circuits []models.CircuitRace
	for rows.Next() {
		var c models.CircuitRace
		if err := rows.Scan(&c.RaceID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan circuit row: %w", err)
		}
		circuits = append(circuits, c)
	}

	return circuits, rows.Err()
}

// InputParamBounds returns the observed min/max of each numeric prediction
// input for one season: grid position, race duration in minutes (derived
// from milliseconds / 60000), fastest lap speed, and pit-stop sequence
// number. Returns nil when the season has no results with pit stop data.
func (db *DB) InputParamBounds(ctx context.Context, year int) (_ *models.InputBounds, err error) {
	defer observe("input_param_bounds", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var b models.InputBounds
	err = db.pool.QueryRow(ctx, `
		SELECT
			MIN(r.grid) AS min_grid,
			MAX(r.grid) AS max_grid,
			MIN(r.milliseconds) / 60000.0 AS min_minutes,
			MAX(r.milliseconds) / 60000.0 AS max_minutes,
			MIN(COALESCE(r.fastestlapspeed, 0)) AS min_fastestlapspeed,
			MAX(COALESCE(r.fastestlapspeed, 0)) AS max_fastestlapspeed,
			MIN(p.stop) AS min_pit_stop,
			MAX(p.stop) AS max_pit_stop
		FROM results r
		JOIN races ra ON r.raceid = ra.raceid
		JOIN pit_stops p ON r.raceid = p.raceid AND r.driverid = p.driverid
		WHERE ra.year = $1 AND r.milliseconds IS NOT NULL
		HAVING COUNT(*) > 0;
	`, year).Scan(
		&b.MinGrid,
		&b.MaxGrid,
		&b.MinMinutes,
		&b.MaxMinutes,
		&b.MinFastestLapSpeed,
		&b.MaxFastestLapSpeed,
		&b.MinPitStops,
		&b.MaxPitStops,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: input_param_bounds: %v", ErrQuery, err)
	}

	return &b, nil
}

// PCAFeatureMatrix returns one row per constructor with career-wide
// averages: points, grid, finish position, laps, fastest-lap speed, win
// rate, pit stops per drive, and the rate of results outside the Finished
// category. This is the feature matrix the clustering pipeline standardizes
// and projects.
func (db *DB) PCAFeatureMatrix(ctx context.Context) (_ []models.ConstructorFeatures, err error) {
	defer observe("pca_feature_matrix", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.pool.Query(ctx, `
		SELECT
			c.constructorid, c.name,
			AVG(COALESCE(r.points, 0)) AS avg_points,
			AVG(COALESCE(r.grid, 0)) AS avg_grid,
			AVG(COALESCE(r.positionorder, 0)) AS avg_position,
			AVG(COALESCE(r.laps, 0)) AS avg_laps,
			AVG(COALESCE(r.fastestlapspeed, 0)) AS avg_fastestlapspeed,
			AVG(CASE WHEN r.position = 1 THEN 1.0 ELSE 0.0 END) AS win_rate,
			AVG(COALESCE(p.stops, 0)) AS avg_pit_stops,
			AVG(CASE WHEN s.status_category <> 'Finished' THEN 1.0 ELSE 0.0 END) AS non_finish_rate
		FROM results r
		JOIN constructors c ON r.constructorid = c.constructorid
		JOIN status_categories s ON r.statusid = s.statusid
		LEFT JOIN (
			SELECT raceid, driverid, COUNT(*) AS stops
			FROM pit_stops
			GROUP BY raceid, driverid
		) p ON r.raceid = p.raceid AND r.driverid = p.driverid
		GROUP BY c.constructorid, c.name
		ORDER BY c.name;
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: pca_feature_matrix: %v", ErrQuery, err)
	}
	defer rows.Close()

	var features []models.ConstructorFeatures
	for rows.Next() {
		var f models.ConstructorFeatures
		if err := rows.Scan(
			&f.ConstructorID,
			&f.Name,
			&f.AvgPoints,
			&f.AvgGrid,
			&f.AvgPosition,
			&f.AvgLaps,
			&f.AvgFastestSpeed,
			&f.WinRate,
			&f.AvgPitStops,
			&f.NonFinishRate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan feature matrix row: %w", err)
		}
		features = append(features, f)
	}

	return features, rows.Err()
}
