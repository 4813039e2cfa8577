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

// Seasons returns every championship year with at least one recorded race,
// newest first so season pickers default to the most recent year.
func (db *DB) Seasons(ctx context.Context) (_ []models.Season, err error) {
	defer observe("seasons", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.pool.Query(ctx, `
		SELECT DISTINCT r.year
		FROM races r
		ORDER BY r.year DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: seasons: %v", ErrQuery, err)
	}
	defer rows.Close()

	var seasons []models.Season
	for rows.Next() {
		var s models.Season
		if err := rows.Scan(&s.Year); err != nil {
			return nil, fmt.Errorf("failed to scan season row: %w", err)
		}
		seasons = append(seasons, s)
	}

	return seasons, rows.Err()
}

// MapPoints returns the per-race geographic and performance summary for one
// season: circuit coordinates and country, the winner's total race duration,
// and the winner's fastest lap speed. One row per race, in calendar order.
func (db *DB) MapPoints(ctx context.Context, year int) (_ []models.MapPoint, err error) {
	defer observe("map_points", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.pool.Query(ctx, `
		SELECT
			r.year, r.name AS race_name,
			c.lat AS circuit_lat, c.lng AS circuit_lng, c.country AS circuit_country,
			COALESCE(re.milliseconds, 0) AS race_time_in_milliseconds,
			MAX(COALESCE(re.fastestlapspeed, 0)) AS fastest_lap_speed
		FROM races AS r
		JOIN circuits AS c ON r.circuitid = c.circuitid
		JOIN (
			SELECT raceid, milliseconds, fastestlapspeed
			FROM results
			WHERE positionorder = 1
		) AS re ON r.raceid = re.raceid
		WHERE r.year = $1
		GROUP BY r.year, r.name, r.date, circuit_lat, circuit_lng, circuit_country, race_time_in_milliseconds
		ORDER BY r.date;
	`, year)
	if err != nil {
		return nil, fmt.Errorf("%w: map_points: %v", ErrQuery, err)
	}
	defer rows.Close()

	var points []models.MapPoint
	for rows.Next() {
		var p models.MapPoint
		if err := rows.Scan(
			&p.Year,
			&p.RaceName,
			&p.CircuitLat,
			&p.CircuitLng,
			&p.CircuitCountry,
			&p.RaceMilliseconds,
			&p.FastestLapSpeed,
		); err != nil {
			return nil, fmt.Errorf("failed to scan map point row: %w", err)
		}
		points = append(points, p)
	}

	return points, rows.Err()
}

// ConstructorPointsByRace returns, per constructor, the running cumulative
// points total over the season's races ordered by race date. The window sum
// is computed in SQL so the series is non-decreasing per constructor by
// construction; callers draw season-progress line charts from it directly.
func (db *DB) ConstructorPointsByRace(ctx context.Context, year int) (_ []models.ConstructorRacePoints, err error) {
	defer observe("constructor_points_by_race", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.pool.Query(ctx, `
		SELECT
			race_name,
			constructor_name,
			SUM(race_points) OVER (PARTITION BY constructor_name ORDER BY race_date) AS total_points
		FROM (
			SELECT
				r.name AS race_name,
				c.name AS constructor_name,
				SUM(rs.points) AS race_points,
				r.date AS race_date
			FROM constructors c
			JOIN results rs ON c.constructorid = rs.constructorid
			JOIN races r ON rs.raceid = r.raceid
			WHERE r.year = $1
			GROUP BY r.name, c.name, r.date
		) AS per_race
		ORDER BY race_date ASC, total_points DESC;
	`, year)
	if err != nil {
		return nil, fmt.Errorf("%w: constructor_points_by_race: %v", ErrQuery, err)
	}
	defer rows.Close()

	var series []models.ConstructorRacePoints
	for rows.Next() {
		var p models.ConstructorRacePoints
		if err := rows.Scan(&p.RaceName, &p.ConstructorName, &p.TotalPoints); err != nil {
			return nil, fmt.Errorf("failed to scan constructor points row: %w", err)
		}
		series = append(series, p)
	}

	return series, rows.Err()
}

// SankeyFlow returns the top 20 constructor-to-driver points flows for all
// seasons from yearFrom onward, descending by points. This is the one
// catalog query with range semantics (year >= $1): the flow diagram is
// explicitly an era view, not a single-season view.
func (db *DB) SankeyFlow(ctx context.Context, yearFrom int) (_ []models.SankeyRow, err error) {
	defer observe("sankey_flow", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.pool.Query(ctx, `
		SELECT
			c.constructorid, c.constructorref, c.name, c.nationality,
			d.surname, SUM(r.points) AS total_points
		FROM constructors c
		JOIN results r ON c.constructorid = r.constructorid AND r.points > 0
		JOIN races ra ON r.raceid = ra.raceid
		JOIN drivers d ON r.driverid = d.driverid
		WHERE ra.year >= $1
		GROUP BY c.constructorid, c.constructorref, c.name, c.nationality, d.surname
		ORDER BY total_points DESC
		LIMIT 20;
	`, yearFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: sankey_flow: %v", ErrQuery, err)
	}
	defer rows.Close()

	var flows []models.SankeyRow
	for rows.Next() {
		var f models.SankeyRow
		if err := rows.Scan(
			&f.ConstructorID,
			&f.ConstructorRef,
			&f.ConstructorName,
			&f.Nationality,
			&f.DriverSurname,
			&f.TotalPoints,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sankey row: %w", err)
		}
		flows = append(flows, f)
	}

	return flows, rows.Err()
}
