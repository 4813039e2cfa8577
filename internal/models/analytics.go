// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package models

// Season is one championship year.
type Season struct {
	Year int `json:"year"`
}

// MapPoint is the per-race geographic and performance summary for the season
// map view: where the race happened, how long the winner took, and the
// winner's fastest lap speed.
type MapPoint struct {
	Year             int     `json:"year"`
	RaceName         string  `json:"race_name"`
	CircuitLat       float64 `json:"circuit_lat"`
	CircuitLng       float64 `json:"circuit_lng"`
	CircuitCountry   string  `json:"circuit_country"`
	RaceMilliseconds int64   `json:"race_time_in_milliseconds"`
	FastestLapSpeed  float64 `json:"fastest_lap_speed"`
}

// ConstructorRacePoints is one point of a constructor's season-progress line:
// the running cumulative points total after a given race, ordered by race
// date. TotalPoints is non-decreasing across a constructor's season.
type ConstructorRacePoints struct {
	RaceName        string  `json:"race_name"`
	ConstructorName string  `json:"constructor_name"`
	TotalPoints     float64 `json:"total_points"`
}

// SankeyRow is one constructor-to-driver points flow, the raw input for the
// flow diagram. Limited to the top 20 flows by points.
type SankeyRow struct {
	ConstructorID   int     `json:"constructorid"`
	ConstructorRef  string  `json:"constructorref"`
	ConstructorName string  `json:"name"`
	Nationality     string  `json:"nationality"`
	DriverSurname   string  `json:"surname"`
	TotalPoints     float64 `json:"total_points"`
}

// SuperlativeRow is a single top-1 aggregate: the constructor leading one
// metric (fastest lap speed, wins, or problem count) in a season.
type SuperlativeRow struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	URL   string  `json:"url"`
}

// ConstructorSuperlatives groups the three independent season superlatives.
// Any of the rows may be absent for seasons with no qualifying data.
type ConstructorSuperlatives struct {
	Fastest      *SuperlativeRow `json:"fastest"`
	MostWins     *SuperlativeRow `json:"most_wins"`
	MostProblems *SuperlativeRow `json:"most_problems"`
}

// StatusCount is a per-status-category result count for a constructor or a
// driver, ordered descending by count.
type StatusCount struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Count  int64  `json:"problems"`
	URL    string `json:"url"`
}

// ConstructorName is a constructor active in a season, for selection controls.
type ConstructorName struct {
	Name string `json:"name"`
}

// ConstructorSummary is the one-row season summary card for a constructor.
type ConstructorSummary struct {
	Name         string  `json:"name"`
	URL          string  `json:"url"`
	TotalDrivers int64   `json:"total_drivers"`
	MaxSpeed     float64 `json:"max_speed"`
	TotalPoints  float64 `json:"total_points"`
	TotalWins    int64   `json:"total_wins"`
}

// DriverSummary is one driver's season line in the constructor detail table.
type DriverSummary struct {
	Surname     string  `json:"surname"`
	MaxSpeed    float64 `json:"max_speed"`
	TotalPoints float64 `json:"total_points"`
	TotalWins   int64   `json:"total_wins"`
}

// DriverAgePoints is one (driver, age) career points total. The driver set is
// resolved from one (constructor, season) pair, but the points cover the
// driver's whole career.
type DriverAgePoints struct {
	Driver      string  `json:"driver"`
	Constructor string  `json:"constructor"`
	Age         int     `json:"age"`
	Points      float64 `json:"points"`
}

// ConstructorRaceCount is a constructor's race participation count across a
// year range.
type ConstructorRaceCount struct {
	ConstructorName string `json:"constructor_name"`
	TotalRaces      int64  `json:"total_races"`
}
