// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

// Package database implements the query catalog over the historical racing
// results store in PostgreSQL.
//
// The schema is the normalized Ergast-style layout: seasons, races, circuits,
// constructors, drivers, results, lap_times, pit_stops and status. The
// dataset is static and read-only; the only DDL this package runs is the
// status_categories view created at startup.
//
// Every catalog operation takes scalar parameters, binds them positionally
// (never interpolated into SQL), and returns a slice of a typed row struct
// from internal/models. Zero matching rows is valid data and comes back as an
// empty slice, never an error.
//
// Year comparison semantics: per-season operations filter with year = $1.
// SankeyFlow and ConstructorRaceCounts are explicit year-range scans and
// filter with >= and > respectively.
package database
