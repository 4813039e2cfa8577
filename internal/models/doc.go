// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

// Package models defines the typed row and response structures shared by the
// database catalog, the result shaper, and the API layer.
//
// Every catalog query returns a slice of one of these row types. Column names
// in the json tags match the aliases the SQL queries assign, so a row can be
// serialized for a chart consumer without renaming.
package models
