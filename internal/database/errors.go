// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package database

import "errors"

// Sentinel errors for the error taxonomy callers match with errors.Is.
var (
	// ErrConnection indicates the store is unreachable or the credentials
	// are invalid. Fatal for the triggering request; never retried here.
	ErrConnection = errors.New("database connection failed")

	// ErrQuery indicates a malformed query or constraint violation. This is
	// a programming error and is propagated, never swallowed.
	ErrQuery = errors.New("database query failed")
)
