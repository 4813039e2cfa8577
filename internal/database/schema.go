// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package database

import (
	"context"
	"fmt"
)

// statusCategoriesView coarsens the detailed finish/retirement codes in the
// status table into a small set of classes. Classified finishers (outright
// or a number of laps down) count as Finished; non-competing outcomes count
// as Not finished; everything else is a concrete failure category. The
// superlative and breakdown queries treat any category outside
// {Finished, Not finished} as a "problem" result.
const statusCategoriesView = `
CREATE OR REPLACE VIEW status_categories AS
SELECT
    s.statusid,
    CASE
        WHEN s.status = 'Finished' OR s.status LIKE '+%Lap%' THEN 'Finished'
        WHEN s.status IN (
            'Did not start', 'Did not qualify', 'Did not prequalify',
            'Not classified', 'Withdrew', 'Retired', 'Disqualified',
            'Excluded', '107% Rule'
        ) THEN 'Not finished'
        WHEN s.status IN (
            'Accident', 'Collision', 'Collision damage', 'Spun off',
            'Fatal accident', 'Damage'
        ) THEN 'Accident'
        WHEN s.status IN (
            'Driver unwell', 'Injury', 'Injured', 'Illness'
        ) THEN 'Driver'
        WHEN s.status IN (
            'Tyre', 'Puncture', 'Wheel', 'Wheel nut', 'Wheel rim',
            'Wheel bearing'
        ) THEN 'Tyre'
        ELSE 'Mechanical'
    END AS status_category
FROM status s;
`

// ensureStatusCategories creates the status_categories view used by the
// status-breakdown and superlative queries. CREATE OR REPLACE keeps this
// idempotent across restarts.
func (db *DB) ensureStatusCategories(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if _, err := db.pool.Exec(ctx, statusCategoriesView); err != nil {
		return fmt.Errorf("%w: create status_categories view: %v", ErrQuery, err)
	}
	return nil
}
