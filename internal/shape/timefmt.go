// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

// Package shape post-processes raw catalog rows into chart-ready form:
// label normalization, duration formatting, flow-graph construction,
// leaderboard annotation, and polar series mapping. Every function here is
// pure given its inputs; randomness for cosmetic colors comes from an
// injected *rand.Rand so tests can fix the sequence.
package shape

import (
	"fmt"
	"strings"
)

// MillisecondsParts splits a duration in milliseconds into whole hours,
// minutes and seconds via the integer division chain. Sub-second remainder
// is truncated, so h*3600000 + m*60000 + s*1000 <= ms holds.
func MillisecondsParts(ms int64) (hours, minutes, seconds int64) {
	hours = ms / 3600000
	minutes = ms % 3600000 / 60000
	seconds = ms % 60000 / 1000
	return hours, minutes, seconds
}

// FormatMilliseconds renders a race duration as "Hh Mm Ss".
func FormatMilliseconds(ms int64) string {
	h, m, s := MillisecondsParts(ms)
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}

// ShortRaceName compacts race names for chart labels by replacing the
// literal "Grand Prix" with "GP".
func ShortRaceName(name string) string {
	return strings.ReplaceAll(name, "Grand Prix", "GP")
}
