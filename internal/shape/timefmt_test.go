// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMilliseconds(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want string
	}{
		{"zero", 0, "0h 0m 0s"},
		{"sub_second_truncates", 999, "0h 0m 0s"},
		{"exact_second", 1000, "0h 0m 1s"},
		{"exact_minute", 60000, "0h 1m 0s"},
		{"exact_hour", 3600000, "1h 0m 0s"},
		{"typical_race_time", 5523897, "1h 32m 3s"},
		{"minutes_do_not_carry", 3599999, "0h 59m 59s"},
		{"multi_hour", 7384000, "2h 3m 4s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMilliseconds(tt.ms))
		})
	}
}

func TestMillisecondsPartsBounds(t *testing.T) {
	// Reassembling the parts never exceeds the input.
	for _, ms := range []int64{0, 1, 999, 1001, 59999, 60001, 3599999, 3600001, 5523897} {
		h, m, s := MillisecondsParts(ms)
		assert.GreaterOrEqual(t, ms, h*3600000+m*60000+s*1000, "ms=%d", ms)
		assert.Less(t, m, int64(60))
		assert.Less(t, s, int64(60))
	}
}

func TestShortRaceName(t *testing.T) {
	assert.Equal(t, "Monaco GP", ShortRaceName("Monaco Grand Prix"))
	assert.Equal(t, "Indianapolis 500", ShortRaceName("Indianapolis 500"))
	assert.Equal(t, "", ShortRaceName(""))
}
