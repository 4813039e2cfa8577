// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	c := New(0)

	c.Set("key", []int{1, 2, 3})
	got, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCacheZeroTTLNeverExpires(t *testing.T) {
	c := New(0)
	c.Set("key", "value")

	entry := c.entries["key"]
	assert.True(t, entry.ExpiresAt.IsZero())

	got, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestCacheTTLExpiry(t *testing.T) {
	c := New(10 * time.Millisecond)
	c.Set("key", "value")

	time.Sleep(25 * time.Millisecond)
	_, ok := c.Get("key")
	assert.False(t, ok)

	stats := c.GetStats()
	assert.Equal(t, int64(1), stats.Evictions)
}

func TestCacheStats(t *testing.T) {
	c := New(0)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Get("a")
	c.Get("a")
	c.Get("missing")

	stats := c.GetStats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(2), stats.TotalKeys)
	assert.InDelta(t, 66.6, c.HitRate(), 0.1)
}

func TestCacheClear(t *testing.T) {
	c := New(0)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Clear()
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, int64(0), c.GetStats().TotalKeys)
}

func TestGenerateKeyDeterministic(t *testing.T) {
	a := GenerateKey("seasons", nil)
	b := GenerateKey("seasons", nil)
	assert.Equal(t, a, b)
}

func TestGenerateKeyDistinguishesParams(t *testing.T) {
	a := GenerateKey("map_points", 2020)
	b := GenerateKey("map_points", 2021)
	c := GenerateKey("sankey", 2020)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)

	multi1 := GenerateKey("summary", []interface{}{2020, "Ferrari"})
	multi2 := GenerateKey("summary", []interface{}{2020, "McLaren"})
	assert.NotEqual(t, multi1, multi2)
}

func TestGenerateKeyIncludesMethodPrefix(t *testing.T) {
	key := GenerateKey("seasons", nil)
	assert.Contains(t, key, "seasons:")
}
