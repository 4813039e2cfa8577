// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package artifact

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexgrid/pitwall/internal/config"
)

func storeConfig(dir, remote string) *config.ModelsConfig {
	return &config.ModelsConfig{
		Dir:           dir,
		RemoteBaseURL: remote,
		FetchTimeout:  2 * time.Second,
		FetchRetries:  1,
	}
}

func TestStoreLoadsLocalBundle(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteFile(filepath.Join(dir, "logreg-v1.gob.gz"), logRegBundle()))

	s := NewStore(storeConfig(dir, ""))
	b, err := s.Load(context.Background(), "logreg-v1")
	require.NoError(t, err)
	assert.Equal(t, "logreg-v1", b.ModelID)

	// Second load comes from the in-memory cache and returns the same value.
	again, err := s.Load(context.Background(), "logreg-v1")
	require.NoError(t, err)
	assert.Same(t, b, again)
}

func TestStoreMissingBundleFailsFast(t *testing.T) {
	s := NewStore(storeConfig(t.TempDir(), ""))
	_, err := s.Load(context.Background(), "unknown")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoad)
}

func TestStoreCorruptLocalBundleFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logreg-v1.gob.gz")
	require.NoError(t, os.WriteFile(path, []byte("not a bundle"), 0o600))

	s := NewStore(storeConfig(dir, ""))
	_, err := s.Load(context.Background(), "logreg-v1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoad)
}

func TestStoreFetchesRemoteBundle(t *testing.T) {
	var payload bytes.Buffer
	require.NoError(t, Encode(&payload, logRegBundle()))

	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "/logreg-v1.gob.gz", r.URL.Path)
		_, _ = w.Write(payload.Bytes())
	}))
	defer srv.Close()

	s := NewStore(storeConfig(t.TempDir(), srv.URL))
	b, err := s.Load(context.Background(), "logreg-v1")
	require.NoError(t, err)
	assert.Equal(t, "logreg-v1", b.ModelID)
	assert.Equal(t, 1, hits)

	// Cached afterwards, no second request.
	_, err = s.Load(context.Background(), "logreg-v1")
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestStoreRetriesRemoteFetch(t *testing.T) {
	var payload bytes.Buffer
	require.NoError(t, Encode(&payload, logRegBundle()))

	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write(payload.Bytes())
	}))
	defer srv.Close()

	s := NewStore(storeConfig(t.TempDir(), srv.URL))
	b, err := s.Load(context.Background(), "logreg-v1")
	require.NoError(t, err)
	assert.Equal(t, "logreg-v1", b.ModelID)
	assert.Equal(t, 2, hits)
}

func TestStoreRemoteFailureExhaustsRetries(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewStore(storeConfig(t.TempDir(), srv.URL))
	_, err := s.Load(context.Background(), "logreg-v1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoad)
	assert.Equal(t, 2, hits)
}
