// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package artifact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/apexgrid/pitwall/internal/config"
	"github.com/apexgrid/pitwall/internal/logging"
	"github.com/apexgrid/pitwall/internal/metrics"
)

// ErrLoad indicates a bundle is missing, unreachable, corrupt, or
// incomplete. The triggering prediction request fails; nothing stale or
// partial is ever returned.
var ErrLoad = errors.New("model artifact load failed")

// Store resolves model bundles by id: the local directory first, then the
// configured remote base URL. Loaded bundles are cached for the process
// lifetime; bundles are immutable once trained, so there is no invalidation.
type Store struct {
	cfg     *config.ModelsConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[*Bundle]

	mu      sync.RWMutex
	bundles map[string]*Bundle
}

// NewStore creates a bundle store. Remote fetches share one circuit breaker
// so a flapping artifact host stops being hammered after repeated failures.
func NewStore(cfg *config.ModelsConfig) *Store {
	settings := gobreaker.Settings{
		Name:    "artifact-fetch",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}

	return &Store{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.FetchTimeout},
		breaker: gobreaker.NewCircuitBreaker[*Bundle](settings),
		bundles: make(map[string]*Bundle),
	}
}

// Load returns the bundle for modelID, from cache, disk, or the remote
// host, in that order.
func (s *Store) Load(ctx context.Context, modelID string) (*Bundle, error) {
	s.mu.RLock()
	b, ok := s.bundles[modelID]
	s.mu.RUnlock()
	if ok {
		return b, nil
	}

	b, err := s.load(ctx, modelID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.bundles[modelID] = b
	s.mu.Unlock()

	return b, nil
}

func (s *Store) load(ctx context.Context, modelID string) (*Bundle, error) {
	path := filepath.Join(s.cfg.Dir, modelID+".gob.gz")
	if _, err := os.Stat(path); err == nil {
		return s.loadFile(path, modelID)
	}

	if s.cfg.RemoteBaseURL == "" {
		return nil, fmt.Errorf("%w: no local bundle for %s and no remote configured", ErrLoad, modelID)
	}

	return s.loadRemote(ctx, modelID)
}

func (s *Store) loadFile(path, modelID string) (*Bundle, error) {
	f, err := os.Open(path) //nolint:gosec // path is built from trusted config + model id
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrLoad, path, err)
	}
	defer func() { _ = f.Close() }()

	b, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, modelID, err)
	}

	logging.Debug().Str("model", modelID).Str("path", path).Msg("Loaded bundle from disk")
	return b, nil
}

// loadRemote fetches a bundle through the circuit breaker, retrying up to
// the configured count with doubling delays. Each attempt is bounded by the
// configured fetch timeout through the HTTP client.
func (s *Store) loadRemote(ctx context.Context, modelID string) (*Bundle, error) {
	url := s.cfg.RemoteBaseURL + "/" + modelID + ".gob.gz"

	var lastErr error
	delay := 500 * time.Millisecond
	for attempt := 0; attempt <= s.cfg.FetchRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %s: %v", ErrLoad, modelID, ctx.Err())
			case <-time.After(delay):
			}
			delay *= 2
		}

		b, err := s.breaker.Execute(func() (*Bundle, error) {
			return s.fetch(ctx, url, modelID)
		})
		if err == nil {
			logging.Info().Str("model", modelID).Str("url", url).Msg("Loaded bundle from remote")
			return b, nil
		}

		lastErr = err
		metrics.ArtifactFetchFailures.WithLabelValues(modelID).Inc()
		logging.Warn().Str("model", modelID).Int("attempt", attempt+1).Err(err).Msg("Bundle fetch failed")

		if errors.Is(err, gobreaker.ErrOpenState) {
			// The breaker is open; retrying inside this request is pointless.
			break
		}
	}

	return nil, fmt.Errorf("%w: %s: %v", ErrLoad, modelID, lastErr)
}

func (s *Store) fetch(ctx context.Context, url, modelID string) (*Bundle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer func() { _, _ = io.Copy(io.Discard, resp.Body); _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	b, err := Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", modelID, err)
	}
	return b, nil
}
