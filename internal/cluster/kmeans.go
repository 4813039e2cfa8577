// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package cluster

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

const kmeansMaxIterations = 300

// kmeans runs Lloyd's algorithm with centroids seeded from k distinct
// random points. The caller owns the rand source, so a fixed seed yields
// identical assignments across runs.
func kmeans(points [][]float64, k int, rnd *rand.Rand) ([]int, error) {
	n := len(points)
	if n < k {
		return nil, fmt.Errorf("need at least %d points for %d clusters, got %d", k, k, n)
	}
	dims := len(points[0])

	centroids := make([][]float64, k)
	for i, idx := range rnd.Perm(n)[:k] {
		centroids[i] = append([]float64(nil), points[idx]...)
	}

	assignments := make([]int, n)
	counts := make([]int, k)
	sums := make([][]float64, k)
	for i := range sums {
		sums[i] = make([]float64, dims)
	}

	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := false
		for i, p := range points {
			best, bestDist := 0, floats.Distance(p, centroids[0], 2)
			for c := 1; c < k; c++ {
				if d := floats.Distance(p, centroids[c], 2); d < bestDist {
					best, bestDist = c, d
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		for c := 0; c < k; c++ {
			counts[c] = 0
			for j := range sums[c] {
				sums[c][j] = 0
			}
		}
		for i, p := range points {
			c := assignments[i]
			counts[c]++
			floats.Add(sums[c], p)
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				// Reseed an emptied cluster from a random point.
				centroids[c] = append([]float64(nil), points[rnd.Intn(n)]...)
				continue
			}
			for j := range sums[c] {
				centroids[c][j] = sums[c][j] / float64(counts[c])
			}
		}
	}
	return assignments, nil
}
