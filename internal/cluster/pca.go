// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

// Package cluster reduces the career-wide constructor feature matrix with
// PCA and groups the projected points with seeded k-means. Results are
// deterministic for a fixed seed and input ordering.
package cluster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// pcaResult holds the projection of the standardized matrix onto its
// leading principal components.
type pcaResult struct {
	// Scores is n x components, the projected coordinates per row.
	Scores [][]float64
	// Components is features x components, the principal axes as columns.
	Components [][]float64
	// ExplainedVariance is the per-component sample variance.
	ExplainedVariance []float64
	// ExplainedVarianceRatio is each component's share of total variance.
	ExplainedVarianceRatio []float64
}

// standardize centers each column and divides by its standard deviation.
// Non-finite cells are zeroed first so one corrupt aggregate cannot poison
// a whole column. Constant columns standardize to zero.
func standardize(rows [][]float64) [][]float64 {
	n := len(rows)
	if n == 0 {
		return nil
	}
	cols := len(rows[0])

	mean := make([]float64, cols)
	for _, row := range rows {
		for j, v := range row {
			if !isFinite(v) {
				v = 0
			}
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= float64(n)
	}

	std := make([]float64, cols)
	for _, row := range rows {
		for j, v := range row {
			if !isFinite(v) {
				v = 0
			}
			d := v - mean[j]
			std[j] += d * d
		}
	}
	for j := range std {
		std[j] = math.Sqrt(std[j] / float64(n))
	}

	out := make([][]float64, n)
	for i, row := range rows {
		out[i] = make([]float64, cols)
		for j, v := range row {
			if !isFinite(v) {
				v = 0
			}
			if std[j] == 0 {
				continue
			}
			out[i][j] = (v - mean[j]) / std[j]
		}
	}
	return out
}

// pca projects the standardized matrix onto its leading components via a
// thin SVD. Scores are U scaled by the singular values, matching the usual
// X * V projection.
func pca(standardized [][]float64, components int) (*pcaResult, error) {
	n := len(standardized)
	if n == 0 {
		return nil, fmt.Errorf("empty feature matrix")
	}
	cols := len(standardized[0])
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 rows, got %d", n)
	}
	// A thin SVD yields min(n, cols) singular values, so that is the most
	// components the matrix can support.
	if limit := min(n, cols); components > limit {
		return nil, fmt.Errorf("requested %d components from a %dx%d matrix", components, n, cols)
	}

	x := mat.NewDense(n, cols, nil)
	for i, row := range standardized {
		x.SetRow(i, row)
	}

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nil, fmt.Errorf("svd factorization did not converge")
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	sigma := svd.Values(nil)

	total := 0.0
	for _, s := range sigma {
		total += s * s
	}

	res := &pcaResult{
		Scores:                 make([][]float64, n),
		Components:             make([][]float64, cols),
		ExplainedVariance:      make([]float64, components),
		ExplainedVarianceRatio: make([]float64, components),
	}
	for k := 0; k < components; k++ {
		res.ExplainedVariance[k] = sigma[k] * sigma[k] / float64(n-1)
		if total > 0 {
			res.ExplainedVarianceRatio[k] = sigma[k] * sigma[k] / total
		}
	}
	for i := 0; i < n; i++ {
		res.Scores[i] = make([]float64, components)
		for k := 0; k < components; k++ {
			res.Scores[i][k] = u.At(i, k) * sigma[k]
		}
	}
	for j := 0; j < cols; j++ {
		res.Components[j] = make([]float64, components)
		for k := 0; k < components; k++ {
			res.Components[j][k] = v.At(j, k)
		}
	}
	return res, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
