// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package cluster

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/apexgrid/pitwall/internal/config"
	"github.com/apexgrid/pitwall/internal/logging"
	"github.com/apexgrid/pitwall/internal/models"
)

// featureNames is the column order of the constructor feature matrix. It
// must match the order values are packed into vectors below.
var featureNames = []string{
	"avg_points",
	"avg_grid",
	"avg_position",
	"avg_laps",
	"avg_fastestlapspeed",
	"win_rate",
	"avg_pit_stops",
	"non_finish_rate",
}

// Pipeline computes the constructor segmentation: PCA over the standardized
// feature matrix, then two independent seeded k-means runs over the leading
// two and three components.
type Pipeline struct {
	cfg config.ClusterConfig
}

// NewPipeline creates a pipeline with the given reduction settings.
func NewPipeline(cfg config.ClusterConfig) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Run reduces and clusters the feature matrix. The 2D and 3D groupings use
// separate k-means runs from the same seed, so their cluster IDs are not
// comparable to each other.
func (p *Pipeline) Run(ctx context.Context, features []models.ConstructorFeatures) (*models.ClusterResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(features) < p.cfg.Clusters {
		return nil, fmt.Errorf("need at least %d constructors to cluster, got %d", p.cfg.Clusters, len(features))
	}

	start := time.Now()
	matrix := make([][]float64, len(features))
	for i, f := range features {
		matrix[i] = []float64{
			f.AvgPoints,
			f.AvgGrid,
			f.AvgPosition,
			f.AvgLaps,
			f.AvgFastestSpeed,
			f.WinRate,
			f.AvgPitStops,
			f.NonFinishRate,
		}
	}

	reduced, err := pca(standardize(matrix), p.cfg.Components)
	if err != nil {
		return nil, fmt.Errorf("failed to reduce feature matrix: %w", err)
	}

	points2D, err := p.clusterProjection(features, reduced.Scores, 2)
	if err != nil {
		return nil, err
	}
	points3D, err := p.clusterProjection(features, reduced.Scores, 3)
	if err != nil {
		return nil, err
	}

	loadings := make([]models.ComponentLoading, len(featureNames))
	for j, name := range featureNames {
		row := make([]float64, p.cfg.Components)
		for k := 0; k < p.cfg.Components; k++ {
			row[k] = reduced.Components[j][k] * math.Sqrt(reduced.ExplainedVariance[k])
		}
		loadings[j] = models.ComponentLoading{Feature: name, Loadings: row}
	}

	logging.Ctx(ctx).Info().
		Int("constructors", len(features)).
		Int("components", p.cfg.Components).
		Int("clusters", p.cfg.Clusters).
		Dur("elapsed", time.Since(start)).
		Msg("Clustering pipeline completed")

	return &models.ClusterResult{
		Points2D:          points2D,
		Points3D:          points3D,
		Loadings:          loadings,
		ExplainedVariance: reduced.ExplainedVarianceRatio,
	}, nil
}

// clusterProjection truncates the PCA scores to the leading dims components
// and clusters the truncated points.
func (p *Pipeline) clusterProjection(features []models.ConstructorFeatures, scores [][]float64, dims int) ([]models.ClusterPoint, error) {
	truncated := make([][]float64, len(scores))
	for i, s := range scores {
		truncated[i] = s[:dims]
	}

	rnd := rand.New(rand.NewSource(p.cfg.Seed))
	assignments, err := kmeans(truncated, p.cfg.Clusters, rnd)
	if err != nil {
		return nil, fmt.Errorf("failed to cluster %dD projection: %w", dims, err)
	}

	points := make([]models.ClusterPoint, len(features))
	for i, f := range features {
		points[i] = models.ClusterPoint{
			Constructor: f.Name,
			Components:  append([]float64(nil), truncated[i]...),
			Cluster:     assignments[i],
		}
	}
	return points, nil
}
