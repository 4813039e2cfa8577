// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package models

// ClusterPoint is one constructor's position in principal-component space
// with its assigned cluster. Components holds the leading 2 (for the 2D
// scatter) or leading 3 (for the 3D scatter) projected coordinates.
type ClusterPoint struct {
	Constructor string    `json:"constructor"`
	Components  []float64 `json:"components"`
	Cluster     int       `json:"cluster"`
}

// ComponentLoading is one original feature's contribution to each retained
// principal component, scaled by sqrt of the component's explained variance.
type ComponentLoading struct {
	Feature  string    `json:"feature"`
	Loadings []float64 `json:"loadings"`
}

// ClusterResult is the full output of the PCA + k-means pipeline. The 2D and
// 3D assignments come from independent k-means runs and may disagree on
// boundary points; that is a property of k-means, not a defect.
type ClusterResult struct {
	Points2D          []ClusterPoint     `json:"points_2d"`
	Points3D          []ClusterPoint     `json:"points_3d"`
	Loadings          []ComponentLoading `json:"loadings"`
	ExplainedVariance []float64          `json:"explained_variance"`
}
