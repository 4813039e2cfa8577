// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package api

import (
	"net/http"
	"time"
)

// Clusters runs the PCA + k-means segmentation over the career-wide
// constructor feature matrix. The pipeline is deterministic and the feature
// matrix query is memoized, so repeated calls are cheap.
func (h *Handler) Clusters(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	features, err := h.catalog.PCAFeatureMatrix(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	result, err := h.pipeline.Run(r.Context(), features)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, result, start)
}
