// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

// Package api exposes the dashboard's HTTP surface: the analytics query
// catalog, the prediction services, and the clustering pipeline, routed
// with chi and wrapped in a uniform response envelope.
package api
