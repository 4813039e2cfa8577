// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package inference

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/apexgrid/pitwall/internal/artifact"
	"github.com/apexgrid/pitwall/internal/logging"
	"github.com/apexgrid/pitwall/internal/metrics"
)

// ErrFeatureValidation marks predict requests whose feature map is missing
// an expected feature or carries a value that cannot be coerced to a number.
var ErrFeatureValidation = errors.New("feature validation failed")

// Service resolves model bundles through an artifact store and runs
// predictions against them.
type Service struct {
	store *artifact.Store
}

// NewService creates an inference service backed by the given store.
func NewService(store *artifact.Store) *Service {
	return &Service{store: store}
}

// Predict loads the named model and evaluates it on the supplied features.
// Features are matched by name and assembled in the bundle's training
// order; every feature the bundle names must be present and numeric.
func (s *Service) Predict(ctx context.Context, modelID string, features map[string]any) (float64, error) {
	bundle, err := s.store.Load(ctx, modelID)
	if err != nil {
		metrics.Predictions.WithLabelValues(modelID, "error").Inc()
		return 0, err
	}

	vector, err := assembleVector(bundle, features)
	if err != nil {
		metrics.Predictions.WithLabelValues(modelID, "rejected").Inc()
		return 0, err
	}

	estimator, err := FromBundle(bundle)
	if err != nil {
		metrics.Predictions.WithLabelValues(modelID, "error").Inc()
		return 0, err
	}

	prediction, err := estimator.Predict(vector)
	if err != nil {
		metrics.Predictions.WithLabelValues(modelID, "error").Inc()
		return 0, fmt.Errorf("failed to predict with model %s: %w", modelID, err)
	}

	metrics.Predictions.WithLabelValues(modelID, "success").Inc()
	logging.Ctx(ctx).Debug().
		Str("model_id", modelID).
		Float64("prediction", prediction).
		Msg("Prediction computed")
	return prediction, nil
}

// assembleVector builds the feature vector in bundle order, coercing each
// value to float64.
func assembleVector(b *artifact.Bundle, features map[string]any) ([]float64, error) {
	vector := make([]float64, len(b.Features))
	for i, name := range b.Features {
		raw, ok := features[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing feature %q", ErrFeatureValidation, name)
		}
		value, err := coerceFloat(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: feature %q: %v", ErrFeatureValidation, name, err)
		}
		vector[i] = value
	}
	return vector, nil
}

// coerceFloat accepts the numeric shapes JSON decoding and form parsing
// produce, including numeric strings.
func coerceFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not numeric", t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("value of type %T is not numeric", v)
	}
}
