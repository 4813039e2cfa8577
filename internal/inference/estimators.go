// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

// Package inference evaluates fitted estimators from model bundles against
// user-supplied feature vectors.
//
// Training happens offline; this package only reconstructs an estimator
// from its serialized state and runs its predict operation. Logistic
// regression and KNN produce a probability in [0, 1]; the SVM produces a
// hard 0/1 class label.
package inference

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/apexgrid/pitwall/internal/artifact"
)

// Estimator is a fitted model evaluated on one feature vector at a time.
// The vector must be in the bundle's feature order; the Service guarantees
// that before calling Predict.
type Estimator interface {
	Predict(features []float64) (float64, error)
}

// FromBundle reconstructs the estimator a bundle carries.
func FromBundle(b *artifact.Bundle) (Estimator, error) {
	switch b.Kind {
	case artifact.KindLogisticRegression:
		return &logRegEstimator{state: b.LogReg}, nil
	case artifact.KindKNN:
		return &knnEstimator{state: b.KNN}, nil
	case artifact.KindSVM:
		return &svmEstimator{state: b.SVM}, nil
	default:
		return nil, fmt.Errorf("unknown estimator kind %q", b.Kind)
	}
}

// logRegEstimator standardizes the input with the training mean/scale and
// applies the sigmoid to the weighted sum.
type logRegEstimator struct {
	state *artifact.LogRegState
}

func (e *logRegEstimator) Predict(features []float64) (float64, error) {
	s := e.state
	if len(features) != len(s.Weights) {
		return 0, fmt.Errorf("expected %d features, got %d", len(s.Weights), len(features))
	}

	standardized := standardize(features, s.Mean, s.Scale)
	z := floats.Dot(s.Weights, standardized) + s.Intercept
	return sigmoid(z), nil
}

// knnEstimator votes over the k nearest training points by Euclidean
// distance; the prediction is the positive-class share among them.
type knnEstimator struct {
	state *artifact.KNNState
}

func (e *knnEstimator) Predict(features []float64) (float64, error) {
	s := e.state
	if len(s.X) == 0 || len(s.X[0]) != len(features) {
		return 0, fmt.Errorf("expected %d features, got %d", len(s.X[0]), len(features))
	}

	type neighbor struct {
		dist  float64
		label int
	}
	neighbors := make([]neighbor, len(s.X))
	for i, row := range s.X {
		neighbors[i] = neighbor{dist: floats.Distance(features, row, 2), label: s.Y[i]}
	}
	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i].dist < neighbors[j].dist })

	k := s.K
	if k > len(neighbors) {
		k = len(neighbors)
	}

	positive := 0
	for _, n := range neighbors[:k] {
		if n.label != 0 {
			positive++
		}
	}
	return float64(positive) / float64(k), nil
}

// svmEstimator evaluates the RBF-kernel decision function over the support
// vectors and thresholds it into a 0/1 class label.
type svmEstimator struct {
	state *artifact.SVMState
}

func (e *svmEstimator) Predict(features []float64) (float64, error) {
	s := e.state
	if len(s.Mean) != len(features) {
		return 0, fmt.Errorf("expected %d features, got %d", len(s.Mean), len(features))
	}

	standardized := standardize(features, s.Mean, s.Scale)

	decision := s.Intercept
	for i, sv := range s.SupportVectors {
		d := floats.Distance(standardized, sv, 2)
		decision += s.Coefficients[i] * math.Exp(-s.Gamma*d*d)
	}

	if decision > 0 {
		return 1, nil
	}
	return 0, nil
}

// standardize applies (x - mean) / scale per component. A zero scale means
// the feature was constant at training time; it contributes zero.
func standardize(x, mean, scale []float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		if scale[i] == 0 {
			continue
		}
		out[i] = (x[i] - mean[i]) / scale[i]
	}
	return out
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
