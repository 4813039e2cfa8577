// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

// Package artifact loads serialized model bundles from disk or a remote URL.
//
// A bundle holds exactly one fitted estimator's state plus its precomputed
// evaluation metrics, trained offline and loaded read-only. Bundles are gob
// encoded, gzip compressed, and carry a sha256 checksum; a bundle that is
// unreachable, corrupt, or incomplete fails the load outright rather than
// returning a partially-populated value. Diagnostic charts are not stored:
// consumers regenerate them from the metrics.
package artifact

import (
	"fmt"
)

// EstimatorKind identifies which estimator state a bundle carries.
type EstimatorKind string

const (
	KindLogisticRegression EstimatorKind = "logistic_regression"
	KindKNN                EstimatorKind = "knn"
	KindSVM                EstimatorKind = "svm"
)

// LogRegState is a fitted logistic regression: inputs are standardized with
// Mean/Scale, then the weighted sum plus intercept goes through a sigmoid.
type LogRegState struct {
	Weights   []float64
	Intercept float64
	Mean      []float64
	Scale     []float64
}

// KNNState is a fitted k-nearest-neighbors classifier: the training matrix,
// its binary labels, and k.
type KNNState struct {
	X [][]float64
	Y []int
	K int
}

// SVMState is a fitted support-vector machine with an RBF kernel: support
// vectors, their dual coefficients, the intercept, and gamma. Inputs are
// standardized with Mean/Scale before the decision function.
type SVMState struct {
	SupportVectors [][]float64
	Coefficients   []float64
	Intercept      float64
	Gamma          float64
	Mean           []float64
	Scale          []float64
}

// Bundle is one serialized model artifact: the estimator state for exactly
// one estimator kind, the ordered feature schema fixed at training time, and
// the evaluation metrics computed on the held-out set.
type Bundle struct {
	ModelID  string
	Kind     EstimatorKind
	Features []string

	LogReg *LogRegState
	KNN    *KNNState
	SVM    *SVMState

	Precision float64
	Recall    float64
	F1        float64
	AUC       float64
}

// Validate confirms every expected field is present and internally
// consistent. The store refuses to hand out a bundle that fails here.
func (b *Bundle) Validate() error {
	if b.ModelID == "" {
		return fmt.Errorf("bundle has no model id")
	}
	if len(b.Features) == 0 {
		return fmt.Errorf("bundle %s has an empty feature schema", b.ModelID)
	}

	n := len(b.Features)
	switch b.Kind {
	case KindLogisticRegression:
		if b.LogReg == nil {
			return fmt.Errorf("bundle %s declares %s but carries no state", b.ModelID, b.Kind)
		}
		if len(b.LogReg.Weights) != n || len(b.LogReg.Mean) != n || len(b.LogReg.Scale) != n {
			return fmt.Errorf("bundle %s: estimator dimensions do not match %d features", b.ModelID, n)
		}
	case KindKNN:
		if b.KNN == nil {
			return fmt.Errorf("bundle %s declares %s but carries no state", b.ModelID, b.Kind)
		}
		if b.KNN.K <= 0 || len(b.KNN.X) == 0 || len(b.KNN.X) != len(b.KNN.Y) {
			return fmt.Errorf("bundle %s: invalid knn state", b.ModelID)
		}
		for _, row := range b.KNN.X {
			if len(row) != n {
				return fmt.Errorf("bundle %s: estimator dimensions do not match %d features", b.ModelID, n)
			}
		}
	case KindSVM:
		if b.SVM == nil {
			return fmt.Errorf("bundle %s declares %s but carries no state", b.ModelID, b.Kind)
		}
		if len(b.SVM.SupportVectors) == 0 || len(b.SVM.SupportVectors) != len(b.SVM.Coefficients) {
			return fmt.Errorf("bundle %s: invalid svm state", b.ModelID)
		}
		if len(b.SVM.Mean) != n || len(b.SVM.Scale) != n {
			return fmt.Errorf("bundle %s: estimator dimensions do not match %d features", b.ModelID, n)
		}
	default:
		return fmt.Errorf("bundle %s: unknown estimator kind %q", b.ModelID, b.Kind)
	}

	for _, m := range []struct {
		name  string
		value float64
	}{
		{"precision", b.Precision},
		{"recall", b.Recall},
		{"f1", b.F1},
		{"auc", b.AUC},
	} {
		if m.value < 0 || m.value > 1 {
			return fmt.Errorf("bundle %s: metric %s out of range: %g", b.ModelID, m.name, m.value)
		}
	}

	return nil
}
