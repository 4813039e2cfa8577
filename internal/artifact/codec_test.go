// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package artifact

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logRegBundle() *Bundle {
	return &Bundle{
		ModelID:  "logreg-v1",
		Kind:     KindLogisticRegression,
		Features: []string{"grid", "minutes", "fastestlapspeed", "pit_stops"},
		LogReg: &LogRegState{
			Weights:   []float64{-0.8, 0.1, 0.4, -0.2},
			Intercept: 0.3,
			Mean:      []float64{10.5, 95.2, 210.3, 2.1},
			Scale:     []float64{5.7, 12.4, 15.8, 0.9},
		},
		Precision: 0.91,
		Recall:    0.84,
		F1:        0.87,
		AUC:       0.93,
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, logRegBundle()))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, logRegBundle(), got)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not a bundle")))
	assert.Error(t, err)
}

func TestDecodeRejectsTruncatedData(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, logRegBundle()))

	truncated := buf.Bytes()[:buf.Len()/2]
	_, err := Decode(bytes.NewReader(truncated))
	assert.Error(t, err)
}

func TestDecodeRejectsFlippedByte(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, logRegBundle()))

	// Flip a byte near the end, inside the compressed payload.
	data := buf.Bytes()
	data[len(data)-10] ^= 0xff
	_, err := Decode(bytes.NewReader(data))
	assert.Error(t, err)
}

func TestEncodeRefusesInvalidBundle(t *testing.T) {
	b := logRegBundle()
	b.LogReg.Weights = b.LogReg.Weights[:2]

	var buf bytes.Buffer
	err := Encode(&buf, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimensions")
}

func TestBundleValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Bundle)
	}{
		{"missing_model_id", func(b *Bundle) { b.ModelID = "" }},
		{"empty_features", func(b *Bundle) { b.Features = nil }},
		{"missing_state", func(b *Bundle) { b.LogReg = nil }},
		{"unknown_kind", func(b *Bundle) { b.Kind = "forest" }},
		{"metric_out_of_range", func(b *Bundle) { b.AUC = 1.2 }},
		{"dimension_mismatch", func(b *Bundle) { b.LogReg.Mean = []float64{1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := logRegBundle()
			tt.mutate(b)
			assert.Error(t, b.Validate())
		})
	}

	assert.NoError(t, logRegBundle().Validate())
}

func TestBundleValidateKNNAndSVM(t *testing.T) {
	knn := &Bundle{
		ModelID:  "knn-v1",
		Kind:     KindKNN,
		Features: []string{"grid", "minutes"},
		KNN: &KNNState{
			X: [][]float64{{1, 2}, {3, 4}, {5, 6}},
			Y: []int{0, 1, 1},
			K: 3,
		},
		AUC: 0.8,
	}
	require.NoError(t, knn.Validate())

	knn.KNN.Y = knn.KNN.Y[:2]
	assert.Error(t, knn.Validate())

	svm := &Bundle{
		ModelID:  "svm-v1",
		Kind:     KindSVM,
		Features: []string{"grid", "minutes"},
		SVM: &SVMState{
			SupportVectors: [][]float64{{0.5, -1.2}},
			Coefficients:   []float64{1.4},
			Intercept:      -0.1,
			Gamma:          0.5,
			Mean:           []float64{10, 90},
			Scale:          []float64{5, 12},
		},
	}
	require.NoError(t, svm.Validate())

	svm.SVM.Coefficients = nil
	assert.Error(t, svm.Validate())
}
