// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared across handlers; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// yearParam bounds the season selector to the championship era.
type yearParam struct {
	Year int `validate:"required,gte=1950,lte=2100"`
}

// parseYear reads and validates the required ?year= query parameter.
func parseYear(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return 0, fmt.Errorf("year parameter is required")
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("year %q is not an integer", raw)
	}
	if err := validate.Struct(yearParam{Year: year}); err != nil {
		return 0, fmt.Errorf("year %d is out of range", year)
	}
	return year, nil
}

// parseConstructor reads the required ?constructor= query parameter.
func parseConstructor(r *http.Request) (string, error) {
	name := strings.TrimSpace(r.URL.Query().Get("constructor"))
	if name == "" {
		return "", fmt.Errorf("constructor parameter is required")
	}
	return name, nil
}

// predictRequest is the body of a prediction job submission.
type predictRequest struct {
	ModelID  string         `json:"model_id" validate:"required"`
	Features map[string]any `json:"features" validate:"required,min=1"`
}
