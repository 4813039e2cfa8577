// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks the configuration against its struct tags and a handful of
// cross-field rules that tags cannot express.
func Validate(cfg *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			// Report the first violation with its namespace so the operator
			// can find the offending key.
			first := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q validation", first.Namespace(), first.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Server.RateLimitReqs > 0 && cfg.Server.RateLimitWindow <= 0 {
		return errors.New("invalid config: server.rate_limit_window must be positive when rate limiting is enabled")
	}

	if cfg.Cluster.Components < 3 {
		// The pipeline clusters the leading 2 and leading 3 components
		// independently, so fewer than 3 retained components cannot work.
		return errors.New("invalid config: cluster.components must be at least 3")
	}

	return nil
}
