// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the APP_, AUTH_, SESSION_, STORAGE_, MAIL_ and
// SERVER_ variables declared through the `env` and `envPrefix` tags of
// [StructuredConfig].
//
// All variables that fail to parse are reported together, so a bad
// deployment manifest is fixed in one round.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	var aggErr env.AggregateError
	if errors.As(err, &aggErr) {
		return fmt.Errorf("%w: %w", ErrParsingEnv, errors.Join(aggErr.Errors...))
	}

	return fmt.Errorf("%w: %w", ErrParsingEnv, err)
}
