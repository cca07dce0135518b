// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// FlickrAPIKeyEnv is read for the remote API key when REMOTE_API_KEY is not
// set.
const FlickrAPIKeyEnv = "FLICKR_API_KEY"

// parseEnv fills cfg from the environment through the `env` and `envPrefix`
// tags of [StructuredConfig].
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Remote.APIKey == "" {
		cfg.Remote.APIKey = os.Getenv(FlickrAPIKeyEnv)
	}

	return nil
}
