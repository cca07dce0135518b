// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks source-independent invariants of the merged
// [StructuredConfig]. Role-specific checks live in the client and server
// views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Remote.PageSize < 0 || cfg.Remote.RequestsPerSecond < 0 {
		return ErrInvalidRemoteConfigs
	}
	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(strings.TrimSpace(cfg.Remote.BaseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidRemoteConfigs
	}
	if cfg.Remote.PageSize <= 0 || cfg.Remote.RequestTimeout <= 0 || cfg.Remote.Method == "" {
		return ErrInvalidRemoteConfigs
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" || strings.TrimSpace(cfg.Storage.SnapshotKey) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.FixturePath == "" && cfg.Server.TotalItems <= 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}
