// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// go-image-feed. It aggregates all sub-configurations and is populated by
// merging defaults, environment variables, command-line flags and an optional
// JSON or TOML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings such as logging.
	App App `envPrefix:"APP_"`

	// Remote holds the settings of the paged image feed API.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds the snapshot cache backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the settings of the development feed server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON or TOML configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the file the interactive client writes its logs to.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Remote holds the settings of the remote feed source.
type Remote struct {
	// BaseURL is the REST endpoint of the feed API
	// (e.g. "https://api.flickr.com/services/rest/").
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is sent as the api_key query parameter.
	// Env: REMOTE_API_KEY
	APIKey string `env:"API_KEY"`

	// Method is the API method returning recent images.
	// Env: REMOTE_METHOD
	Method string `env:"METHOD"`

	// PageSize is the fixed number of items requested per page.
	// Env: REMOTE_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// RequestTimeout bounds a single page request (e.g. "15s").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RequestsPerSecond paces page requests. Zero disables pacing.
	// Env: REMOTE_REQUESTS_PER_SECOND
	RequestsPerSecond float64 `env:"REQUESTS_PER_SECOND"`
}

// Storage groups the configuration of the snapshot cache.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`

	// SnapshotKey is the key the page-1 snapshot is stored under.
	// Env: STORAGE_SNAPSHOT_KEY
	SnapshotKey string `env:"SNAPSHOT_KEY"`
}

// DB holds connection settings for the cache database.
type DB struct {
	// DSN selects the backend: a SQLite file path, a
	// "postgres://..." URL, or "memory" for a non-durable in-process cache.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds settings of the development feed server.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP listener ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health listener.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// FixturePath is an optional JSON file with the served catalogue.
	// Env: SERVER_FIXTURE_PATH
	FixturePath string `env:"FIXTURE_PATH"`

	// TotalItems is the size of the generated catalogue used when no
	// fixture is configured.
	// Env: SERVER_TOTAL_ITEMS
	TotalItems int `env:"TOTAL_ITEMS"`

	// APIKey, when set, must be presented by clients as api_key.
	// Env: SERVER_API_KEY
	APIKey string `env:"API_KEY"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is the period of the background feed refresh.
	// Zero disables the job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (later sources override
// non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or TOML file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withConfigFile().
		build()
}
