package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side process settings.
type ClientApp struct {
	// LogLevel is the minimum log level.
	LogLevel string
	// LogFile is the file client logs are appended to.
	LogFile string
}

// ClientRemote holds the settings of the remote feed adapter.
type ClientRemote struct {
	// BaseURL is the feed API endpoint.
	BaseURL string
	// APIKey is sent with every page request.
	APIKey string
	// Method is the API method returning recent images.
	Method string
	// PageSize is the fixed number of items per page.
	PageSize int
	// RequestTimeout bounds a single page request.
	RequestTimeout time.Duration
	// RequestsPerSecond paces page requests; zero disables pacing.
	RequestsPerSecond float64
}

// ClientDB contains local cache database settings.
type ClientDB struct {
	// DSN is a SQLite path, a postgres URL or "memory".
	DSN string
}

// ClientStorage groups snapshot cache settings.
type ClientStorage struct {
	// DB holds the cache database settings.
	DB ClientDB
	// SnapshotKey is the key the page-1 snapshot is stored under.
	SnapshotKey string
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// RefreshInterval is the background refresh period; zero disables it.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Remote  ClientRemote
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the client-relevant fields of cfg.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Remote: ClientRemote{
			BaseURL:           cfg.Remote.BaseURL,
			APIKey:            cfg.Remote.APIKey,
			Method:            cfg.Remote.Method,
			PageSize:          cfg.Remote.PageSize,
			RequestTimeout:    cfg.Remote.RequestTimeout,
			RequestsPerSecond: cfg.Remote.RequestsPerSecond,
		},
		Storage: ClientStorage{
			DB:          ClientDB{DSN: cfg.Storage.DB.DSN},
			SnapshotKey: cfg.Storage.SnapshotKey,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
}
