package config

import "time"

// Default values applied before any other configuration source.
const (
	DefaultRemoteBaseURL     = "https://api.flickr.com/services/rest/"
	DefaultRemoteMethod      = "flickr.photos.getRecent"
	DefaultPageSize          = 20
	DefaultRequestTimeout    = 15 * time.Second
	DefaultSnapshotKey       = "cachedImages"
	DefaultDSN               = "image-feed.db"
	DefaultLogLevel          = "debug"
	DefaultServerTotalItems  = 200
	DefaultServerReqTimeout  = 30 * time.Second
	DefaultRequestsPerSecond = 2
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Remote: Remote{
			BaseURL:           DefaultRemoteBaseURL,
			Method:            DefaultRemoteMethod,
			PageSize:          DefaultPageSize,
			RequestTimeout:    DefaultRequestTimeout,
			RequestsPerSecond: DefaultRequestsPerSecond,
		},
		Storage: Storage{
			DB:          DB{DSN: DefaultDSN},
			SnapshotKey: DefaultSnapshotKey,
		},
		Server: Server{
			RequestTimeout: DefaultServerReqTimeout,
			TotalItems:     DefaultServerTotalItems,
		},
	}
}
