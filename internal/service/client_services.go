package service

import (
	"fmt"

	"github.com/MKhiriev/go-image-feed/internal/adapter"
	"github.com/MKhiriev/go-image-feed/internal/config"
	"github.com/MKhiriev/go-image-feed/internal/logger"
	"github.com/MKhiriev/go-image-feed/internal/store"
)

// ClientServices groups the client-side services.
type ClientServices struct {
	FeedService FeedSyncService
	RefreshJob  ClientRefreshJob
}

// NewClientServices wires the feed engine to its remote source and cache and
// prepares the background refresh job.
func NewClientServices(remote adapter.RemoteSource, storages *store.ClientStorages, workersCfg config.ClientWorkers, log *logger.Logger) (*ClientServices, error) {
	if storages == nil {
		return nil, ErrNilCacheStore
	}

	engine, err := NewFeedEngine(remote, storages.CacheStore, log)
	if err != nil {
		return nil, fmt.Errorf("create feed engine: %w", err)
	}

	return &ClientServices{
		FeedService: engine,
		RefreshJob:  NewRefreshJob(engine, workersCfg.RefreshInterval, log),
	}, nil
}
