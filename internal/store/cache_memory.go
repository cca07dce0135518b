package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-image-feed/models"
)

type memoryCacheStore struct {
	mu       sync.RWMutex
	snapshot *models.FeedSnapshot
}

// NewMemoryCacheStore returns a non-durable [CacheStore]. Snapshots are
// copied on the way in and out, so callers never share memory with it.
func NewMemoryCacheStore() CacheStore {
	return &memoryCacheStore{}
}

func (m *memoryCacheStore) Read(ctx context.Context) (models.FeedSnapshot, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.FeedSnapshot{}, false, fmt.Errorf("%w: %w", ErrCacheRead, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.snapshot == nil {
		return models.FeedSnapshot{}, false, nil
	}
	return copySnapshot(*m.snapshot), true, nil
}

func (m *memoryCacheStore) Write(ctx context.Context, snapshot models.FeedSnapshot) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}

	c := copySnapshot(snapshot)

	m.mu.Lock()
	m.snapshot = &c
	m.mu.Unlock()
	return nil
}

func (m *memoryCacheStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheClear, err)
	}

	m.mu.Lock()
	m.snapshot = nil
	m.mu.Unlock()
	return nil
}

func copySnapshot(s models.FeedSnapshot) models.FeedSnapshot {
	items := make([]models.FeedItem, len(s.Items))
	copy(items, s.Items)
	return models.FeedSnapshot{Items: items}
}
