package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-image-feed/internal/config"
	"github.com/MKhiriev/go-image-feed/internal/logger"
)

// MemoryDSN selects the in-memory cache backend.
const MemoryDSN = "memory"

// ClientStorages groups the client-side storage used by the service layer.
type ClientStorages struct {
	// CacheStore keeps the page-1 snapshot of the feed.
	CacheStore CacheStore

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Picks the backend from cfg.DB.DSN: "memory" for the in-memory store,
//     a postgres:// or postgresql:// URL for PostgreSQL, anything else is a
//     SQLite file path (created if absent).
//  2. Runs pending schema migrations for SQL backends.
//  3. Wires a [CacheStore] bound to cfg.SnapshotKey.
//
// Returns an error if the connection cannot be established or migration
// fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	dsn := strings.TrimSpace(cfg.DB.DSN)
	if dsn == MemoryDSN {
		return &ClientStorages{CacheStore: NewMemoryCacheStore()}, nil
	}

	db, err := connect(ctx, config.ClientDB{DSN: dsn}, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	cache, err := NewSnapshotStore(db, cfg.SnapshotKey, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &ClientStorages{CacheStore: cache, db: db}, nil
}

func connect(ctx context.Context, cfg config.ClientDB, logger *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, logger)
	}
	return NewConnectSQLite(ctx, cfg, logger)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
