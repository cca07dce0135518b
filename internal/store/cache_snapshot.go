// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-image-feed/internal/logger"
	"github.com/MKhiriev/go-image-feed/models"
)

const (
	defaultMaxAttempts  = 3
	defaultRetryBackoff = 50 * time.Millisecond
)

type snapshotStore struct {
	db     *DB
	key    string
	logger *logger.Logger

	maxAttempts uint64
	backoff     time.Duration
	now         func() time.Time
}

// NewSnapshotStore returns a SQL [CacheStore] keeping its snapshot in the
// feed_snapshots row identified by key. Several stores with different keys
// can share one database without seeing each other's data.
func NewSnapshotStore(db *DB, key string, log *logger.Logger) (CacheStore, error) {
	if db == nil || db.DB == nil {
		return nil, ErrNilDB
	}
	if key == "" {
		return nil, fmt.Errorf("empty snapshot key")
	}

	return &snapshotStore{
		db:          db,
		key:         key,
		logger:      log.WithComponent("cache"),
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultRetryBackoff,
		now:         time.Now,
	}, nil
}

// Read implements [CacheStore]. A missing row and an undecodable payload are
// both reported as absent; the latter is logged.
func (s *snapshotStore) Read(ctx context.Context) (models.FeedSnapshot, bool, error) {
	query, args, err := buildSelectSnapshotQuery(s.db.builder(), s.key)
	if err != nil {
		return models.FeedSnapshot{}, false, fmt.Errorf("%w: %w", ErrCacheRead, err)
	}

	var payload []byte
	err = s.withRetry(ctx, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.FeedSnapshot{}, false, nil
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "snapshotStore.Read").
			Str("key", s.key).
			Msg("failed to read snapshot")
		return models.FeedSnapshot{}, false, fmt.Errorf("%w: %w: %w", ErrCacheRead, ErrScanningRow, err)
	}

	snapshot, err := models.DecodeSnapshot(payload)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "snapshotStore.Read").
			Str("key", s.key).
			Msg("stored snapshot is not decodable, treating it as absent")
		return models.FeedSnapshot{}, false, nil
	}

	return snapshot, true, nil
}

// Write implements [CacheStore] with a single upsert statement.
func (s *snapshotStore) Write(ctx context.Context, snapshot models.FeedSnapshot) error {
	payload, err := models.EncodeSnapshot(snapshot)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}

	query, args, err := buildUpsertSnapshotQuery(s.db.builder(), s.key, payload, snapshot.Len(), s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}

	err = s.withRetry(ctx, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		s.logger.Err(err).
			Str("func", "snapshotStore.Write").
			Str("key", s.key).
			Int("items", snapshot.Len()).
			Msg("failed to write snapshot")
		return fmt.Errorf("%w: %w: %w", ErrCacheWrite, ErrExecutingQuery, err)
	}

	s.logger.Debug().Str("key", s.key).Int("items", snapshot.Len()).Msg("snapshot written")
	return nil
}

// Clear implements [CacheStore].
func (s *snapshotStore) Clear(ctx context.Context) error {
	query, args, err := buildDeleteSnapshotQuery(s.db.builder(), s.key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCacheClear, err)
	}

	err = s.withRetry(ctx, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		s.logger.Err(err).
			Str("func", "snapshotStore.Clear").
			Str("key", s.key).
			Msg("failed to clear snapshot")
		return fmt.Errorf("%w: %w: %w", ErrCacheClear, ErrExecutingQuery, err)
	}

	s.logger.Debug().Str("key", s.key).Msg("snapshot cleared")
	return nil
}

// withRetry runs fn until it succeeds, fails with an error the classifier
// marks as non-retryable, or maxAttempts is reached.
func (s *snapshotStore) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(s.maxAttempts-1, retry.NewExponential(s.backoff))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil || s.db.classify(err) != Retryable {
			return err
		}

		s.logger.Warn().Err(err).
			Str("key", s.key).
			Int("attempt", attempt).
			Msg("retryable database error")
		return retry.RetryableError(err)
	})
}
