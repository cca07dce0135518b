// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the local snapshot cache of the image feed.
//
// [CacheStore] persists the page-1 snapshot under a single key. SQL backends
// (SQLite by default, PostgreSQL through the pgx stdlib driver) share one
// implementation; an in-memory store backs tests and the "memory" DSN.
package store

import (
	"context"

	"github.com/MKhiriev/go-image-feed/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cache_store_mock.go -package=mock

// CacheStore persists the feed snapshot.
type CacheStore interface {
	// Read returns the stored snapshot. ok is false when nothing is stored or
	// the stored payload cannot be decoded.
	Read(ctx context.Context) (snapshot models.FeedSnapshot, ok bool, err error)

	// Write replaces the stored snapshot atomically.
	Write(ctx context.Context, snapshot models.FeedSnapshot) error

	// Clear removes the stored snapshot. Clearing an absent snapshot is not
	// an error.
	Clear(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification tells whether a failed database operation should be
// retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable marks errors that may go away on a later attempt, such as a
	// dropped connection or a deadlock rollback.
	Retryable
)
