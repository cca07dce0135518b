package service

import "errors"

var (
	// ErrNilRemoteSource is returned when the engine is built without a
	// remote source.
	ErrNilRemoteSource = errors.New("remote source is nil")

	// ErrNilCacheStore is returned when the engine is built without a cache
	// store.
	ErrNilCacheStore = errors.New("cache store is nil")
)
