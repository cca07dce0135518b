package store

import "errors"

// Cache errors returned by [CacheStore] implementations. The underlying driver
// error is wrapped alongside.
var (
	ErrCacheRead  = errors.New("cache read failed")
	ErrCacheWrite = errors.New("cache write failed")
	ErrCacheClear = errors.New("cache clear failed")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query or statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan snapshot row")

	// ErrNilDB is returned when a nil connection is handed to a store.
	ErrNilDB = errors.New("database connection is nil")
)
