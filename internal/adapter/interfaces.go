// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the remote feed source used by the sync engine.
//
// The primary abstraction is [RemoteSource], which decouples the engine from
// the transport. The package ships an HTTP/REST implementation for
// Flickr-compatible feeds ([NewHTTPRemoteSource]).
//
// Failures are reported as the sentinel values defined in errors.go so that
// callers can use [errors.Is] for transport-agnostic error handling
// (e.g. [ErrNetworkFailure] for timeouts, [ErrServerFailure] for non-2xx).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-image-feed/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_source_mock.go -package=mock

// RemoteSource fetches pages of the remote image feed.
type RemoteSource interface {
	// FetchPage requests the 1-based page with the configured page size.
	// An empty page means the feed has ended and is not an error. On failure
	// no partial data is returned.
	FetchPage(ctx context.Context, page int) (models.Page, error)
}
