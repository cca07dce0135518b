// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-image-feed/internal/adapter"
	"github.com/MKhiriev/go-image-feed/internal/store"
)

func humanizeFetchError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrNetworkFailure):
		return "Network unavailable or the feed server is unreachable"
	case errors.Is(err, adapter.ErrServerFailure):
		return "The feed server returned an error: " + err.Error()
	case errors.Is(err, adapter.ErrMalformedResponse):
		return "The feed server sent an unexpected response"
	default:
		return err.Error()
	}
}

func humanizeCacheWarning(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, store.ErrCacheRead):
		return "offline cache could not be read"
	case errors.Is(err, store.ErrCacheWrite):
		return "offline cache could not be updated"
	case errors.Is(err, store.ErrCacheClear):
		return "offline cache could not be cleared"
	default:
		return "offline cache: " + err.Error()
	}
}
