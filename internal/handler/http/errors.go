// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request errors reported to clients inside a failed envelope. Callers can
// match against them with [errors.Is].
var (
	// ErrInvalidAPIKey is returned when the server requires an API key and
	// the request carries a different one or none at all.
	ErrInvalidAPIKey = errors.New("invalid API key (key not found)")

	// ErrUnknownFormat is returned for any response format other than json.
	ErrUnknownFormat = errors.New("format not found")

	// ErrUnknownMethod is returned when the method parameter names an API
	// method the server does not implement.
	ErrUnknownMethod = errors.New("method not found")

	// ErrMethodNotAllowed is returned for a known path requested with an
	// unsupported HTTP method.
	ErrMethodNotAllowed = errors.New("HTTP method not allowed")
)
