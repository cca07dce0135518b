// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// ErrNoTransport is returned by NewHandlers when the configuration enables
// neither the HTTP nor the gRPC listener.
var ErrNoTransport = errors.New("no transport address configured")
