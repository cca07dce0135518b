// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks data the dev server loads before serving it.
//
// A Validator accepts a value and, optionally, the names of the fields to
// check. With no field names every field the value supports is checked.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
