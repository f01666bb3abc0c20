// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the required fields of incoming requests before
// they reach the services. Validation errors carry messages that are safe to
// show to API callers.
package validators

import "context"

// Validator validates obj. When fields are given, only those fields are
// checked; otherwise every rule for the type of obj applies.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
