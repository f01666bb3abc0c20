// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// Validation errors. Their messages are shown to API callers as-is.
var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID = errors.New("invalid user ID")

	ErrUsernameRequired = errors.New("Username is required")
	ErrEmailRequired    = errors.New("Email is required")
	ErrPasswordRequired = errors.New("Password is required")

	ErrBrandRequired   = errors.New("Brand is required")
	ErrBrandIDRequired = errors.New("Brand ID is required")
	ErrFlavorRequired  = errors.New("Flavor is required")

	ErrBrandNameRequired  = errors.New("Brand name is required")
	ErrFlavorNameRequired = errors.New("Flavor name is required")
	ErrEmptyInitialFlavor = errors.New("Initial flavor names cannot be empty")
)
