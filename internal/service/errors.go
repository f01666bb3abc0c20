// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserAlreadyExists  = errors.New("username or email already exists")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrBrandNotFound       = errors.New("brand not found")
	ErrBrandAlreadyExists  = errors.New("brand with this name or id already exists")
	ErrFlavorAlreadyExists = errors.New("flavor already exists")
	ErrBrandInUse          = errors.New("brand is in use")

	ErrEntryNotFound = errors.New("seltzer not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ValidationError reports rejected input. Its message comes from the
// validator and is safe to show to callers.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

// Unwrap makes both ErrInvalidDataProvided and the validator error
// matchable with errors.Is.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidDataProvided, e.Err}
}

// BrandInUseError is returned when a brand cannot be deleted because
// entries still reference it.
type BrandInUseError struct {
	Count int
}

func (e *BrandInUseError) Error() string {
	return fmt.Sprintf("brand is used by %d entries", e.Count)
}

func (e *BrandInUseError) Unwrap() error {
	return ErrBrandInUse
}
