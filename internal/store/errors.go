// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a user with the same username or
	// e-mail already exists.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a user lookup matches no rows.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned when a session does not exist or has
	// expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrBrandNotFound is returned when a brand id matches no catalog row.
	ErrBrandNotFound = errors.New("brand not found")

	// ErrBrandAlreadyExists is returned when a new brand collides with an
	// existing brand id or name.
	ErrBrandAlreadyExists = errors.New("brand already exists")

	// ErrFlavorAlreadyExists is returned when a flavor name is already listed
	// for the brand.
	ErrFlavorAlreadyExists = errors.New("flavor already exists")

	// ErrBrandInUse is matched by [*BrandInUseError].
	ErrBrandInUse = errors.New("brand is in use")

	// ErrEntryNotFound is returned when an entry does not exist or belongs to
	// another user.
	ErrEntryNotFound = errors.New("entry not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// BrandInUseError is returned by DeleteBrand when entries still reference
// the brand.
type BrandInUseError struct {
	BrandID string
	Count   int
}

func (e *BrandInUseError) Error() string {
	return fmt.Sprintf("brand %q is referenced by %d entries", e.BrandID, e.Count)
}

// Unwrap makes errors.Is(err, ErrBrandInUse) hold.
func (e *BrandInUseError) Unwrap() error {
	return ErrBrandInUse
}
