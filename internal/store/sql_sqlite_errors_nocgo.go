// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !cgo

package store

import _ "github.com/mattn/go-sqlite3"

// sqliteDriverName falls back to the stub driver registered by go-sqlite3.
const sqliteDriverName = "sqlite3"

// SQLiteErrorClassifier is inert without cgo: the sqlite3 driver is a stub
// that cannot open databases in that build.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify always returns [NonRetryable].
func (c *SQLiteErrorClassifier) Classify(error) ErrorClassification {
	return NonRetryable
}

// IsUniqueViolation always returns false.
func (c *SQLiteErrorClassifier) IsUniqueViolation(error) bool {
	return false
}
