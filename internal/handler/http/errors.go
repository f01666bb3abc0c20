// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself.
var (
	// ErrNoSessionToken is returned when a request carries neither a session
	// cookie nor an "Authorization: Bearer" header.
	ErrNoSessionToken = errors.New("no session token")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrForbidden is returned when the session lacks a required capability.
	ErrForbidden = errors.New("capability required")
)
