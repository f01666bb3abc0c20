// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing messages of the seltzer tracker.
//
// The Msg* constants are written into JSON response bodies by the HTTP
// handlers and shown by the command-line client. Keeping them in one place
// keeps the wording identical on both sides of the API.
package app

const (
	// MsgInternalError hides the details of unexpected server failures.
	MsgInternalError = "Internal server error"

	MsgInvalidJSON         = "Invalid JSON was passed"
	MsgInvalidDataProvided = "Invalid data provided"
	MsgNotFound            = "Not found"

	// MsgAuthRequired is returned for API requests without a live session.
	MsgAuthRequired        = "Authentication required"
	MsgAdminRequired       = "Admin privileges required"
	MsgInvalidCredentials  = "Invalid username or password"
	MsgUserAlreadyExists   = "Username or email already exists"
	MsgSeltzerNotFound     = "Seltzer not found"
	MsgBrandNotFound       = "Brand not found"
	MsgBrandAlreadyExists  = "Brand with this name or ID already exists"
	MsgFlavorAlreadyExists = "Flavor already exists"

	// MsgBrandInUseFormat takes the number of referencing entries.
	MsgBrandInUseFormat = "Cannot delete brand. It is being used in %d seltzer entries."
	// MsgBrandDeletedFormat takes the brand name.
	MsgBrandDeletedFormat = "Brand \"%s\" deleted successfully"
)
