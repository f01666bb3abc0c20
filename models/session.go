// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is a server-side login session. Its ID travels inside the signed
// session token as the "jti" claim, so deleting the row revokes the token.
type Session struct {
	// SessionID is the opaque session identifier.
	SessionID string `json:"-"`

	// UserID is the owner of the session.
	UserID string `json:"-"`

	// Role is the owner's role, resolved when the session is looked up.
	Role Role `json:"-"`

	CreatedAt time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}
