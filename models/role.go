// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the authorization role attached to every user.
type Role string

const (
	// RoleUser is the default role: the user may manage only their own entries.
	RoleUser Role = "user"

	// RoleAdmin additionally may mutate the brand catalog.
	RoleAdmin Role = "admin"
)

// Capability names a privileged action checked at the transport boundary.
type Capability string

const (
	// CapabilityManageCatalog allows creating and deleting brands and
	// adding or removing flavors.
	CapabilityManageCatalog Capability = "manage_catalog"
)

var roleCapabilities = map[Role][]Capability{
	RoleAdmin: {CapabilityManageCatalog},
}

// Can reports whether the role grants the given capability.
func (r Role) Can(c Capability) bool {
	for _, granted := range roleCapabilities[r] {
		if granted == c {
			return true
		}
	}
	return false
}
