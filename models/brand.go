// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Brand is a catalog entry: a seltzer brand together with its flavors.
type Brand struct {
	// BrandID is the unique slug identifier (e.g. "polar").
	BrandID string `json:"id" yaml:"id"`

	// Name is the unique display name (e.g. "Polar Seltzer").
	Name string `json:"name" yaml:"name"`

	// Flavors holds flavor names in display order. Names are unique
	// within a brand.
	Flavors []string `json:"flavors" yaml:"flavors"`

	// CreatedAt orders brands in listings. It is not exposed.
	CreatedAt time.Time `json:"-" yaml:"-"`
}

// TableName returns the name of the database table
// associated with the Brand model.
func (b Brand) TableName() string {
	return "brands"
}

// BrandRequest is the body of POST /api/brands.
type BrandRequest struct {
	Name           string   `json:"brand_name"`
	BrandID        string   `json:"brand_id,omitempty"`
	InitialFlavors []string `json:"initial_flavors,omitempty"`
}

// FlavorRequest is the body of POST and DELETE /api/brands/{brandID}/flavors.
type FlavorRequest struct {
	FlavorName string `json:"flavor_name"`
}
