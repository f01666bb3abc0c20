// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the generic envelope used by mutating endpoints and by every
// business-logic failure: {"success": false, "message": "..."}.
type Response struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// BrandResponse is returned by POST /api/brands.
type BrandResponse struct {
	Success bool  `json:"success"`
	Brand   Brand `json:"brand"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Version string `json:"version,omitempty"`
}
