// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoTopBrand is reported as the top brand of a user without entries.
const NoTopBrand = "None"

// Stats is the response of GET /api/stats.
type Stats struct {
	TotalSeltzers     int          `json:"total_seltzers"`
	AvgRating         float64      `json:"avg_rating"`
	ThisWeek          int          `json:"this_week"`
	TopBrand          string       `json:"top_brand"`
	BrandDistribution []BrandCount `json:"brand_distribution"`
}

// BrandCount is the number of entries a user logged for one brand name.
type BrandCount struct {
	Brand string `json:"brand"`
	Count int    `json:"count"`
}

// EntryAggregate holds the raw per-owner aggregates read from the store.
type EntryAggregate struct {
	Total        int
	RatingSum    float64
	CreatedSince int
}
