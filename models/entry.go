// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Entry is a single logged seltzer.
//
// Brand and flavor are stored both as display strings and as ids so that an
// entry stays readable after the catalog is edited.
type Entry struct {
	EntryID  string `json:"_id"`
	UserID   string `json:"user_id"`
	Brand    string `json:"brand"`
	BrandID  string `json:"brand_id"`
	Flavor   string `json:"flavor"`
	FlavorID string `json:"flavor_id"`
	Rating   int    `json:"rating"`

	// Date and Time are caller-supplied strings and are not validated as
	// calendar values.
	Date  string `json:"date"`
	Time  string `json:"time"`
	Notes string `json:"notes"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Entry model.
func (e Entry) TableName() string {
	return "entries"
}

// EntryRequest is the body of POST /api/seltzers and PUT /api/seltzers/{id}.
type EntryRequest struct {
	Brand    string `json:"brand"`
	BrandID  string `json:"brand_id"`
	Flavor   string `json:"flavor"`
	FlavorID string `json:"flavor_id"`
	Rating   Rating `json:"rating"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Notes    string `json:"notes"`
}

// ToEntry copies the mutable fields of the request into an Entry owned by userID.
func (r EntryRequest) ToEntry(userID string) Entry {
	return Entry{
		UserID:   userID,
		Brand:    r.Brand,
		BrandID:  r.BrandID,
		Flavor:   r.Flavor,
		FlavorID: r.FlavorID,
		Rating:   int(r.Rating),
		Date:     r.Date,
		Time:     r.Time,
		Notes:    r.Notes,
	}
}

// Rating is an integer rating that also accepts JSON strings and
// fractional numbers, truncating toward zero. null and "" decode to 0.
// Values outside the 32-bit range of the rating column are rejected.
type Rating int

// ErrRatingOutOfRange is returned when a rating does not fit the column.
var ErrRatingOutOfRange = errors.New("rating is out of range")

func (r *Rating) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = 0
		return nil
	}

	var raw string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*r = 0
			return nil
		}
	} else {
		raw = string(b)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if (err != nil && !errors.Is(err, strconv.ErrRange)) || math.IsNaN(f) {
		return fmt.Errorf("rating %q is not a number", raw)
	}

	f = math.Trunc(f)
	if f < math.MinInt32 || f > math.MaxInt32 {
		return fmt.Errorf("%w: %s", ErrRatingOutOfRange, raw)
	}
	*r = Rating(f)
	return nil
}

// EntryQuery selects entries of one owner.
type EntryQuery struct {
	UserID string

	// Limit caps the number of returned entries when positive.
	Limit int

	// Text is matched as a case-insensitive substring against the fields
	// selected by Filter. Empty Text disables filtering.
	Text   string
	Filter SearchFilter
}

// SearchFilter selects which entry fields a search query is matched against.
type SearchFilter string

const (
	SearchFilterAll    SearchFilter = "all"
	SearchFilterBrand  SearchFilter = "brand"
	SearchFilterFlavor SearchFilter = "flavor"
)

// ParseSearchFilter maps a query-string value to a SearchFilter.
// Anything other than "brand" or "flavor" means [SearchFilterAll].
func ParseSearchFilter(s string) SearchFilter {
	switch SearchFilter(strings.ToLower(strings.TrimSpace(s))) {
	case SearchFilterBrand:
		return SearchFilterBrand
	case SearchFilterFlavor:
		return SearchFilterFlavor
	default:
		return SearchFilterAll
	}
}
