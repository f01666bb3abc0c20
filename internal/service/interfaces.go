// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-seltzer-tracker/models"
)

// AuthService registers users and manages their login sessions.
type AuthService interface {
	// Register creates the account and starts its first session.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	Logout(ctx context.Context, sessionID string) error
	// Authenticate resolves a signed session token to a live session.
	Authenticate(ctx context.Context, tokenString string) (models.Session, error)
	Profile(ctx context.Context, userID string) (models.User, error)
}

// CatalogService reads and edits the brand catalog.
type CatalogService interface {
	ListBrands(ctx context.Context) ([]models.Brand, error)
	CreateBrand(ctx context.Context, req models.BrandRequest) (models.Brand, error)
	AddFlavor(ctx context.Context, brandID string, req models.FlavorRequest) error
	RemoveFlavor(ctx context.Context, brandID string, req models.FlavorRequest) error
	DeleteBrand(ctx context.Context, brandID string) (models.Brand, error)
	// SeedDefaults inserts brands when the catalog is empty and reports how
	// many were inserted.
	SeedDefaults(ctx context.Context, brands []models.Brand) (int, error)
}

// EntryService manages the logged seltzers of one owner at a time.
type EntryService interface {
	ListEntries(ctx context.Context, userID string, limit int) ([]models.Entry, error)
	SearchEntries(ctx context.Context, userID, text string, filter models.SearchFilter) ([]models.Entry, error)
	GetEntry(ctx context.Context, userID, entryID string) (models.Entry, error)
	CreateEntry(ctx context.Context, userID string, req models.EntryRequest) (models.Entry, error)
	UpdateEntry(ctx context.Context, userID, entryID string, req models.EntryRequest) error
	DeleteEntry(ctx context.Context, userID, entryID string) error
}

// StatsService aggregates an owner's entries.
type StatsService interface {
	Stats(ctx context.Context, userID string) (models.Stats, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator produces unique identifiers for new rows.
type IDGenerator interface {
	Generate() string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// CatalogServiceWrapper defines middleware composition for CatalogService.
type CatalogServiceWrapper interface {
	Wrap(CatalogService) CatalogService
}

// EntryServiceWrapper defines middleware composition for EntryService.
type EntryServiceWrapper interface {
	Wrap(EntryService) EntryService
}
