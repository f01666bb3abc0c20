// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-seltzer-tracker/models"
)

// UserRepository persists accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// UserExists reports whether any user has the given username or e-mail.
	UserExists(ctx context.Context, username, email string) (bool, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// SessionRepository persists login sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	// FindSession returns a session that has not expired at now, with the
	// owner's current role filled in.
	FindSession(ctx context.Context, sessionID string, now time.Time) (models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context, userID string, now time.Time) (int64, error)
}

// BrandRepository persists the brand catalog.
type BrandRepository interface {
	ListBrands(ctx context.Context) ([]models.Brand, error)
	CountBrands(ctx context.Context) (int, error)
	CreateBrand(ctx context.Context, brand models.Brand) (models.Brand, error)
	AddFlavor(ctx context.Context, brandID, flavor string) error
	RemoveFlavor(ctx context.Context, brandID, flavor string) error
	DeleteBrand(ctx context.Context, brandID string) (models.Brand, error)
}

// EntryRepository persists logged seltzers. Every method is scoped to one
// owner.
type EntryRepository interface {
	ListEntries(ctx context.Context, query models.EntryQuery) ([]models.Entry, error)
	GetEntry(ctx context.Context, userID, entryID string) (models.Entry, error)
	CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	UpdateEntry(ctx context.Context, entry models.Entry) error
	DeleteEntry(ctx context.Context, userID, entryID string) error
	EntryStats(ctx context.Context, userID string, since time.Time) (models.EntryAggregate, error)
	BrandDistribution(ctx context.Context, userID string) ([]models.BrandCount, error)
}

// ErrorClassificator maps driver-specific errors to driver-independent
// categories.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
