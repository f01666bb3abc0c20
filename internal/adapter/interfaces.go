// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the seltzer tracker JSON API.
//
// [ServerAdapter] hides the transport from callers. The HTTP implementation
// ([NewHTTPServerAdapter]) keeps the session token issued at register or
// login time and sends it as a bearer token on later requests.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go, so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401). The server's message is kept in the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-seltzer-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the seltzer tracker server.
type ServerAdapter interface {
	// SetToken stores the session token attached to authenticated requests.
	SetToken(token string)
	Token() string

	// Register creates an account and stores the issued session token.
	Register(ctx context.Context, req models.RegisterRequest) error
	// Login starts a session and stores the issued session token.
	Login(ctx context.Context, req models.LoginRequest) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) (models.User, error)

	ListBrands(ctx context.Context) ([]models.Brand, error)
	CreateBrand(ctx context.Context, req models.BrandRequest) (models.Brand, error)
	// DeleteBrand returns the confirmation message of the server.
	DeleteBrand(ctx context.Context, brandID string) (string, error)
	AddFlavor(ctx context.Context, brandID, flavor string) error
	RemoveFlavor(ctx context.Context, brandID, flavor string) error

	ListEntries(ctx context.Context, limit int) ([]models.Entry, error)
	GetEntry(ctx context.Context, entryID string) (models.Entry, error)
	CreateEntry(ctx context.Context, req models.EntryRequest) (models.Entry, error)
	UpdateEntry(ctx context.Context, entryID string, req models.EntryRequest) error
	DeleteEntry(ctx context.Context, entryID string) error
	Search(ctx context.Context, query string, filter models.SearchFilter) ([]models.Entry, error)
	Stats(ctx context.Context) (models.Stats, error)

	Version(ctx context.Context) (string, error)
	Health(ctx context.Context) (models.HealthResponse, error)
}
