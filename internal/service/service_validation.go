// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-seltzer-tracker/internal/validators"
	"github.com/MKhiriev/go-seltzer-tracker/models"
)

// AuthValidationService checks registration input before it reaches the
// wrapped AuthService. Login input is not validated: blank credentials
// simply fail to authenticate.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewSeltzerValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Token{}, &ValidationError{Err: err}
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Logout(ctx context.Context, sessionID string) error {
	return v.inner.Logout(ctx, sessionID)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, tokenString string) (models.Session, error) {
	return v.inner.Authenticate(ctx, tokenString)
}

func (v *AuthValidationService) Profile(ctx context.Context, userID string) (models.User, error) {
	return v.inner.Profile(ctx, userID)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

// CatalogValidationService checks brand and flavor requests before they
// reach the wrapped CatalogService.
type CatalogValidationService struct {
	inner     CatalogService
	validator validators.Validator
}

func NewCatalogValidationService() CatalogServiceWrapper {
	return &CatalogValidationService{
		validator: validators.NewSeltzerValidator(),
	}
}

func (v *CatalogValidationService) ListBrands(ctx context.Context) ([]models.Brand, error) {
	return v.inner.ListBrands(ctx)
}

func (v *CatalogValidationService) CreateBrand(ctx context.Context, req models.BrandRequest) (models.Brand, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Brand{}, &ValidationError{Err: err}
	}

	return v.inner.CreateBrand(ctx, req)
}

func (v *CatalogValidationService) AddFlavor(ctx context.Context, brandID string, req models.FlavorRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return &ValidationError{Err: err}
	}

	return v.inner.AddFlavor(ctx, brandID, req)
}

func (v *CatalogValidationService) RemoveFlavor(ctx context.Context, brandID string, req models.FlavorRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return &ValidationError{Err: err}
	}

	return v.inner.RemoveFlavor(ctx, brandID, req)
}

func (v *CatalogValidationService) DeleteBrand(ctx context.Context, brandID string) (models.Brand, error) {
	return v.inner.DeleteBrand(ctx, brandID)
}

// SeedDefaults validates every seed brand up front so a broken seed file
// inserts nothing.
func (v *CatalogValidationService) SeedDefaults(ctx context.Context, brands []models.Brand) (int, error) {
	for _, brand := range brands {
		req := models.BrandRequest{Name: brand.Name, BrandID: brand.BrandID, InitialFlavors: brand.Flavors}
		if err := v.validator.Validate(ctx, req); err != nil {
			return 0, &ValidationError{Err: err}
		}
	}

	return v.inner.SeedDefaults(ctx, brands)
}

func (v *CatalogValidationService) Wrap(wrapped CatalogService) CatalogService {
	v.inner = wrapped
	return v
}

// EntryValidationService checks owners and entry fields before they reach
// the wrapped EntryService.
type EntryValidationService struct {
	inner     EntryService
	validator validators.Validator
}

func NewEntryValidationService() EntryServiceWrapper {
	return &EntryValidationService{
		validator: validators.NewSeltzerValidator(),
	}
}

func (v *EntryValidationService) ListEntries(ctx context.Context, userID string, limit int) ([]models.Entry, error) {
	if err := v.validator.Validate(ctx, models.EntryQuery{UserID: userID}); err != nil {
		return nil, &ValidationError{Err: err}
	}

	return v.inner.ListEntries(ctx, userID, limit)
}

func (v *EntryValidationService) SearchEntries(ctx context.Context, userID, text string, filter models.SearchFilter) ([]models.Entry, error) {
	if err := v.validator.Validate(ctx, models.EntryQuery{UserID: userID, Text: text, Filter: filter}); err != nil {
		return nil, &ValidationError{Err: err}
	}

	return v.inner.SearchEntries(ctx, userID, text, filter)
}

func (v *EntryValidationService) GetEntry(ctx context.Context, userID, entryID string) (models.Entry, error) {
	return v.inner.GetEntry(ctx, userID, entryID)
}

func (v *EntryValidationService) CreateEntry(ctx context.Context, userID string, req models.EntryRequest) (models.Entry, error) {
	if err := v.validator.Validate(ctx, req.ToEntry(userID)); err != nil {
		return models.Entry{}, &ValidationError{Err: err}
	}

	return v.inner.CreateEntry(ctx, userID, req)
}

func (v *EntryValidationService) UpdateEntry(ctx context.Context, userID, entryID string, req models.EntryRequest) error {
	if err := v.validator.Validate(ctx, req.ToEntry(userID)); err != nil {
		return &ValidationError{Err: err}
	}

	return v.inner.UpdateEntry(ctx, userID, entryID, req)
}

func (v *EntryValidationService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	return v.inner.DeleteEntry(ctx, userID, entryID)
}

func (v *EntryValidationService) Wrap(wrapped EntryService) EntryService {
	v.inner = wrapped
	return v
}
