// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/internal/store"
	"github.com/MKhiriev/go-seltzer-tracker/models"
)

// catalogService is the concrete implementation of CatalogService.
// Authorization is enforced by the transport layer; every method here
// assumes an authorized caller.
type catalogService struct {
	brandRepository store.BrandRepository

	now func() time.Time

	logger *logger.Logger
}

// NewCatalogService constructs a CatalogService backed by brandRepository.
func NewCatalogService(brandRepository store.BrandRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		brandRepository: brandRepository,
		now:             time.Now,
		logger:          logger,
	}
}

func (c *catalogService) ListBrands(ctx context.Context) ([]models.Brand, error) {
	brands, err := c.brandRepository.ListBrands(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing brands failed")
		return nil, fmt.Errorf("listing brands failed: %w", err)
	}

	return brands, nil
}

// CreateBrand adds a brand to the catalog. Name and id are trimmed; a
// missing id is derived from the name with BrandIDFromName. Repeated
// initial flavors are collapsed, keeping the first occurrence.
func (c *catalogService) CreateBrand(ctx context.Context, req models.BrandRequest) (models.Brand, error) {
	brand := models.Brand{
		BrandID:   strings.TrimSpace(req.BrandID),
		Name:      strings.TrimSpace(req.Name),
		Flavors:   uniqueFlavors(req.InitialFlavors),
		CreatedAt: c.now().UTC().Truncate(time.Microsecond),
	}
	if brand.BrandID == "" {
		brand.BrandID = BrandIDFromName(brand.Name)
	}

	created, err := c.brandRepository.CreateBrand(ctx, brand)
	if err != nil {
		return models.Brand{}, c.mapError(ctx, err, "brand creation failed")
	}

	logger.FromContext(ctx).Info().Str("brand_id", created.BrandID).Msg("brand created")
	return created, nil
}

func (c *catalogService) AddFlavor(ctx context.Context, brandID string, req models.FlavorRequest) error {
	if err := c.brandRepository.AddFlavor(ctx, brandID, req.FlavorName); err != nil {
		return c.mapError(ctx, err, "adding flavor failed")
	}

	return nil
}

func (c *catalogService) RemoveFlavor(ctx context.Context, brandID string, req models.FlavorRequest) error {
	if err := c.brandRepository.RemoveFlavor(ctx, brandID, req.FlavorName); err != nil {
		return c.mapError(ctx, err, "removing flavor failed")
	}

	return nil
}

// DeleteBrand removes a brand that no entry references and returns it.
func (c *catalogService) DeleteBrand(ctx context.Context, brandID string) (models.Brand, error) {
	deleted, err := c.brandRepository.DeleteBrand(ctx, brandID)
	if err != nil {
		return models.Brand{}, c.mapError(ctx, err, "brand deletion failed")
	}

	logger.FromContext(ctx).Info().Str("brand_id", brandID).Msg("brand deleted")
	return deleted, nil
}

// SeedDefaults inserts brands in order when the catalog is empty. A
// non-empty catalog is left untouched.
func (c *catalogService) SeedDefaults(ctx context.Context, brands []models.Brand) (int, error) {
	log := logger.FromContext(ctx)

	count, err := c.brandRepository.CountBrands(ctx)
	if err != nil {
		log.Err(err).Msg("counting brands failed")
		return 0, fmt.Errorf("counting brands failed: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	base := c.now().UTC().Truncate(time.Microsecond)
	for i, brand := range brands {
		brand.Flavors = uniqueFlavors(brand.Flavors)
		if brand.BrandID == "" {
			brand.BrandID = BrandIDFromName(brand.Name)
		}
		// distinct timestamps keep the seed order in listings
		brand.CreatedAt = base.Add(time.Duration(i) * time.Microsecond)

		if _, err = c.brandRepository.CreateBrand(ctx, brand); err != nil {
			return i, c.mapError(ctx, err, "seeding brand failed")
		}
	}

	log.Info().Int("brands", len(brands)).Msg("default catalog seeded")
	return len(brands), nil
}

// mapError translates repository errors into service errors.
func (c *catalogService) mapError(ctx context.Context, err error, msg string) error {
	var inUse *store.BrandInUseError
	switch {
	case errors.As(err, &inUse):
		return &BrandInUseError{Count: inUse.Count}
	case errors.Is(err, store.ErrBrandNotFound):
		return ErrBrandNotFound
	case errors.Is(err, store.ErrBrandAlreadyExists):
		return ErrBrandAlreadyExists
	case errors.Is(err, store.ErrFlavorAlreadyExists):
		return ErrFlavorAlreadyExists
	}

	logger.FromContext(ctx).Err(err).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}

var brandIDReplacer = strings.NewReplacer(" ", "-", "&", "and")

// BrandIDFromName derives a brand id: lower case, spaces become "-" and
// "&" becomes "and".
func BrandIDFromName(name string) string {
	return brandIDReplacer.Replace(strings.ToLower(name))
}

// uniqueFlavors drops repeated names, keeping the first occurrence. The
// result is never nil.
func uniqueFlavors(flavors []string) []string {
	seen := make(map[string]struct{}, len(flavors))
	unique := make([]string, 0, len(flavors))
	for _, flavor := range flavors {
		if _, ok := seen[flavor]; ok {
			continue
		}
		seen[flavor] = struct{}{}
		unique = append(unique, flavor)
	}
	return unique
}
