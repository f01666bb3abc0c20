// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-seltzer-tracker/internal/config"
	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/internal/store"
)

// Services groups every application service consumed by the handlers.
type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
	EntryService   EntryService
	StatsService   StatsService
	AppInfoService AppInfoService
}

// NewServices builds the services over storages. Auth, catalog and entry
// services are wrapped with input validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("creating app info service: %w", err)
	}

	authService := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, storages.SessionRepository, cfg.App, logger),
	)
	catalogService := NewCatalogValidationService().Wrap(
		NewCatalogService(storages.BrandRepository, logger),
	)
	entryService := NewEntryValidationService().Wrap(
		NewEntryService(storages.EntryRepository, logger),
	)

	return &Services{
		AuthService:    authService,
		CatalogService: catalogService,
		EntryService:   entryService,
		StatsService:   NewStatsService(storages.EntryRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
