// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-seltzer-tracker/internal/config"
	"github.com/MKhiriev/go-seltzer-tracker/internal/handler/http"
	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. pinger backs
// the health endpoint and may be nil.
func NewHandlers(services *service.Services, pinger http.Pinger, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, pinger, cfg, logger),
	}, nil
}
