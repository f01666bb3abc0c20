// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-seltzer-tracker/internal/app"
	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// health reports whether the store answers a ping.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			logger.FromRequest(r).Err(err).Msg("store ping failed")
			writeJSON(w, r, models.HealthResponse{OK: false, Version: version}, http.StatusServiceUnavailable)
			return
		}
	}

	writeJSON(w, r, models.HealthResponse{OK: true, Version: version}, http.StatusOK)
}

// notFound answers unknown routes and unsupported methods alike, so callers
// cannot discover which paths exist.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.Response{Success: false, Message: app.MsgNotFound}, http.StatusNotFound)
}
