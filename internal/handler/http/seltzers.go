// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-seltzer-tracker/internal/utils"
	"github.com/MKhiriev/go-seltzer-tracker/models"
	"github.com/go-chi/chi/v5"
)

// listSeltzers returns the caller's entries, newest first. A missing,
// malformed or non-positive ?limit= means no cap.
func (h *Handler) listSeltzers(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 0
	}

	entries, err := h.services.EntryService.ListEntries(r.Context(), userID, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, entries, http.StatusOK)
}

func (h *Handler) getSeltzer(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	entry, err := h.services.EntryService.GetEntry(r.Context(), userID, chi.URLParam(r, "seltzerID"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, entry, http.StatusOK)
}

func (h *Handler) createSeltzer(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req models.EntryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	entry, err := h.services.EntryService.CreateEntry(r.Context(), userID, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, entry, http.StatusOK)
}

func (h *Handler) updateSeltzer(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req models.EntryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.services.EntryService.UpdateEntry(r.Context(), userID, chi.URLParam(r, "seltzerID"), req); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, models.Response{Success: true}, http.StatusOK)
}

func (h *Handler) deleteSeltzer(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	if err := h.services.EntryService.DeleteEntry(r.Context(), userID, chi.URLParam(r, "seltzerID")); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, models.Response{Success: true}, http.StatusOK)
}
