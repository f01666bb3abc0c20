// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-seltzer-tracker/internal/utils"
	"github.com/MKhiriev/go-seltzer-tracker/models"
)

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	stats, err := h.services.StatsService.Stats(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, stats, http.StatusOK)
}

// search matches ?q= against the fields picked by ?filter= (brand, flavor
// or all). An empty query lists every entry of the caller.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	query := r.URL.Query()

	entries, err := h.services.EntryService.SearchEntries(r.Context(), userID,
		query.Get("q"), models.ParseSearchFilter(query.Get("filter")))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, entries, http.StatusOK)
}
