// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-seltzer-tracker/internal/app"
	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.services.CatalogService.ListBrands(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, brands, http.StatusOK)
}

func (h *Handler) createBrand(w http.ResponseWriter, r *http.Request) {
	var req models.BrandRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	brand, err := h.services.CatalogService.CreateBrand(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, models.BrandResponse{Success: true, Brand: brand}, http.StatusOK)
}

func (h *Handler) deleteBrand(w http.ResponseWriter, r *http.Request) {
	brandID := chi.URLParam(r, "brandID")

	deleted, err := h.services.CatalogService.DeleteBrand(r.Context(), brandID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("brand_id", brandID).Msg("brand deleted")
	writeJSON(w, r, models.Response{
		Success: true,
		Message: fmt.Sprintf(app.MsgBrandDeletedFormat, deleted.Name),
	}, http.StatusOK)
}

func (h *Handler) addFlavor(w http.ResponseWriter, r *http.Request) {
	var req models.FlavorRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.services.CatalogService.AddFlavor(r.Context(), chi.URLParam(r, "brandID"), req); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, models.Response{Success: true}, http.StatusOK)
}

func (h *Handler) removeFlavor(w http.ResponseWriter, r *http.Request) {
	var req models.FlavorRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.services.CatalogService.RemoveFlavor(r.Context(), chi.URLParam(r, "brandID"), req); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, models.Response{Success: true}, http.StatusOK)
}
