// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-seltzer-tracker/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if len(h.cfg.CORSAllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
			ExposedHeaders:   []string{traceIDHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/healthz", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/brands", h.listBrands)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/logout", h.logout)
		r.Get("/api/me", h.me)

		r.Route("/api/seltzers", func(r chi.Router) {
			r.Get("/", h.listSeltzers)
			r.Post("/", h.createSeltzer)
			r.Get("/{seltzerID}", h.getSeltzer)
			r.Put("/{seltzerID}", h.updateSeltzer)
			r.Delete("/{seltzerID}", h.deleteSeltzer)
		})
		r.Get("/api/stats", h.stats)
		r.Get("/api/search", h.search)

		// catalog administration
		r.Group(func(r chi.Router) {
			r.Use(requireCapability(models.CapabilityManageCatalog))

			r.Post("/api/brands", h.createBrand)
			r.Delete("/api/brands/{brandID}", h.deleteBrand)
			r.Post("/api/brands/{brandID}/flavors", h.addFlavor)
			r.Delete("/api/brands/{brandID}/flavors", h.removeFlavor)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}
