// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-seltzer-tracker/internal/app"
	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/internal/service"
	"github.com/MKhiriev/go-seltzer-tracker/internal/utils"
	"github.com/MKhiriev/go-seltzer-tracker/models"
)

// loginPath is where unauthenticated browsers are sent.
const loginPath = "/login"

// auth is an HTTP middleware that enforces session authentication.
//
// The session token is taken from the session cookie, or from an
// "Authorization: Bearer" header when no cookie is sent. On success the
// resolved [models.Session] is stored in the request context under
// [utils.SessionCtxKey].
//
// Unauthenticated requests to /api/ paths get 401 with a JSON body; any
// other path is redirected to the login page.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := h.sessionToken(r)
		if err != nil {
			log.Debug().Err(err).Msg("no session token")
			h.unauthenticated(w, r)
			return
		}

		session, err := h.services.AuthService.Authenticate(r.Context(), tokenString)
		if err != nil {
			if !errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
				respondError(w, r, err)
				return
			}
			log.Debug().Err(err).Msg("session rejected")
			h.unauthenticated(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SessionCtxKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionToken returns the raw session token of r.
func (h *Handler) sessionToken(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(h.cfg.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSessionToken
	}

	return utils.ParseBearerToken(authHeader)
}

func (h *Handler) unauthenticated(w http.ResponseWriter, r *http.Request) {
	if isAPIRequest(r) {
		writeJSON(w, r, models.Response{Success: false, Message: app.MsgAuthRequired}, http.StatusUnauthorized)
		return
	}

	http.Redirect(w, r, loginPath, http.StatusFound)
}

func isAPIRequest(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/")
}

// requireCapability rejects sessions whose role lacks capability with 403.
// It must run after auth.
func requireCapability(capability models.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := utils.GetSessionFromContext(r.Context())
			if !ok || !session.Role.Can(capability) {
				logger.FromRequest(r).Debug().
					Str("role", string(session.Role)).
					Str("capability", string(capability)).
					Msg("capability denied")
				respondError(w, r, ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
