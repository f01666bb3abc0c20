// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/internal/utils"
	"github.com/MKhiriev/go-seltzer-tracker/models"
)

// homePath is where browsers go after logging in or out.
const homePath = "/"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", user.UserID).Msg("user registered")

	h.setSessionCookie(w, token)
	writeJSON(w, r, models.Response{Success: true, Redirect: homePath}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", user.UserID).Msg("user logged in")

	h.setSessionCookie(w, token)
	writeJSON(w, r, models.Response{Success: true, Redirect: homePath}, http.StatusOK)
}

// logout ends the current session. The cookie is cleared and the caller is
// redirected home even when the session row is already gone.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.GetSessionFromContext(r.Context())

	if err := h.services.AuthService.Logout(r.Context(), session.SessionID); err != nil {
		logger.FromRequest(r).Err(err).Msg("logout failed")
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, homePath, http.StatusFound)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	user, err := h.services.AuthService.Profile(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	cookie := &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
	}

	http.SetCookie(w, cookie)
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
