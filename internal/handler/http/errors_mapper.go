// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-seltzer-tracker/internal/app"
	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/internal/service"
	"github.com/MKhiriev/go-seltzer-tracker/internal/utils"
	"github.com/MKhiriev/go-seltzer-tracker/models"
)

// errorStatus binds an error to the HTTP status and the message shown to
// callers. The table is ordered: the first match wins.
type errorStatus struct {
	target  error
	status  int
	message string
}

var errorStatuses = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrNoSessionToken, http.StatusUnauthorized, app.MsgAuthRequired},
	{ErrForbidden, http.StatusForbidden, app.MsgAdminRequired},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgAuthRequired},
	{service.ErrUserAlreadyExists, http.StatusConflict, app.MsgUserAlreadyExists},

	{service.ErrEntryNotFound, http.StatusNotFound, app.MsgSeltzerNotFound},
	{service.ErrBrandNotFound, http.StatusNotFound, app.MsgBrandNotFound},
	{service.ErrFlavorAlreadyExists, http.StatusConflict, app.MsgFlavorAlreadyExists},
	{service.ErrBrandAlreadyExists, http.StatusConflict, app.MsgBrandAlreadyExists},

	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
}

// statusFromError returns the status and the caller-facing message for err.
// Unknown errors map to 500 with a generic message.
func statusFromError(err error) (int, string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}

	var inUseErr *service.BrandInUseError
	if errors.As(err, &inUseErr) {
		return http.StatusConflict, fmt.Sprintf(app.MsgBrandInUseFormat, inUseErr.Count)
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}

	return http.StatusInternalServerError, app.MsgInternalError
}

// respondError writes {"success": false, "message": ...} for err. Server
// errors are logged with their details; client errors at debug level.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeJSON(w, r, models.Response{Success: false, Message: message}, status)
}

// writeJSON writes data with status and logs a failed write.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}
