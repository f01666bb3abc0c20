// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-seltzer-tracker/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUserID targets the owner identifier of an entry or query.
	FieldUserID = "user_id"

	// FieldUsername targets the login name of a registration request.
	FieldUsername = "username"

	// FieldEmail targets the e-mail address of a registration request.
	FieldEmail = "email"

	// FieldPassword targets the plain-text password of a registration request.
	FieldPassword = "password"

	// FieldBrand targets the brand display name of an entry.
	FieldBrand = "brand"

	// FieldBrandID targets the brand identifier of an entry.
	FieldBrandID = "brand_id"

	// FieldFlavor targets the flavor name of an entry.
	FieldFlavor = "flavor"

	// FieldBrandName targets the name of a new catalog brand.
	FieldBrandName = "brand_name"

	// FieldInitialFlavors targets the optional flavor list of a new brand.
	FieldInitialFlavors = "initial_flavors"

	// FieldFlavorName targets the flavor of a flavor add/remove request.
	FieldFlavorName = "flavor_name"
)

// SeltzerValidator implements the Validator interface for the request and
// domain models of the tracker: registrations, entries, entry queries,
// brand creation and flavor requests.
//
// Rating, date and time are not checked here. The rating range is bounded to
// 32 bits when the request body is decoded; date/time strings are free-form.
type SeltzerValidator struct {
}

// NewSeltzerValidator constructs a new SeltzerValidator and returns it as
// the Validator interface.
func NewSeltzerValidator() Validator {
	return &SeltzerValidator{}
}

// Validate dispatches validation to the type-specific method based on the
// dynamic type of obj. Both value and pointer forms are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *SeltzerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.Entry:
		return v.validateEntry(value, fields...)
	case *models.Entry:
		return v.validateEntry(*value, fields...)

	case models.EntryQuery:
		return v.validateEntryQuery(value, fields...)
	case *models.EntryQuery:
		return v.validateEntryQuery(*value, fields...)

	case models.BrandRequest:
		return v.validateBrandRequest(value, fields...)
	case *models.BrandRequest:
		return v.validateBrandRequest(*value, fields...)

	case models.FlavorRequest:
		return v.validateFlavorRequest(value, fields...)
	case *models.FlavorRequest:
		return v.validateFlavorRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// validateRegisterRequest requires username, e-mail and password.
func (v *SeltzerValidator) validateRegisterRequest(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if blank(req.Username) {
				return ErrUsernameRequired
			}
		case FieldEmail:
			if blank(req.Email) {
				return ErrEmailRequired
			}
		case FieldPassword:
			// passwords are not trimmed
			if req.Password == "" {
				return ErrPasswordRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEntry checks the owner and the brand/flavor triple of an entry.
//
// Default validated fields: UserID, Brand, BrandID, Flavor.
func (v *SeltzerValidator) validateEntry(entry models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldBrand, FieldBrandID, FieldFlavor}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if blank(entry.UserID) {
				return ErrInvalidUserID
			}
		case FieldBrand:
			if blank(entry.Brand) {
				return ErrBrandRequired
			}
		case FieldBrandID:
			if blank(entry.BrandID) {
				return ErrBrandIDRequired
			}
		case FieldFlavor:
			if blank(entry.Flavor) {
				return ErrFlavorRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEntryQuery requires the owner of the queried entries.
func (v *SeltzerValidator) validateEntryQuery(query models.EntryQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if blank(query.UserID) {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateBrandRequest requires a brand name. Initial flavors are optional
// but must not contain blank names.
func (v *SeltzerValidator) validateBrandRequest(req models.BrandRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBrandName, FieldInitialFlavors}
	}

	for _, f := range fields {
		switch f {
		case FieldBrandName:
			if blank(req.Name) {
				return ErrBrandNameRequired
			}
		case FieldInitialFlavors:
			for _, flavor := range req.InitialFlavors {
				if blank(flavor) {
					return ErrEmptyInitialFlavor
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateFlavorRequest requires a flavor name.
func (v *SeltzerValidator) validateFlavorRequest(req models.FlavorRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFlavorName}
	}

	for _, f := range fields {
		switch f {
		case FieldFlavorName:
			if blank(req.FlavorName) {
				return ErrFlavorNameRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
