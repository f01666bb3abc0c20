// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/internal/store"
	"github.com/MKhiriev/go-seltzer-tracker/internal/utils"
	"github.com/MKhiriev/go-seltzer-tracker/models"
)

// entryService is the concrete implementation of EntryService.
// Ownership is enforced by the repository: every call is scoped to userID
// and another owner's entry is reported as ErrEntryNotFound.
type entryService struct {
	entryRepository store.EntryRepository

	ids IDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewEntryService constructs an EntryService backed by entryRepository.
func NewEntryService(entryRepository store.EntryRepository, logger *logger.Logger) EntryService {
	return &entryService{
		entryRepository: entryRepository,
		ids:             utils.NewUUIDGenerator(),
		now:             time.Now,
		logger:          logger,
	}
}

// ListEntries returns the owner's entries newest first. A non-positive
// limit means no cap.
func (e *entryService) ListEntries(ctx context.Context, userID string, limit int) ([]models.Entry, error) {
	if limit < 0 {
		limit = 0
	}

	return e.list(ctx, models.EntryQuery{UserID: userID, Limit: limit})
}

// SearchEntries matches text case-insensitively as a literal substring.
// Empty text returns the same list as ListEntries without a limit.
func (e *entryService) SearchEntries(ctx context.Context, userID, text string, filter models.SearchFilter) ([]models.Entry, error) {
	return e.list(ctx, models.EntryQuery{UserID: userID, Text: text, Filter: filter})
}

func (e *entryService) list(ctx context.Context, query models.EntryQuery) ([]models.Entry, error) {
	entries, err := e.entryRepository.ListEntries(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", query.UserID).Msg("listing entries failed")
		return nil, fmt.Errorf("listing entries failed: %w", err)
	}

	return entries, nil
}

func (e *entryService) GetEntry(ctx context.Context, userID, entryID string) (models.Entry, error) {
	entry, err := e.entryRepository.GetEntry(ctx, userID, entryID)
	if err != nil {
		return models.Entry{}, e.mapError(ctx, err, "getting entry failed")
	}

	return entry, nil
}

// CreateEntry stores a new entry owned by userID. The id and creation time
// are assigned here.
func (e *entryService) CreateEntry(ctx context.Context, userID string, req models.EntryRequest) (models.Entry, error) {
	entry := req.ToEntry(userID)
	entry.EntryID = e.ids.Generate()
	entry.CreatedAt = e.timestamp()

	created, err := e.entryRepository.CreateEntry(ctx, entry)
	if err != nil {
		return models.Entry{}, e.mapError(ctx, err, "entry creation failed")
	}

	return created, nil
}

// UpdateEntry replaces every mutable field of an owned entry and stamps
// updated_at.
func (e *entryService) UpdateEntry(ctx context.Context, userID, entryID string, req models.EntryRequest) error {
	entry := req.ToEntry(userID)
	entry.EntryID = entryID
	updatedAt := e.timestamp()
	entry.UpdatedAt = &updatedAt

	if err := e.entryRepository.UpdateEntry(ctx, entry); err != nil {
		return e.mapError(ctx, err, "entry update failed")
	}

	return nil
}

func (e *entryService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	if err := e.entryRepository.DeleteEntry(ctx, userID, entryID); err != nil {
		return e.mapError(ctx, err, "entry deletion failed")
	}

	return nil
}

func (e *entryService) mapError(ctx context.Context, err error, msg string) error {
	if errors.Is(err, store.ErrEntryNotFound) {
		return ErrEntryNotFound
	}

	logger.FromContext(ctx).Err(err).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}

func (e *entryService) timestamp() time.Time {
	return e.now().UTC().Truncate(time.Microsecond)
}
