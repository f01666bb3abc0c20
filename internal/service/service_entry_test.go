// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/internal/mock"
	"github.com/MKhiriev/go-seltzer-tracker/internal/store"
	"github.com/MKhiriev/go-seltzer-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestEntryService(t *testing.T, ctrl *gomock.Controller) (*entryService, *mock.MockEntryRepository) {
	t.Helper()
	entries := mock.NewMockEntryRepository(ctrl)

	svc := NewEntryService(entries, logger.Nop()).(*entryService)
	svc.ids = &sequenceIDs{prefix: "entry"}
	svc.now = func() time.Time { return fixedNow }

	return svc, entries
}

func polarRequest() models.EntryRequest {
	return models.EntryRequest{
		Brand:   "Polar Seltzer",
		BrandID: "polar",
		Flavor:  "Lime",
		Rating:  4,
		Date:    "2026-03-14",
		Time:    "12:00",
	}
}

func TestEntryService_CreateEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries := newTestEntryService(t, ctrl)
	ctx := context.Background()

	entries.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.Entry) (models.Entry, error) {
			assert.Equal(t, "entry-1", e.EntryID)
			assert.Equal(t, "user-1", e.UserID)
			assert.Equal(t, 4, e.Rating)
			assert.Equal(t, "", e.Notes)
			assert.Equal(t, fixedNow.Truncate(time.Microsecond), e.CreatedAt)
			assert.Nil(t, e.UpdatedAt)
			return e, nil
		},
	)

	entry, err := svc.CreateEntry(ctx, "user-1", polarRequest())
	require.NoError(t, err)
	assert.Equal(t, "entry-1", entry.EntryID)
}

func TestEntryService_UpdateEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries := newTestEntryService(t, ctrl)

	req := polarRequest()
	req.Rating = 2
	req.Notes = "flat"

	entries.EXPECT().UpdateEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.Entry) error {
			assert.Equal(t, "entry-9", e.EntryID)
			assert.Equal(t, "user-1", e.UserID)
			assert.Equal(t, 2, e.Rating)
			assert.Equal(t, "flat", e.Notes)
			require.NotNil(t, e.UpdatedAt)
			assert.Equal(t, fixedNow.Truncate(time.Microsecond), *e.UpdatedAt)
			return nil
		},
	)

	require.NoError(t, svc.UpdateEntry(context.Background(), "user-1", "entry-9", req))
}

func TestEntryService_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries := newTestEntryService(t, ctrl)
	ctx := context.Background()

	entries.EXPECT().GetEntry(ctx, "user-2", "entry-1").Return(models.Entry{}, store.ErrEntryNotFound)
	entries.EXPECT().UpdateEntry(ctx, gomock.Any()).Return(store.ErrEntryNotFound)
	entries.EXPECT().DeleteEntry(ctx, "user-2", "entry-1").Return(store.ErrEntryNotFound)

	_, err := svc.GetEntry(ctx, "user-2", "entry-1")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	err = svc.UpdateEntry(ctx, "user-2", "entry-1", polarRequest())
	assert.ErrorIs(t, err, ErrEntryNotFound)

	err = svc.DeleteEntry(ctx, "user-2", "entry-1")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestEntryService_StoreErrorsAreWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries := newTestEntryService(t, ctrl)
	dbErr := errors.New("connection reset")

	entries.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).Return(models.Entry{}, dbErr)
	entries.EXPECT().ListEntries(gomock.Any(), gomock.Any()).Return(nil, dbErr)

	_, err := svc.CreateEntry(context.Background(), "user-1", polarRequest())
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrEntryNotFound)

	_, err = svc.ListEntries(context.Background(), "user-1", 0)
	assert.ErrorIs(t, err, dbErr)
}

func TestEntryService_ListEntries_Limit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"positive", 5, 5},
		{"zero means no cap", 0, 0},
		{"negative means no cap", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, entries := newTestEntryService(t, ctrl)

			entries.EXPECT().ListEntries(gomock.Any(), models.EntryQuery{UserID: "user-1", Limit: tt.wantLimit}).
				Return([]models.Entry{}, nil)

			got, err := svc.ListEntries(context.Background(), "user-1", tt.limit)
			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestEntryService_SearchEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, entries := newTestEntryService(t, ctrl)

	want := []models.Entry{{EntryID: "entry-1"}}
	entries.EXPECT().ListEntries(gomock.Any(), models.EntryQuery{
		UserID: "user-1",
		Text:   "50%",
		Filter: models.SearchFilterBrand,
	}).Return(want, nil)

	got, err := svc.SearchEntries(context.Background(), "user-1", "50%", models.SearchFilterBrand)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
