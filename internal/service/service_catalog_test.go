// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
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

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 123456789, time.UTC)

func newTestCatalogService(t *testing.T, ctrl *gomock.Controller) (*catalogService, *mock.MockBrandRepository) {
	t.Helper()
	brands := mock.NewMockBrandRepository(ctrl)

	svc := NewCatalogService(brands, logger.Nop()).(*catalogService)
	svc.now = func() time.Time { return fixedNow }

	return svc, brands
}

func TestBrandIDFromName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Polar Seltzer", "polar-seltzer"},
		{"LaCroix", "lacroix"},
		{"Ben & Jerry", "ben-and-jerry"},
		{"AHA", "aha"},
		{"Vintage Seltzers", "vintage-seltzers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BrandIDFromName(tt.name))
		})
	}
}

func TestCatalogService_CreateBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, brands := newTestCatalogService(t, ctrl)
	ctx := context.Background()

	brands.EXPECT().CreateBrand(ctx, models.Brand{
		BrandID:   "top-and-bottom",
		Name:      "Top & Bottom",
		Flavors:   []string{"Lime", "Peach"},
		CreatedAt: fixedNow.Truncate(time.Microsecond),
	}).DoAndReturn(func(_ context.Context, b models.Brand) (models.Brand, error) { return b, nil })

	brand, err := svc.CreateBrand(ctx, models.BrandRequest{
		Name:           "  Top & Bottom ",
		InitialFlavors: []string{"Lime", "Peach", "Lime"},
	})
	require.NoError(t, err)
	assert.Equal(t, "top-and-bottom", brand.BrandID)
	assert.Equal(t, []string{"Lime", "Peach"}, brand.Flavors)
}

func TestCatalogService_CreateBrand_ExplicitIDAndNoFlavors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, brands := newTestCatalogService(t, ctrl)

	brands.EXPECT().CreateBrand(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b models.Brand) (models.Brand, error) {
			assert.Equal(t, "waterloo", b.BrandID)
			assert.NotNil(t, b.Flavors)
			assert.Empty(t, b.Flavors)
			return b, nil
		},
	)

	_, err := svc.CreateBrand(context.Background(), models.BrandRequest{Name: "Waterloo Sparkling", BrandID: " waterloo "})
	require.NoError(t, err)
}

func TestCatalogService_ErrorMapping(t *testing.T) {
	dbErr := errors.New("connection reset")

	tests := []struct {
		name     string
		storeErr error
		wantErr  error
	}{
		{"brand exists", fmt.Errorf("%w: polar", store.ErrBrandAlreadyExists), ErrBrandAlreadyExists},
		{"brand missing", store.ErrBrandNotFound, ErrBrandNotFound},
		{"flavor exists", store.ErrFlavorAlreadyExists, ErrFlavorAlreadyExists},
		{"unknown", dbErr, dbErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, brands := newTestCatalogService(t, ctrl)
			ctx := context.Background()

			brands.EXPECT().CreateBrand(ctx, gomock.Any()).Return(models.Brand{}, tt.storeErr)
			brands.EXPECT().AddFlavor(ctx, "polar", "Lime").Return(tt.storeErr)
			brands.EXPECT().RemoveFlavor(ctx, "polar", "Lime").Return(tt.storeErr)
			brands.EXPECT().DeleteBrand(ctx, "polar").Return(models.Brand{}, tt.storeErr)

			_, err := svc.CreateBrand(ctx, models.BrandRequest{Name: "Polar"})
			assert.ErrorIs(t, err, tt.wantErr)

			err = svc.AddFlavor(ctx, "polar", models.FlavorRequest{FlavorName: "Lime"})
			assert.ErrorIs(t, err, tt.wantErr)

			err = svc.RemoveFlavor(ctx, "polar", models.FlavorRequest{FlavorName: "Lime"})
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = svc.DeleteBrand(ctx, "polar")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalogService_DeleteBrand(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, brands := newTestCatalogService(t, ctrl)

		brands.EXPECT().DeleteBrand(gomock.Any(), "polar").
			Return(models.Brand{BrandID: "polar", Name: "Polar Seltzer"}, nil)

		deleted, err := svc.DeleteBrand(context.Background(), "polar")
		require.NoError(t, err)
		assert.Equal(t, "Polar Seltzer", deleted.Name)
	})

	t.Run("in use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, brands := newTestCatalogService(t, ctrl)

		brands.EXPECT().DeleteBrand(gomock.Any(), "polar").
			Return(models.Brand{}, &store.BrandInUseError{BrandID: "polar", Count: 3})

		_, err := svc.DeleteBrand(context.Background(), "polar")
		require.ErrorIs(t, err, ErrBrandInUse)

		var inUse *BrandInUseError
		require.ErrorAs(t, err, &inUse)
		assert.Equal(t, 3, inUse.Count)
	})
}

func TestCatalogService_FlavorNameIsPassedVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, brands := newTestCatalogService(t, ctrl)

	brands.EXPECT().AddFlavor(gomock.Any(), "polar", " Lime ").Return(nil)

	require.NoError(t, svc.AddFlavor(context.Background(), "polar", models.FlavorRequest{FlavorName: " Lime "}))
}

func TestCatalogService_SeedDefaults(t *testing.T) {
	defaults := []models.Brand{
		{BrandID: "polar", Name: "Polar Seltzer", Flavors: []string{"Lime"}},
		{Name: "Bubly", Flavors: []string{"Cherry", "Cherry"}},
	}

	t.Run("empty catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, brands := newTestCatalogService(t, ctrl)
		base := fixedNow.Truncate(time.Microsecond)

		gomock.InOrder(
			brands.EXPECT().CountBrands(gomock.Any()).Return(0, nil),
			brands.EXPECT().CreateBrand(gomock.Any(), models.Brand{
				BrandID: "polar", Name: "Polar Seltzer", Flavors: []string{"Lime"}, CreatedAt: base,
			}).Return(models.Brand{}, nil),
			brands.EXPECT().CreateBrand(gomock.Any(), models.Brand{
				BrandID: "bubly", Name: "Bubly", Flavors: []string{"Cherry"}, CreatedAt: base.Add(time.Microsecond),
			}).Return(models.Brand{}, nil),
		)

		n, err := svc.SeedDefaults(context.Background(), defaults)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("catalog already populated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, brands := newTestCatalogService(t, ctrl)

		brands.EXPECT().CountBrands(gomock.Any()).Return(5, nil)

		n, err := svc.SeedDefaults(context.Background(), defaults)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("insert fails midway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, brands := newTestCatalogService(t, ctrl)
		dbErr := errors.New("boom")

		brands.EXPECT().CountBrands(gomock.Any()).Return(0, nil)
		brands.EXPECT().CreateBrand(gomock.Any(), gomock.Any()).Return(models.Brand{}, nil)
		brands.EXPECT().CreateBrand(gomock.Any(), gomock.Any()).Return(models.Brand{}, dbErr)

		n, err := svc.SeedDefaults(context.Background(), defaults)
		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, 1, n)
	})
}
