// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBrandRepo(t *testing.T) (BrandRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewBrandRepository(newDBFromSQL(db), logger.Nop()), mock
}

var brandColumns = []string{"brand_id", "name", "created_at"}

func TestListBrands(t *testing.T) {
	now := time.Now().UTC()

	t.Run("groups flavors in order", func(t *testing.T) {
		repo, mock := newTestBrandRepo(t)
		mock.ExpectQuery(`SELECT brand_id, name, created_at FROM brands ORDER BY created_at ASC, name ASC`).
			WillReturnRows(sqlmock.NewRows(brandColumns).
				AddRow("polar", "Polar", now).
				AddRow("new-brand", "New Brand", now.Add(time.Second)))
		mock.ExpectQuery(`SELECT brand_id, name FROM brand_flavors ORDER BY brand_id ASC, sort_order ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"brand_id", "name"}).
				AddRow("polar", "Orange Vanilla").
				AddRow("polar", "Lime").
				AddRow("orphan", "Ghost"))

		brands, err := repo.ListBrands(testContext())
		require.NoError(t, err)
		require.Len(t, brands, 2)
		assert.Equal(t, []string{"Orange Vanilla", "Lime"}, brands[0].Flavors)
		assert.NotNil(t, brands[1].Flavors)
		assert.Empty(t, brands[1].Flavors)
	})

	t.Run("brands query error", func(t *testing.T) {
		repo, mock := newTestBrandRepo(t)
		mock.ExpectQuery("FROM brands").WillReturnError(errors.New("boom"))

		_, err := repo.ListBrands(testContext())
		require.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("flavors query error", func(t *testing.T) {
		repo, mock := newTestBrandRepo(t)
		mock.ExpectQuery("FROM brands").WillReturnRows(sqlmock.NewRows(brandColumns))
		mock.ExpectQuery("FROM brand_flavors").WillReturnError(errors.New("boom"))

		_, err := repo.ListBrands(testContext())
		require.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestCountBrands(t *testing.T) {
	repo, mock := newTestBrandRepo(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM brands`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(8)))

	count, err := repo.CountBrands(testContext())
	require.NoError(t, err)
	assert.Equal(t, 8, count)
}

func TestCreateBrand(t *testing.T) {
	brand := models.Brand{BrandID: "new-brand", Name: "New Brand", Flavors: []string{"Lime", "Berry"}, CreatedAt: time.Now().UTC()}

	t.Run("inserts brand and ordered flavors", func(t *testing.T) {
		repo, mock := newTestBrandRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT 1 FROM brands WHERE \(brand_id = \$1 OR name = \$2\) LIMIT 1`).
			WithArgs("new-brand", "New Brand").
			WillReturnRows(sqlmock.NewRows([]string{"1"}))
		mock.ExpectExec("INSERT INTO brands").
			WithArgs("new-brand", "New Brand", brand.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO brand_flavors").
			WithArgs("new-brand", "Lime", 0, "new-brand", "Berry", 1).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		created, err := repo.CreateBrand(testContext(), brand)
		require.NoError(t, err)
		assert.Equal(t, brand, created)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no flavors skips flavor insert", func(t *testing.T) {
		repo, mock := newTestBrandRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT 1 FROM brands").WillReturnRows(sqlmock.NewRows([]string{"1"}))
		mock.ExpectExec("INSERT INTO brands").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		created, err := repo.CreateBrand(testContext(), models.Brand{BrandID: "x", Name: "X"})
		require.NoError(t, err)
		assert.NotNil(t, created.Flavors)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing id or name", func(t *testing.T) {
		repo, mock := newTestBrandRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT 1 FROM brands").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
		mock.ExpectRollback()

		_, err := repo.CreateBrand(testContext(), brand)
		require.ErrorIs(t, err, ErrBrandAlreadyExists)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent insert hits unique constraint", func(t *testing.T) {
		repo, mock := newTestBrandRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT 1 FROM brands").WillReturnRows(sqlmock.NewRows([]string{"1"}))
		mock.ExpectExec("INSERT INTO brands").WillReturnError(pgError(pgerrcode.UniqueViolation))
		mock.ExpectRollback()

		_, err := repo.CreateBrand(testContext(), brand)
		require.ErrorIs(t, err, ErrBrandAlreadyExists)
	})
}

func TestAddFlavor(t *testing.T) {
	now := time.Now().UTC()

	t.Run("appends", func(t *testing.T) {
		repo, mock := newTestBrandRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`FROM brands WHERE brand_id = \$1`).
			WithArgs("polar").
			WillReturnRows(sqlmock.NewRows(brandColumns).AddRow("polar", "Polar", now))
		mock.ExpectQuery(`SELECT 1 FROM brand_flavors WHERE brand_id = \$1 AND name = \$2`).
			WithArgs("polar", "Grape").
			WillReturnRows(sqlmock.NewRows([]string{"1"}))
		mock.ExpectExec(`INSERT INTO brand_flavors .+ MAX\(sort_order\)`).
			WithArgs("polar", "Grape", "polar").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.AddFlavor(testContext(), "polar", "Grape"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown brand", func(t *testing.T) {
		repo, mock := newTestBrandRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("FROM brands").WillReturnRows(sqlmock.NewRows(brandColumns))
		mock.ExpectRollback()

		require.ErrorIs(t, repo.AddFlavor(testContext(), "nope", "Grape"), ErrBrandNotFound)
	})

	t.Run("duplicate flavor", func(t *testing.T) {
		repo, mock := newTestBrandRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("FROM brands").WillReturnRows(sqlmock.NewRows(brandColumns).AddRow("polar", "Polar", now))
		mock.ExpectQuery("FROM brand_flavors").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
		mock.ExpectRollback()

		require.ErrorIs(t, repo.AddFlavor(testContext(), "polar", "Lime"), ErrFlavorAlreadyExists)
	})
}

func TestRemoveFlavor(t *testing.T) {
	now := time.Now().UTC()

	t.Run("removes", func(t *testing.T) {
		repo, mock := newTestBrandRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("FROM brands").WillReturnRows(sqlmock.NewRows(brandColumns).AddRow("polar", "Polar", now))
		mock.ExpectExec(`DELETE FROM brand_flavors WHERE brand_id = \$1 AND name = \$2`).
			WithArgs("polar", "Lime").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.RemoveFlavor(testContext(), "polar", "Lime"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent flavor is not an error", func(t *testing.T) {
		repo, mock := newTestBrandRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("FROM brands").WillReturnRows(sqlmock.NewRows(brandColumns).AddRow("polar", "Polar", now))
		mock.ExpectExec("DELETE FROM brand_flavors").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		require.NoError(t, repo.RemoveFlavor(testContext(), "polar", "Nope"))
	})

	t.Run("unknown brand", func(t *testing.T) {
		repo, mock := newTestBrandRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("FROM brands").WillReturnRows(sqlmock.NewRows(brandColumns))
		mock.ExpectRollback()

		require.ErrorIs(t, repo.RemoveFlavor(testContext(), "nope", "Lime"), ErrBrandNotFound)
	})
}

func TestDeleteBrand(t *testing.T) {
	now := time.Now().UTC()

	t.Run("unreferenced brand is deleted", func(t *testing.T) {
		repo, mock := newTestBrandRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("FROM brands").
			WithArgs("polar").
			WillReturnRows(sqlmock.NewRows(brandColumns).AddRow("polar", "Polar", now))
		mock.ExpectExec(`LOCK TABLE entries IN SHARE MODE`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM entries WHERE brand_id = \$1`).
			WithArgs("polar").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
		mock.ExpectExec(`DELETE FROM brand_flavors WHERE brand_id = \$1`).WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`DELETE FROM brands WHERE brand_id = \$1`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		deleted, err := repo.DeleteBrand(testContext(), "polar")
		require.NoError(t, err)
		assert.Equal(t, "Polar", deleted.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("referenced brand is kept", func(t *testing.T) {
		repo, mock := newTestBrandRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("FROM brands").WillReturnRows(sqlmock.NewRows(brandColumns).AddRow("polar", "Polar", now))
		mock.ExpectExec(`LOCK TABLE entries`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("FROM entries").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))
		mock.ExpectRollback()

		_, err := repo.DeleteBrand(testContext(), "polar")
		require.ErrorIs(t, err, ErrBrandInUse)

		var inUse *BrandInUseError
		require.ErrorAs(t, err, &inUse)
		assert.Equal(t, 4, inUse.Count)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown brand", func(t *testing.T) {
		repo, mock := newTestBrandRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("FROM brands").WillReturnRows(sqlmock.NewRows(brandColumns))
		mock.ExpectRollback()

		_, err := repo.DeleteBrand(testContext(), "nope")
		require.ErrorIs(t, err, ErrBrandNotFound)
	})

	t.Run("entries are locked before counting", func(t *testing.T) {
		repo, mock := newTestBrandRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("FROM brands").WillReturnRows(sqlmock.NewRows(brandColumns).AddRow("polar", "Polar", now))
		mock.ExpectExec(`LOCK TABLE entries IN SHARE MODE`).WillReturnError(errors.New("lock timeout"))
		mock.ExpectRollback()

		_, err := repo.DeleteBrand(testContext(), "polar")
		require.ErrorIs(t, err, ErrExecutingStatement)
		require.NoError(t, mock.ExpectationsWereMet(), "no count or delete may run without the lock")
	})
}
