// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/models"
)

// brandRepository is the SQL-backed implementation of [BrandRepository].
// Flavors live in "brand_flavors" and keep their insertion order through the
// sort_order column.
type brandRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBrandRepository constructs a [BrandRepository].
func NewBrandRepository(db *DB, logger *logger.Logger) BrandRepository {
	logger.Debug().Msg("creating brand repository")
	return &brandRepository{
		db:     db,
		logger: logger,
	}
}

// ListBrands returns every brand with its flavors in display order.
// A brand without flavors carries an empty, non-nil slice.
func (r *brandRepository) ListBrands(ctx context.Context) ([]models.Brand, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBrandsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*brandRepository.ListBrands").Msg("error building brands query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*brandRepository.ListBrands").Msg("error selecting brands")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	brands := make([]models.Brand, 0)
	index := make(map[string]int)
	for rows.Next() {
		brand := models.Brand{Flavors: []string{}}
		if err = rows.Scan(&brand.BrandID, &brand.Name, &brand.CreatedAt); err != nil {
			log.Err(err).Str("func", "*brandRepository.ListBrands").Msg("error scanning brand")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		index[brand.BrandID] = len(brands)
		brands = append(brands, brand)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*brandRepository.ListBrands").Msg("error iterating brands")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	query, args, err = buildSelectFlavorsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*brandRepository.ListBrands").Msg("error building flavors query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	flavorRows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*brandRepository.ListBrands").Msg("error selecting flavors")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer flavorRows.Close()

	for flavorRows.Next() {
		var brandID, flavor string
		if err = flavorRows.Scan(&brandID, &flavor); err != nil {
			log.Err(err).Str("func", "*brandRepository.ListBrands").Msg("error scanning flavor")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if i, ok := index[brandID]; ok {
			brands[i].Flavors = append(brands[i].Flavors, flavor)
		}
	}
	if err = flavorRows.Err(); err != nil {
		log.Err(err).Str("func", "*brandRepository.ListBrands").Msg("error iterating flavors")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return brands, nil
}

func (r *brandRepository) CountBrands(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountBrandsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*brandRepository.CountBrands").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*brandRepository.CountBrands").Msg("error counting brands")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// CreateBrand inserts the brand and its initial flavors in one transaction.
// A collision on id or name yields [ErrBrandAlreadyExists].
func (r *brandRepository) CreateBrand(ctx context.Context, brand models.Brand) (models.Brand, error) {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(tx DBTX) error {
		query, args, err := buildBrandConflictQuery(r.db.builder, brand)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		exists, err := rowExists(ctx, tx, query, args)
		if err != nil {
			return err
		}
		if exists {
			return ErrBrandAlreadyExists
		}

		query, args, err = buildInsertBrandQuery(r.db.builder, brand)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if r.db.isUniqueViolation(err) {
				return ErrBrandAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if len(brand.Flavors) == 0 {
			return nil
		}

		query, args, err = buildInsertFlavorsQuery(r.db.builder, brand.BrandID, brand.Flavors)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*brandRepository.CreateBrand").Str("brand_id", brand.BrandID).Msg("error creating brand")
		return models.Brand{}, err
	}

	if brand.Flavors == nil {
		brand.Flavors = []string{}
	}

	return brand, nil
}

// AddFlavor appends flavor to the brand's list.
func (r *brandRepository) AddFlavor(ctx context.Context, brandID, flavor string) error {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(tx DBTX) error {
		if _, err := r.selectBrand(ctx, tx, brandID); err != nil {
			return err
		}

		query, args, err := buildFlavorExistsQuery(r.db.builder, brandID, flavor)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		exists, err := rowExists(ctx, tx, query, args)
		if err != nil {
			return err
		}
		if exists {
			return ErrFlavorAlreadyExists
		}

		query, args, err = buildAppendFlavorQuery(r.db.builder, brandID, flavor)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if r.db.isUniqueViolation(err) {
				return ErrFlavorAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*brandRepository.AddFlavor").Str("brand_id", brandID).Msg("error adding flavor")
		return err
	}

	return nil
}

// RemoveFlavor deletes flavor from the brand's list. Removing a flavor the
// brand does not list is not an error.
func (r *brandRepository) RemoveFlavor(ctx context.Context, brandID, flavor string) error {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(tx DBTX) error {
		if _, err := r.selectBrand(ctx, tx, brandID); err != nil {
			return err
		}

		query, args, err := buildDeleteFlavorQuery(r.db.builder, brandID, flavor)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*brandRepository.RemoveFlavor").Str("brand_id", brandID).Msg("error removing flavor")
		return err
	}

	return nil
}

// DeleteBrand removes an unreferenced brand and returns it. While entries
// still point at the brand a [*BrandInUseError] is returned and nothing is
// deleted.
func (r *brandRepository) DeleteBrand(ctx context.Context, brandID string) (models.Brand, error) {
	log := logger.FromContext(ctx)

	var deleted models.Brand
	err := r.db.withTx(ctx, func(tx DBTX) error {
		brand, err := r.selectBrand(ctx, tx, brandID)
		if err != nil {
			return err
		}

		if err = r.db.lockEntryWrites(ctx, tx); err != nil {
			return err
		}

		query, args, err := buildCountBrandEntriesQuery(r.db.builder, brandID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		var count int
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if count > 0 {
			return &BrandInUseError{BrandID: brandID, Count: count}
		}

		// flavors first: SQLite only cascades with foreign_keys enabled
		query, args, err = buildDeleteBrandFlavorsQuery(r.db.builder, brandID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err = buildDeleteBrandQuery(r.db.builder, brandID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		deleted = brand
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*brandRepository.DeleteBrand").Str("brand_id", brandID).Msg("error deleting brand")
		return models.Brand{}, err
	}

	return deleted, nil
}

func (r *brandRepository) selectBrand(ctx context.Context, tx DBTX, brandID string) (models.Brand, error) {
	query, args, err := buildSelectBrandQuery(r.db.builder, brandID)
	if err != nil {
		return models.Brand{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var brand models.Brand
	err = tx.QueryRowContext(ctx, query, args...).Scan(&brand.BrandID, &brand.Name, &brand.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Brand{}, ErrBrandNotFound
	case err != nil:
		return models.Brand{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return brand, nil
}

// rowExists reports whether query yields at least one row.
func rowExists(ctx context.Context, q DBTX, query string, args []any) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return true, nil
}
