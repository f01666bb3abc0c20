// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/models"
)

// entryRepository is the SQL-backed implementation of [EntryRepository].
//
// Every statement filters on user_id, so an entry owned by someone else is
// indistinguishable from a missing one.
type entryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEntryRepository constructs an [EntryRepository].
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		db:     db,
		logger: logger,
	}
}

// ListEntries returns the owner's entries newest first, filtered and capped
// as described by query. An empty result is a non-nil empty slice.
func (r *entryRepository) ListEntries(ctx context.Context, query models.EntryQuery) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildSelectEntriesQuery(r.db.builder, query)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("error selecting entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("error scanning entry")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("error iterating entries")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *entryRepository) GetEntry(ctx context.Context, userID, entryID string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntryQuery(r.db.builder, userID, entryID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.GetEntry").Msg("error building query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Entry{}, ErrEntryNotFound
	case err != nil:
		log.Err(err).Str("func", "*entryRepository.GetEntry").Msg("error scanning entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

func (r *entryRepository) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEntryQuery(r.db.builder, entry)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.CreateEntry").Msg("error building query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*entryRepository.CreateEntry").Msg("error inserting entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// UpdateEntry overwrites the mutable fields of an owned entry in a single
// statement. No matching row yields [ErrEntryNotFound].
func (r *entryRepository) UpdateEntry(ctx context.Context, entry models.Entry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEntryQuery(r.db.builder, entry)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.UpdateEntry").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOwned(ctx, "*entryRepository.UpdateEntry", query, args)
}

// DeleteEntry removes an owned entry. No matching row yields
// [ErrEntryNotFound].
func (r *entryRepository) DeleteEntry(ctx context.Context, userID, entryID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(r.db.builder, userID, entryID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.DeleteEntry").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOwned(ctx, "*entryRepository.DeleteEntry", query, args)
}

func (r *entryRepository) execOwned(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// EntryStats aggregates the owner's entries in one query.
func (r *entryRepository) EntryStats(ctx context.Context, userID string, since time.Time) (models.EntryAggregate, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildEntryStatsQuery(r.db.builder, userID, since)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.EntryStats").Msg("error building query")
		return models.EntryAggregate{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var aggregate models.EntryAggregate
	if err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&aggregate.Total, &aggregate.RatingSum, &aggregate.CreatedSince); err != nil {
		log.Err(err).Str("func", "*entryRepository.EntryStats").Msg("error scanning aggregate")
		return models.EntryAggregate{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return aggregate, nil
}

// BrandDistribution counts the owner's entries per brand name, largest
// count first.
func (r *entryRepository) BrandDistribution(ctx context.Context, userID string) ([]models.BrandCount, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildBrandDistributionQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.BrandDistribution").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.BrandDistribution").Msg("error selecting distribution")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	distribution := make([]models.BrandCount, 0)
	for rows.Next() {
		var count models.BrandCount
		if err = rows.Scan(&count.Brand, &count.Count); err != nil {
			log.Err(err).Str("func", "*entryRepository.BrandDistribution").Msg("error scanning brand count")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		distribution = append(distribution, count)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*entryRepository.BrandDistribution").Msg("error iterating distribution")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return distribution, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var (
		entry     models.Entry
		updatedAt sql.NullTime
	)
	err := row.Scan(
		&entry.EntryID, &entry.UserID, &entry.Brand, &entry.BrandID, &entry.Flavor, &entry.FlavorID,
		&entry.Rating, &entry.Date, &entry.Time, &entry.Notes, &entry.CreatedAt, &updatedAt,
	)
	if err != nil {
		return models.Entry{}, err
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		entry.UpdatedAt = &t
	}

	return entry, nil
}
