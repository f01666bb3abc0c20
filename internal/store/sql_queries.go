// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-seltzer-tracker/models"
)

var (
	userColumns = []string{"user_id", "username", "email", "password_hash", "role", "created_at"}

	entryColumns = []string{
		"entry_id", "user_id", "brand", "brand_id", "flavor", "flavor_id",
		"rating", "entry_date", "entry_time", "notes", "created_at", "updated_at",
	}
)

// likeEscaper escapes LIKE wildcards so user input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns text into a LIKE pattern matching it anywhere.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

// containsIgnoreCase matches column against pattern without regard to case.
func containsIgnoreCase(column, pattern string) sq.Sqlizer {
	return sq.Expr("LOWER("+column+`) LIKE LOWER(?) ESCAPE '\'`, pattern)
}

// users

func buildInsertUserQuery(sb sq.StatementBuilderType, user models.User) (string, []any, error) {
	return sb.Insert("users").
		Columns(userColumns...).
		Values(user.UserID, user.Username, user.Email, user.PasswordHash, string(user.Role), user.CreatedAt).
		ToSql()
}

func buildUserExistsQuery(sb sq.StatementBuilderType, username, email string) (string, []any, error) {
	return sb.Select("1").
		From("users").
		Where(sq.Or{sq.Eq{"username": username}, sq.Eq{"email": email}}).
		Limit(1).
		ToSql()
}

func buildFindUserQuery(sb sq.StatementBuilderType, column, value string) (string, []any, error) {
	return sb.Select(userColumns...).
		From("users").
		Where(sq.Eq{column: value}).
		ToSql()
}

// sessions

func buildInsertSessionQuery(sb sq.StatementBuilderType, session models.Session) (string, []any, error) {
	return sb.Insert("sessions").
		Columns("session_id", "user_id", "created_at", "expires_at").
		Values(session.SessionID, session.UserID, session.CreatedAt, session.ExpiresAt).
		ToSql()
}

func buildFindSessionQuery(sb sq.StatementBuilderType, sessionID string, now time.Time) (string, []any, error) {
	return sb.Select("s.session_id", "s.user_id", "u.role", "s.created_at", "s.expires_at").
		From("sessions s").
		Join("users u ON u.user_id = s.user_id").
		Where(sq.Eq{"s.session_id": sessionID}).
		Where(sq.Gt{"s.expires_at": now}).
		ToSql()
}

func buildDeleteSessionQuery(sb sq.StatementBuilderType, sessionID string) (string, []any, error) {
	return sb.Delete("sessions").
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
}

func buildDeleteExpiredSessionsQuery(sb sq.StatementBuilderType, userID string, now time.Time) (string, []any, error) {
	return sb.Delete("sessions").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}

// brands

func buildSelectBrandsQuery(sb sq.StatementBuilderType) (string, []any, error) {
	return sb.Select("brand_id", "name", "created_at").
		From("brands").
		OrderBy("created_at ASC", "name ASC").
		ToSql()
}

func buildSelectFlavorsQuery(sb sq.StatementBuilderType) (string, []any, error) {
	return sb.Select("brand_id", "name").
		From("brand_flavors").
		OrderBy("brand_id ASC", "sort_order ASC").
		ToSql()
}

func buildCountBrandsQuery(sb sq.StatementBuilderType) (string, []any, error) {
	return sb.Select("COUNT(*)").From("brands").ToSql()
}

func buildBrandConflictQuery(sb sq.StatementBuilderType, brand models.Brand) (string, []any, error) {
	return sb.Select("1").
		From("brands").
		Where(sq.Or{sq.Eq{"brand_id": brand.BrandID}, sq.Eq{"name": brand.Name}}).
		Limit(1).
		ToSql()
}

func buildSelectBrandQuery(sb sq.StatementBuilderType, brandID string) (string, []any, error) {
	return sb.Select("brand_id", "name", "created_at").
		From("brands").
		Where(sq.Eq{"brand_id": brandID}).
		ToSql()
}

func buildInsertBrandQuery(sb sq.StatementBuilderType, brand models.Brand) (string, []any, error) {
	return sb.Insert("brands").
		Columns("brand_id", "name", "created_at").
		Values(brand.BrandID, brand.Name, brand.CreatedAt).
		ToSql()
}

// buildInsertFlavorsQuery inserts flavors in their given order.
// It must not be called with an empty list.
func buildInsertFlavorsQuery(sb sq.StatementBuilderType, brandID string, flavors []string) (string, []any, error) {
	insert := sb.Insert("brand_flavors").Columns("brand_id", "name", "sort_order")
	for i, flavor := range flavors {
		insert = insert.Values(brandID, flavor, i)
	}
	return insert.ToSql()
}

func buildFlavorExistsQuery(sb sq.StatementBuilderType, brandID, flavor string) (string, []any, error) {
	return sb.Select("1").
		From("brand_flavors").
		Where(sq.Eq{"brand_id": brandID}).
		Where(sq.Eq{"name": flavor}).
		ToSql()
}

// buildAppendFlavorQuery places flavor after the brand's current last flavor.
func buildAppendFlavorQuery(sb sq.StatementBuilderType, brandID, flavor string) (string, []any, error) {
	return sb.Insert("brand_flavors").
		Columns("brand_id", "name", "sort_order").
		Values(brandID, flavor,
			sq.Expr("(SELECT COALESCE(MAX(sort_order), -1) + 1 FROM brand_flavors WHERE brand_id = ?)", brandID)).
		ToSql()
}

func buildDeleteFlavorQuery(sb sq.StatementBuilderType, brandID, flavor string) (string, []any, error) {
	return sb.Delete("brand_flavors").
		Where(sq.Eq{"brand_id": brandID}).
		Where(sq.Eq{"name": flavor}).
		ToSql()
}

func buildDeleteBrandFlavorsQuery(sb sq.StatementBuilderType, brandID string) (string, []any, error) {
	return sb.Delete("brand_flavors").Where(sq.Eq{"brand_id": brandID}).ToSql()
}

func buildDeleteBrandQuery(sb sq.StatementBuilderType, brandID string) (string, []any, error) {
	return sb.Delete("brands").Where(sq.Eq{"brand_id": brandID}).ToSql()
}

func buildCountBrandEntriesQuery(sb sq.StatementBuilderType, brandID string) (string, []any, error) {
	return sb.Select("COUNT(*)").
		From("entries").
		Where(sq.Eq{"brand_id": brandID}).
		ToSql()
}

// entries

// buildSelectEntriesQuery lists the owner's entries newest first, optionally
// filtered by a case-insensitive substring and capped by Limit.
func buildSelectEntriesQuery(sb sq.StatementBuilderType, query models.EntryQuery) (string, []any, error) {
	sel := sb.Select(entryColumns...).
		From("entries").
		Where(sq.Eq{"user_id": query.UserID})

	if query.Text != "" {
		pattern := containsPattern(query.Text)
		switch query.Filter {
		case models.SearchFilterBrand:
			sel = sel.Where(containsIgnoreCase("brand", pattern))
		case models.SearchFilterFlavor:
			sel = sel.Where(containsIgnoreCase("flavor", pattern))
		default:
			sel = sel.Where(sq.Or{
				containsIgnoreCase("brand", pattern),
				containsIgnoreCase("flavor", pattern),
				containsIgnoreCase("notes", pattern),
			})
		}
	}

	sel = sel.OrderBy("created_at DESC", "entry_id DESC")
	if query.Limit > 0 {
		sel = sel.Limit(uint64(query.Limit))
	}

	return sel.ToSql()
}

func buildSelectEntryQuery(sb sq.StatementBuilderType, userID, entryID string) (string, []any, error) {
	return sb.Select(entryColumns...).
		From("entries").
		Where(sq.Eq{"entry_id": entryID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildInsertEntryQuery(sb sq.StatementBuilderType, entry models.Entry) (string, []any, error) {
	return sb.Insert("entries").
		Columns(entryColumns...).
		Values(entry.EntryID, entry.UserID, entry.Brand, entry.BrandID, entry.Flavor, entry.FlavorID,
			entry.Rating, entry.Date, entry.Time, entry.Notes, entry.CreatedAt, entry.UpdatedAt).
		ToSql()
}

// buildUpdateEntryQuery replaces the mutable fields of an owned entry.
func buildUpdateEntryQuery(sb sq.StatementBuilderType, entry models.Entry) (string, []any, error) {
	return sb.Update("entries").
		Set("brand", entry.Brand).
		Set("brand_id", entry.BrandID).
		Set("flavor", entry.Flavor).
		Set("flavor_id", entry.FlavorID).
		Set("rating", entry.Rating).
		Set("entry_date", entry.Date).
		Set("entry_time", entry.Time).
		Set("notes", entry.Notes).
		Set("updated_at", entry.UpdatedAt).
		Where(sq.Eq{"entry_id": entry.EntryID}).
		Where(sq.Eq{"user_id": entry.UserID}).
		ToSql()
}

func buildDeleteEntryQuery(sb sq.StatementBuilderType, userID, entryID string) (string, []any, error) {
	return sb.Delete("entries").
		Where(sq.Eq{"entry_id": entryID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildEntryStatsQuery counts the owner's entries, sums their ratings and
// counts those created at or after since. The sum is taken in floating point
// so it cannot overflow; DOUBLE PRECISION has REAL affinity in SQLite.
func buildEntryStatsQuery(sb sq.StatementBuilderType, userID string, since time.Time) (string, []any, error) {
	return sb.Select("COUNT(*)", "COALESCE(SUM(CAST(rating AS DOUBLE PRECISION)), 0)").
		Column(sq.Expr("COALESCE(SUM(CASE WHEN created_at >= ? THEN 1 ELSE 0 END), 0)", since)).
		From("entries").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildBrandDistributionQuery groups the owner's entries by brand name,
// most logged first and alphabetical among ties.
func buildBrandDistributionQuery(sb sq.StatementBuilderType, userID string) (string, []any, error) {
	return sb.Select("brand", "COUNT(*) AS entry_count").
		From("entries").
		Where(sq.Eq{"user_id": userID}).
		GroupBy("brand").
		OrderBy("entry_count DESC", "brand ASC").
		ToSql()
}
