package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

// querier is the part of *sql.DB and *sql.Tx the queries need, so each
// query is written once and exposed on both DB and Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp stored as TEXT. Both RFC 3339 and the
// SQLite datetime() format are accepted; anything else yields the zero time.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// isUniqueViolation reports whether err is a SQLite UNIQUE or PRIMARY KEY
// constraint failure.
func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.ExtendedCode == sqlite3.ErrConstraintUnique || se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

const locationColumns = `id, name, latitude, longitude, elevation, timezone, in_israel, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanLocation(row scanner) (*Location, error) {
	var loc Location
	var createdAt, updatedAt string
	err := row.Scan(
		&loc.ID,
		&loc.Name,
		&loc.Latitude,
		&loc.Longitude,
		&loc.Elevation,
		&loc.Timezone,
		&loc.InIsrael,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	loc.CreatedAt = parseTimestamp(createdAt)
	loc.UpdatedAt = parseTimestamp(updatedAt)
	return &loc, nil
}

// =============================================================================
// Location Queries
// =============================================================================

func createLocation(ctx context.Context, q querier, loc *Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	if loc.ID == "" {
		loc.ID = uuid.NewString()
	}
	ts := now()

	_, err := q.ExecContext(ctx, `
		INSERT INTO locations (`+locationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, loc.ID, loc.Name, loc.Latitude, loc.Longitude, loc.Elevation, loc.Timezone, loc.InIsrael, ts, ts)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("location %q: %w", loc.Name, ErrDuplicate)
		}
		return fmt.Errorf("insert location: %w", err)
	}

	loc.CreatedAt = parseTimestamp(ts)
	loc.UpdatedAt = loc.CreatedAt
	return nil
}

func getLocation(ctx context.Context, q querier, column, value string) (*Location, error) {
	row := q.QueryRowContext(ctx, `SELECT `+locationColumns+` FROM locations WHERE `+column+` = ?`, value)
	loc, err := scanLocation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query location by %s: %w", column, err)
	}
	return loc, nil
}

func listLocations(ctx context.Context, q querier) ([]Location, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+locationColumns+` FROM locations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query locations: %w", err)
	}
	defer rows.Close()

	locations := []Location{}
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, *loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate locations: %w", err)
	}
	return locations, nil
}

func updateLocation(ctx context.Context, q querier, loc *Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	ts := now()

	res, err := q.ExecContext(ctx, `
		UPDATE locations
		SET name = ?, latitude = ?, longitude = ?, elevation = ?, timezone = ?, in_israel = ?, updated_at = ?
		WHERE id = ?
	`, loc.Name, loc.Latitude, loc.Longitude, loc.Elevation, loc.Timezone, loc.InIsrael, ts, loc.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("location %q: %w", loc.Name, ErrDuplicate)
		}
		return fmt.Errorf("update location: %w", err)
	}
	if err := expectOneRow(res); err != nil {
		return err
	}
	loc.UpdatedAt = parseTimestamp(ts)
	return nil
}

func deleteLocation(ctx context.Context, q querier, id string) error {
	res, err := q.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return expectOneRow(res)
}

func countLocations(ctx context.Context, q querier) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM locations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count locations: %w", err)
	}
	return n, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// =============================================================================
// DB and Tx methods
// =============================================================================

// CreateLocation inserts loc, assigning a new uuid when ID is empty.
// A name already in use returns ErrDuplicate.
func (db *DB) CreateLocation(ctx context.Context, loc *Location) error {
	return createLocation(ctx, db, loc)
}

// GetLocation returns the location with id, or ErrNotFound.
func (db *DB) GetLocation(ctx context.Context, id string) (*Location, error) {
	return getLocation(ctx, db, "id", id)
}

// GetLocationByName returns the location called name, or ErrNotFound.
func (db *DB) GetLocationByName(ctx context.Context, name string) (*Location, error) {
	return getLocation(ctx, db, "name", name)
}

// ListLocations returns every location ordered by name.
func (db *DB) ListLocations(ctx context.Context) ([]Location, error) {
	return listLocations(ctx, db)
}

// UpdateLocation overwrites the row with loc.ID.
func (db *DB) UpdateLocation(ctx context.Context, loc *Location) error {
	return updateLocation(ctx, db, loc)
}

// DeleteLocation removes the row with id, or returns ErrNotFound.
func (db *DB) DeleteLocation(ctx context.Context, id string) error {
	return deleteLocation(ctx, db, id)
}

func (db *DB) CountLocations(ctx context.Context) (int, error) {
	return countLocations(ctx, db)
}

func (tx *Tx) CreateLocation(ctx context.Context, loc *Location) error {
	return createLocation(ctx, tx, loc)
}

func (tx *Tx) GetLocation(ctx context.Context, id string) (*Location, error) {
	return getLocation(ctx, tx, "id", id)
}

func (tx *Tx) GetLocationByName(ctx context.Context, name string) (*Location, error) {
	return getLocation(ctx, tx, "name", name)
}

func (tx *Tx) ListLocations(ctx context.Context) ([]Location, error) {
	return listLocations(ctx, tx)
}

func (tx *Tx) UpdateLocation(ctx context.Context, loc *Location) error {
	return updateLocation(ctx, tx, loc)
}

func (tx *Tx) DeleteLocation(ctx context.Context, id string) error {
	return deleteLocation(ctx, tx, id)
}

func (tx *Tx) CountLocations(ctx context.Context) (int, error) {
	return countLocations(ctx, tx)
}
