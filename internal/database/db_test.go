package database

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/zapponejosh/zmanim-api/internal/geo"
)

// testDB creates a migrated in-memory database for testing.
func testDB(t *testing.T) *DB {
	t.Helper()

	cfg := Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	db, err := Open(cfg, logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func jerusalem() *Location {
	return &Location{
		Name:      "Jerusalem",
		Latitude:  31.778,
		Longitude: 35.2354,
		Elevation: 754,
		Timezone:  "Asia/Jerusalem",
		InIsrael:  true,
	}
}

func newYork() *Location {
	return &Location{
		Name:      "New York",
		Latitude:  40.7128,
		Longitude: -74.006,
		Timezone:  "America/New_York",
	}
}

// -----------------------------------------------------------------
// DB tests
// -----------------------------------------------------------------

func TestOpen(t *testing.T) {
	db := testDB(t)

	if err := db.Health(context.Background()); err != nil {
		t.Errorf("Health() error = %v", err)
	}
}

func TestMigrate(t *testing.T) {
	db := testDB(t)

	// Already applied in testDB.
	count, err := db.Migrate(context.Background())
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Migrate() count = %d, want 0 (already applied)", count)
	}
}

// -----------------------------------------------------------------
// Location tests
// -----------------------------------------------------------------

func TestCreateAndGetLocation(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	loc := jerusalem()
	if err := db.CreateLocation(ctx, loc); err != nil {
		t.Fatalf("CreateLocation() error = %v", err)
	}
	if loc.ID == "" {
		t.Fatal("CreateLocation() did not assign an ID")
	}
	if loc.CreatedAt.IsZero() {
		t.Error("CreateLocation() did not set CreatedAt")
	}

	got, err := db.GetLocation(ctx, loc.ID)
	if err != nil {
		t.Fatalf("GetLocation() error = %v", err)
	}
	if got.Name != "Jerusalem" || got.Latitude != 31.778 || got.Elevation != 754 || !got.InIsrael {
		t.Errorf("GetLocation() = %+v", got)
	}
	if got.Timezone != "Asia/Jerusalem" {
		t.Errorf("Timezone = %q, want Asia/Jerusalem", got.Timezone)
	}

	byName, err := db.GetLocationByName(ctx, "Jerusalem")
	if err != nil {
		t.Fatalf("GetLocationByName() error = %v", err)
	}
	if byName.ID != loc.ID {
		t.Errorf("GetLocationByName() ID = %q, want %q", byName.ID, loc.ID)
	}

	g, err := got.Geo()
	if err != nil {
		t.Fatalf("Geo() error = %v", err)
	}
	if g.Name() != "Jerusalem" || g.TimeZone().String() != "Asia/Jerusalem" {
		t.Errorf("Geo() = %v", g)
	}
}

func TestGetLocation_NotFound(t *testing.T) {
	db := testDB(t)

	_, err := db.GetLocation(context.Background(), "missing")
	if !IsNotFound(err) {
		t.Errorf("GetLocation() error = %v, want ErrNotFound", err)
	}
}

func TestCreateLocation_Duplicate(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := db.CreateLocation(ctx, jerusalem()); err != nil {
		t.Fatalf("CreateLocation() error = %v", err)
	}
	err := db.CreateLocation(ctx, jerusalem())
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("CreateLocation() error = %v, want ErrDuplicate", err)
	}
}

func TestCreateLocation_Invalid(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		modify func(*Location)
	}{
		{"missing name", func(l *Location) { l.Name = "" }},
		{"latitude", func(l *Location) { l.Latitude = 95 }},
		{"longitude", func(l *Location) { l.Longitude = 200 }},
		{"elevation", func(l *Location) { l.Elevation = -10 }},
		{"timezone", func(l *Location) { l.Timezone = "Nowhere/Special" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := jerusalem()
			tt.modify(loc)
			err := db.CreateLocation(ctx, loc)
			if !errors.Is(err, geo.ErrInvalidLocation) {
				t.Errorf("CreateLocation() error = %v, want ErrInvalidLocation", err)
			}
		})
	}
}

func TestListAndCountLocations(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	list, err := db.ListLocations(ctx)
	if err != nil {
		t.Fatalf("ListLocations() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("ListLocations() len = %d, want 0", len(list))
	}

	for _, loc := range []*Location{newYork(), jerusalem()} {
		if err := db.CreateLocation(ctx, loc); err != nil {
			t.Fatalf("CreateLocation() error = %v", err)
		}
	}

	list, err = db.ListLocations(ctx)
	if err != nil {
		t.Fatalf("ListLocations() error = %v", err)
	}
	if len(list) != 2 || list[0].Name != "Jerusalem" || list[1].Name != "New York" {
		t.Errorf("ListLocations() = %+v, want Jerusalem then New York", list)
	}

	n, err := db.CountLocations(ctx)
	if err != nil {
		t.Fatalf("CountLocations() error = %v", err)
	}
	if n != 2 {
		t.Errorf("CountLocations() = %d, want 2", n)
	}
}

func TestUpdateLocation(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	loc := newYork()
	if err := db.CreateLocation(ctx, loc); err != nil {
		t.Fatalf("CreateLocation() error = %v", err)
	}

	loc.Name = "Manhattan"
	loc.Elevation = 10
	if err := db.UpdateLocation(ctx, loc); err != nil {
		t.Fatalf("UpdateLocation() error = %v", err)
	}

	got, err := db.GetLocation(ctx, loc.ID)
	if err != nil {
		t.Fatalf("GetLocation() error = %v", err)
	}
	if got.Name != "Manhattan" || got.Elevation != 10 {
		t.Errorf("GetLocation() = %+v", got)
	}

	missing := newYork()
	missing.ID = "does-not-exist"
	if err := db.UpdateLocation(ctx, missing); !IsNotFound(err) {
		t.Errorf("UpdateLocation() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteLocation(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	loc := jerusalem()
	if err := db.CreateLocation(ctx, loc); err != nil {
		t.Fatalf("CreateLocation() error = %v", err)
	}
	if err := db.DeleteLocation(ctx, loc.ID); err != nil {
		t.Fatalf("DeleteLocation() error = %v", err)
	}
	if err := db.DeleteLocation(ctx, loc.ID); !IsNotFound(err) {
		t.Errorf("second DeleteLocation() error = %v, want ErrNotFound", err)
	}
}

// -----------------------------------------------------------------
// Transaction tests
// -----------------------------------------------------------------

func TestWithTx_Commit(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(tx *Tx) error {
		if err := tx.CreateLocation(ctx, jerusalem()); err != nil {
			return err
		}
		if err := tx.CreateLocation(ctx, newYork()); err != nil {
			return err
		}
		n, err := tx.CountLocations(ctx)
		if err != nil {
			return err
		}
		if n != 2 {
			t.Errorf("CountLocations() inside tx = %d, want 2", n)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithTx() error = %v", err)
	}

	n, err := db.CountLocations(ctx)
	if err != nil {
		t.Fatalf("CountLocations() error = %v", err)
	}
	if n != 2 {
		t.Errorf("CountLocations() = %d, want 2", n)
	}
}

func TestWithTx_Rollback(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(tx *Tx) error {
		if err := tx.CreateLocation(ctx, jerusalem()); err != nil {
			return err
		}
		// Same name again aborts the whole batch.
		return tx.CreateLocation(ctx, jerusalem())
	})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("WithTx() error = %v, want ErrDuplicate", err)
	}

	n, err := db.CountLocations(ctx)
	if err != nil {
		t.Fatalf("CountLocations() error = %v", err)
	}
	if n != 0 {
		t.Errorf("CountLocations() = %d, want 0 after rollback", n)
	}
}
