// Command import loads a file of named locations into the SQLite database.
//
// Usage:
//
//	go run ./cmd/import -file data/locations.yaml -db data/zmanim.db
//
// This tool:
// 1. Parses the locations file (YAML, or JSON when the name ends in .json)
// 2. Creates/opens the SQLite database and runs migrations
// 3. Imports every location in a single transaction
//
// A location whose name already exists fails the whole import unless
// -update is given, in which case the stored row is overwritten.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/zmanim-api/internal/database"
)

// LocationsFile is the layout of the import file.
type LocationsFile struct {
	Locations []database.Location `json:"locations" yaml:"locations"`
}

// ImportStats tracks import statistics.
type ImportStats struct {
	Created int
	Updated int
}

func main() {
	filePath := flag.String("file", "data/locations.yaml", "Path to locations file")
	dbPath := flag.String("db", "data/zmanim.db", "Path to SQLite database")
	update := flag.Bool("update", false, "Overwrite locations that already exist")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := run(*filePath, *dbPath, *update, logger); err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import complete")
}

func run(filePath, dbPath string, update bool, logger *slog.Logger) error {
	ctx := context.Background()
	startTime := time.Now()

	// =========================================================================
	// Step 1: Read and parse the locations file
	// =========================================================================
	logger.Info("reading locations file", slog.String("path", filePath))

	file, err := readLocations(filePath)
	if err != nil {
		return err
	}
	logger.Info("parsed locations", slog.Int("count", len(file.Locations)))

	// =========================================================================
	// Step 2: Open database and run migrations
	// =========================================================================
	logger.Info("opening database", slog.String("path", dbPath))

	db, err := database.Open(database.DefaultConfig(dbPath), logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrated, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations complete", slog.Int("applied", migrated))

	// =========================================================================
	// Step 3: Import in a transaction
	// =========================================================================
	var stats ImportStats
	err = db.WithTx(ctx, func(tx *database.Tx) error {
		return importLocations(ctx, tx, file.Locations, update, logger, &stats)
	})
	if err != nil {
		return fmt.Errorf("import locations: %w", err)
	}

	// =========================================================================
	// Step 4: Verify
	// =========================================================================
	total, err := db.CountLocations(ctx)
	if err != nil {
		return fmt.Errorf("count locations: %w", err)
	}
	elapsed := time.Since(startTime)

	logger.Info("import verified",
		slog.Int("total_locations", total),
		slog.Duration("elapsed", elapsed),
	)

	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("Locations created:   %d\n", stats.Created)
	fmt.Printf("Locations updated:   %d\n", stats.Updated)
	fmt.Printf("Locations in DB:     %d\n", total)
	fmt.Printf("Time elapsed:        %v\n", elapsed.Round(time.Millisecond))

	return nil
}

func readLocations(path string) (*LocationsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locations file: %w", err)
	}

	var file LocationsFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &file)
	} else {
		err = yaml.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(file.Locations) == 0 {
		return nil, fmt.Errorf("%s contains no locations", path)
	}
	return &file, nil
}

// importLocations creates each location, or overwrites one with the same
// name when update is set.
func importLocations(ctx context.Context, tx *database.Tx, locations []database.Location, update bool, logger *slog.Logger, stats *ImportStats) error {
	for i := range locations {
		loc := &locations[i]

		existing, err := tx.GetLocationByName(ctx, loc.Name)
		switch {
		case err == nil && update:
			loc.ID = existing.ID
			if err := tx.UpdateLocation(ctx, loc); err != nil {
				return fmt.Errorf("update location %d (%s): %w", i+1, loc.Name, err)
			}
			stats.Updated++
			logger.Debug("location updated", slog.String("name", loc.Name))
			continue
		case err != nil && !errors.Is(err, database.ErrNotFound):
			return fmt.Errorf("look up location %d (%s): %w", i+1, loc.Name, err)
		}

		if err := tx.CreateLocation(ctx, loc); err != nil {
			return fmt.Errorf("create location %d (%s): %w", i+1, loc.Name, err)
		}
		stats.Created++
		logger.Debug("location created", slog.String("name", loc.Name), slog.String("id", loc.ID))
	}
	return nil
}
