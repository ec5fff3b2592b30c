// Command zmanim prints zmanim and Hebrew calendar information for a
// location and date.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/zmanim-api/internal/calendar"
	"github.com/zapponejosh/zmanim-api/internal/config"
	"github.com/zapponejosh/zmanim-api/internal/database"
	"github.com/zapponejosh/zmanim-api/internal/geo"
	"github.com/zapponejosh/zmanim-api/internal/logger"
	"github.com/zapponejosh/zmanim-api/internal/zmanim"
)

// ValidOutputs are the accepted --output values.
var ValidOutputs = []string{"table", "json", "yaml"}

// RootOptions holds the global flags shared by every subcommand.
type RootOptions struct {
	Latitude  float64
	Longitude float64
	Elevation float64
	Timezone  string
	Israel    bool
	Date      string
	Output    string
	Location  string
	Database  string
	Hebrew    bool

	cfg *config.Config
}

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// NewRootCommand creates the root command and its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "zmanim",
		Short: "Halachic times and the Hebrew calendar",
		Long: `Compute zmanim and Hebrew calendar information for any place and day.

The location comes from --location (a saved location), from --lat/--lon,
or from the configured default (DEFAULT_LATITUDE and friends).

Examples:
  zmanim times --date 2024-06-21
  zmanim times sunrise sunset --lat 40.7128 --lon -74.006 --tz America/New_York
  zmanim luach --date 2024-10-01 --israel=false
  zmanim molad --year 5784 --month 13 -o json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidOutputs, opts.Output) {
				return fmt.Errorf("invalid output %q: must be one of %v", opts.Output, ValidOutputs)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			if opts.Database == "" {
				opts.Database = cfg.DatabasePath
			}
			logger.Install(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}

	f := cmd.PersistentFlags()
	f.Float64Var(&opts.Latitude, "lat", 0, "latitude in degrees, north positive")
	f.Float64Var(&opts.Longitude, "lon", 0, "longitude in degrees, east positive")
	f.Float64Var(&opts.Elevation, "elev", 0, "elevation in meters")
	f.StringVar(&opts.Timezone, "tz", "", "IANA timezone (default: the configured default)")
	f.BoolVar(&opts.Israel, "israel", false, "use the Israel holiday and parsha schedule")
	f.StringVar(&opts.Date, "date", "", "civil date YYYY-MM-DD (default: today)")
	f.StringVarP(&opts.Output, "output", "o", "table", "output format (table|json|yaml)")
	f.StringVarP(&opts.Location, "location", "l", "", "saved location name or id")
	f.StringVar(&opts.Database, "db", "", "SQLite database for saved locations (default: DATABASE_PATH)")
	f.BoolVar(&opts.Hebrew, "hebrew", false, "print names in Hebrew")

	cmd.AddCommand(NewTimesCommand(opts))
	cmd.AddCommand(NewDateCommand(opts))
	cmd.AddCommand(NewParshaCommand(opts))
	cmd.AddCommand(NewDafCommand(opts))
	cmd.AddCommand(NewMoladCommand(opts))
	cmd.AddCommand(NewLuachCommand(opts))
	cmd.AddCommand(NewLocationsCommand(opts))

	return cmd
}

// place is the resolved observer.
type place struct {
	loc      geo.Location
	inIsrael bool
}

// resolvePlace picks the location in flag order: --location, then
// --lat/--lon, then the configured default. --israel overrides the flag
// stored with the location.
func (o *RootOptions) resolvePlace(cmd *cobra.Command) (place, error) {
	var p place
	flags := cmd.Flags()

	switch {
	case o.Location != "":
		saved, err := o.lookupLocation(cmd.Context(), o.Location)
		if err != nil {
			return place{}, err
		}
		loc, err := saved.Geo()
		if err != nil {
			return place{}, err
		}
		p = place{loc: loc, inIsrael: saved.InIsrael}

	case flags.Changed("lat") || flags.Changed("lon"):
		if !flags.Changed("lat") || !flags.Changed("lon") {
			return place{}, fmt.Errorf("%w: --lat and --lon go together", geo.ErrInvalidLocation)
		}
		tzName := o.Timezone
		if tzName == "" {
			tzName = o.cfg.DefaultTimezone
		}
		tz, err := time.LoadLocation(tzName)
		if err != nil {
			return place{}, fmt.Errorf("%w: unknown timezone %q", geo.ErrInvalidLocation, tzName)
		}
		loc, err := geo.New("Custom", o.Latitude, o.Longitude, o.Elevation, tz)
		if err != nil {
			return place{}, err
		}
		p = place{loc: loc, inIsrael: o.cfg.InIsrael}

	default:
		loc, err := o.cfg.DefaultLocation()
		if err != nil {
			return place{}, err
		}
		p = place{loc: loc, inIsrael: o.cfg.InIsrael}
	}

	if flags.Changed("israel") {
		p.inIsrael = o.Israel
	}
	return p, nil
}

func (o *RootOptions) lookupLocation(ctx context.Context, ref string) (*database.Location, error) {
	db, err := o.openDB(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	saved, err := db.GetLocationByName(ctx, ref)
	if database.IsNotFound(err) {
		saved, err = db.GetLocation(ctx, ref)
	}
	if err != nil {
		return nil, fmt.Errorf("location %q: %w", ref, err)
	}
	return saved, nil
}

func (o *RootOptions) openDB(ctx context.Context) (*database.DB, error) {
	db, err := database.Open(database.DefaultConfig(o.Database), slog.Default())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

// date returns --date at midnight in tz, or today there.
func (o *RootOptions) date(tz *time.Location) (time.Time, error) {
	if o.Date == "" {
		y, m, d := time.Now().In(tz).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, tz), nil
	}
	return calendar.ParseDateIn(o.Date, tz)
}

func (o *RootOptions) zmanimOptions() zmanim.Options {
	opts := zmanim.DefaultOptions()
	opts.CandleLightingOffset = o.cfg.CandleLightingOffset()
	return opts
}

// locationReport is the printable form of a place.
type locationReport struct {
	Name      string  `json:"name" yaml:"name"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Elevation float64 `json:"elevation" yaml:"elevation"`
	Timezone  string  `json:"timezone" yaml:"timezone"`
	InIsrael  bool    `json:"in_israel" yaml:"in_israel"`
}

func (p place) report() locationReport {
	return locationReport{
		Name:      p.loc.Name(),
		Latitude:  p.loc.Latitude(),
		Longitude: p.loc.Longitude(),
		Elevation: p.loc.Elevation(),
		Timezone:  p.loc.TimeZone().String(),
		InIsrael:  p.inIsrael,
	}
}
