// Package geo holds validated observer locations and the geodesic helpers
// that operate on them.
package geo

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidLocation is returned when a coordinate or elevation is out of range.
var ErrInvalidLocation = errors.New("invalid location")

// Location is an observer on the earth's surface paired with the civil
// timezone used to report times for it. Values are immutable once built.
type Location struct {
	name      string
	latitude  float64
	longitude float64
	elevation float64 // metres above sea level
	tz        *time.Location
}

// New validates the inputs and returns a Location.
//
// Latitude must be within [-90, 90], longitude within [-180, 180] and
// elevation a finite value >= 0. A nil tz is treated as UTC.
func New(name string, latitude, longitude, elevation float64, tz *time.Location) (Location, error) {
	var errs []error

	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		errs = append(errs, fmt.Errorf("latitude must be between -90 and 90, got %v", latitude))
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		errs = append(errs, fmt.Errorf("longitude must be between -180 and 180, got %v", longitude))
	}
	if math.IsNaN(elevation) || math.IsInf(elevation, 0) || elevation < 0 {
		errs = append(errs, fmt.Errorf("elevation must be a finite value >= 0, got %v", elevation))
	}

	if len(errs) > 0 {
		return Location{}, fmt.Errorf("%w: %w", ErrInvalidLocation, errors.Join(errs...))
	}

	if tz == nil {
		tz = time.UTC
	}

	return Location{
		name:      name,
		latitude:  latitude,
		longitude: longitude,
		elevation: elevation,
		tz:        tz,
	}, nil
}

// MustNew is like New but panics on invalid input. Intended for tests and
// package-level fixtures.
func MustNew(name string, latitude, longitude, elevation float64, tz *time.Location) Location {
	loc, err := New(name, latitude, longitude, elevation, tz)
	if err != nil {
		panic(err)
	}
	return loc
}

// Name is a display label; it plays no part in any calculation.
func (l Location) Name() string { return l.name }

func (l Location) Latitude() float64  { return l.latitude }
func (l Location) Longitude() float64 { return l.longitude }

// Elevation is in metres above sea level.
func (l Location) Elevation() float64 { return l.elevation }

func (l Location) TimeZone() *time.Location { return l.tz }

func (l Location) String() string {
	return fmt.Sprintf("%s (%.4f, %.4f, %.0fm, %s)", l.name, l.latitude, l.longitude, l.elevation, l.tz)
}

// LocalMeanTimeOffset returns the difference between local mean time at the
// location's longitude and the civil time of its timezone at instant t.
// A location whose longitude lies east of its timezone meridian has a
// positive offset.
func (l Location) LocalMeanTimeOffset(t time.Time) time.Duration {
	_, zoneOffset := t.In(l.tz).Zone()
	ms := l.longitude*4*float64(time.Minute/time.Millisecond) - float64(zoneOffset)*1000
	return time.Duration(math.Round(ms)) * time.Millisecond
}

// AntimeridianAdjustment returns the number of days (-1, 0 or +1) the civil
// date must be shifted before solar computations. It is non-zero only for
// locations whose timezone is pushed across the antimeridian, such as
// Kiribati or Samoa, where local mean time differs from civil time by 20
// hours or more.
func (l Location) AntimeridianAdjustment(t time.Time) int {
	hours := l.LocalMeanTimeOffset(t).Hours()
	switch {
	case hours >= 20:
		return 1
	case hours <= -20:
		return -1
	default:
		return 0
	}
}
