// Package astro binds the solar engine to a civil date and an observer,
// producing sunrise, sunset, twilight and transit instants in the
// observer's timezone.
package astro

import (
	"math"
	"time"

	"github.com/zapponejosh/zmanim-api/internal/geo"
	"github.com/zapponejosh/zmanim-api/internal/solar"
)

// Event identifies which solar event a UTC hour value belongs to. It
// decides how the hour is anchored to a civil day.
type Event int

const (
	Sunrise Event = iota
	Sunset
	Noon
	Midnight
)

// Calendar computes solar events for one civil date at one location.
// The zero value is not usable; build one with New.
type Calendar struct {
	date time.Time // local midnight in the location's timezone
	loc  geo.Location
}

// New returns a Calendar for the civil date of d (its year, month and day as
// seen in d's own location) at loc.
func New(d time.Time, loc geo.Location) Calendar {
	y, m, day := d.Date()
	return Calendar{
		date: time.Date(y, m, day, 0, 0, 0, 0, loc.TimeZone()),
		loc:  loc,
	}
}

// Date returns local midnight of the calendar's civil date.
func (c Calendar) Date() time.Time { return c.date }

func (c Calendar) Location() geo.Location { return c.loc }

// adjustedDate is the civil date shifted across the antimeridian where
// local mean time and civil time are a full day apart.
func (c Calendar) adjustedDate() time.Time {
	return c.date.AddDate(0, 0, c.loc.AntimeridianAdjustment(c.date))
}

// Sunrise returns the elevation-adjusted sunrise.
func (c Calendar) Sunrise() (time.Time, bool) {
	h, ok := c.UTCSunrise(solar.GeometricZenith)
	return c.timeOf(h, ok, Sunrise)
}

// SeaLevelSunrise returns sunrise as seen from sea level, used for
// zmanim that must not depend on the observer's elevation.
func (c Calendar) SeaLevelSunrise() (time.Time, bool) {
	h, ok := c.UTCSeaLevelSunrise(solar.GeometricZenith)
	return c.timeOf(h, ok, Sunrise)
}

func (c Calendar) BeginCivilTwilight() (time.Time, bool) {
	return c.SunriseOffsetByDegrees(solar.CivilZenith)
}

func (c Calendar) BeginNauticalTwilight() (time.Time, bool) {
	return c.SunriseOffsetByDegrees(solar.NauticalZenith)
}

func (c Calendar) BeginAstronomicalTwilight() (time.Time, bool) {
	return c.SunriseOffsetByDegrees(solar.AstronomicalZenith)
}

// Sunset returns the elevation-adjusted sunset.
func (c Calendar) Sunset() (time.Time, bool) {
	h, ok := c.UTCSunset(solar.GeometricZenith)
	return c.timeOf(h, ok, Sunset)
}

func (c Calendar) SeaLevelSunset() (time.Time, bool) {
	h, ok := c.UTCSeaLevelSunset(solar.GeometricZenith)
	return c.timeOf(h, ok, Sunset)
}

func (c Calendar) EndCivilTwilight() (time.Time, bool) {
	return c.SunsetOffsetByDegrees(solar.CivilZenith)
}

func (c Calendar) EndNauticalTwilight() (time.Time, bool) {
	return c.SunsetOffsetByDegrees(solar.NauticalZenith)
}

func (c Calendar) EndAstronomicalTwilight() (time.Time, bool) {
	return c.SunsetOffsetByDegrees(solar.AstronomicalZenith)
}

// SunriseOffsetByDegrees returns the morning instant at which the sun is at
// zenith degrees. The zenith is used as given, with no elevation adjustment.
func (c Calendar) SunriseOffsetByDegrees(zenith float64) (time.Time, bool) {
	h, ok := c.UTCSeaLevelSunrise(zenith)
	return c.timeOf(h, ok, Sunrise)
}

// SunsetOffsetByDegrees is the evening counterpart of SunriseOffsetByDegrees.
func (c Calendar) SunsetOffsetByDegrees(zenith float64) (time.Time, bool) {
	h, ok := c.UTCSeaLevelSunset(zenith)
	return c.timeOf(h, ok, Sunset)
}

func (c Calendar) UTCSunrise(zenith float64) (float64, bool) {
	return solar.UTCSunrise(c.adjustedDate(), c.loc, zenith, true)
}

func (c Calendar) UTCSeaLevelSunrise(zenith float64) (float64, bool) {
	return solar.UTCSunrise(c.adjustedDate(), c.loc, zenith, false)
}

func (c Calendar) UTCSunset(zenith float64) (float64, bool) {
	return solar.UTCSunset(c.adjustedDate(), c.loc, zenith, true)
}

func (c Calendar) UTCSeaLevelSunset(zenith float64) (float64, bool) {
	return solar.UTCSunset(c.adjustedDate(), c.loc, zenith, false)
}

// SunTransit returns astronomical noon.
func (c Calendar) SunTransit() (time.Time, bool) {
	return c.timeOf(solar.UTCNoon(c.adjustedDate(), c.loc), true, Noon)
}

// SolarMidnight returns the solar midnight that follows the day's transit.
func (c Calendar) SolarMidnight() (time.Time, bool) {
	return c.timeOf(solar.UTCMidnight(c.adjustedDate(), c.loc), true, Midnight)
}

// TemporalHour returns a twelfth of the time between sea-level sunrise and
// sea-level sunset.
func (c Calendar) TemporalHour() (time.Duration, bool) {
	rise, ok := c.SeaLevelSunrise()
	if !ok {
		return 0, false
	}
	set, ok := c.SeaLevelSunset()
	if !ok {
		return 0, false
	}
	return TemporalHour(rise, set), true
}

// TemporalHour returns a twelfth of the interval between start and end.
func TemporalHour(start, end time.Time) time.Duration {
	return end.Sub(start) / 12
}

// SunTransitBetween returns the midpoint of a day that runs from start to
// end, measured in temporal hours.
func SunTransitBetween(start, end time.Time) time.Time {
	return start.Add(TemporalHour(start, end) * 6)
}

// LocalMeanTime returns the instant at which local mean time at the
// location reads hours. ok is false outside [0, 24).
func (c Calendar) LocalMeanTime(hours float64) (time.Time, bool) {
	if hours < 0 || hours >= 24 {
		return time.Time{}, false
	}
	_, offset := c.date.Zone()
	start, ok := c.DateFromTime(hours-float64(offset)/3600, Sunrise)
	if !ok {
		return time.Time{}, false
	}
	return start.Add(-c.loc.LocalMeanTimeOffset(c.date)), true
}

// SolarElevation returns the sun's geometric elevation in degrees at t.
func (c Calendar) SolarElevation(t time.Time) float64 {
	return solar.Elevation(t, c.loc)
}

// SolarAzimuth returns the sun's azimuth in degrees at t.
func (c Calendar) SolarAzimuth(t time.Time) float64 {
	return solar.Azimuth(t, c.loc)
}

func (c Calendar) timeOf(hours float64, ok bool, ev Event) (time.Time, bool) {
	if !ok || math.IsNaN(hours) {
		return time.Time{}, false
	}
	return c.DateFromTime(hours, ev)
}

// DateFromTime anchors hours after 00:00 UTC on the (antimeridian adjusted)
// civil date to an instant in the location's timezone. Events that fall on
// the neighbouring UTC day for the location's longitude are moved a day
// forward or back.
func (c Calendar) DateFromTime(hours float64, ev Event) (time.Time, bool) {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return time.Time{}, false
	}

	y, m, d := c.adjustedDate().Date()
	cal := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	h := int64(hours)
	rest := (hours - float64(h)) * 60
	minutes := int64(rest)
	rest = (rest - float64(minutes)) * 60
	seconds := int64(rest)
	rest -= float64(seconds)

	localHours := int64(c.loc.Longitude() / 15)
	switch {
	case ev == Sunrise && localHours+h > 18:
		cal = cal.AddDate(0, 0, -1)
	case ev == Sunset && localHours+h < 6:
		cal = cal.AddDate(0, 0, 1)
	case ev == Midnight && localHours+h < 12:
		cal = cal.AddDate(0, 0, 1)
	case ev == Noon && localHours+h > 24:
		cal = cal.AddDate(0, 0, -1)
	}

	cal = cal.Add(time.Duration(h)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(int64(rest*1e9)))

	return cal.In(c.loc.TimeZone()), true
}
