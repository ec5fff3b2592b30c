// Package solar implements the NOAA solar position algorithm, an
// implementation of the formulas in Jean Meeus' Astronomical Algorithms.
//
// Event functions return fractional hours after 00:00 UTC of the given date.
// Binding those hours to an instant in a civil timezone is left to the
// astro package.
package solar

import (
	"math"
	"time"

	"github.com/soniakeys/unit"

	"github.com/zapponejosh/zmanim-api/internal/geo"
)

// Zeniths in degrees.
const (
	GeometricZenith    = 90.0
	CivilZenith        = 96.0
	NauticalZenith     = 102.0
	AstronomicalZenith = 108.0
)

const (
	// J2000 is the Julian day of 2000-01-01 12:00 TT.
	J2000 = 2451545.0

	// JulianDaysPerCentury is the length of a Julian century.
	JulianDaysPerCentury = 36525.0

	// EarthRadius is the polar radius in kilometres used for the horizon dip.
	EarthRadius = 6356.9

	// SolarRadius is the apparent semi-diameter of the sun in degrees.
	SolarRadius = 16 / 60.0

	// Refraction is the mean atmospheric refraction at the horizon in degrees.
	Refraction = 34 / 60.0
)

type event int

const (
	sunrise event = iota
	sunset
	noon
	midnight
)

func rad(deg float64) float64 { return unit.AngleFromDeg(deg).Rad() }
func deg(rad float64) float64 { return unit.Angle(rad).Deg() }

// JulianDay returns the Julian day at 00:00 UTC of the proleptic Gregorian
// date year-month-day.
func JulianDay(year int, month time.Month, day int) float64 {
	m := int(month)
	if m <= 2 {
		year--
		m += 12
	}
	a := year / 100
	b := 2 - a + a/4
	return math.Floor(365.25*float64(year+4716)) + math.Floor(30.6001*float64(m+1)) + float64(day) + float64(b) - 1524.5
}

// JulianCenturies converts a Julian day to centuries since J2000.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000) / JulianDaysPerCentury
}

// ElevationAdjustment returns the dip of the horizon in degrees for an
// observer elevation metres above sea level.
func ElevationAdjustment(elevation float64) float64 {
	return deg(math.Acos(EarthRadius / (EarthRadius + elevation/1000)))
}

// AdjustZenith adds refraction, the solar radius and the horizon dip to the
// geometric zenith. Any other zenith is returned unchanged.
func AdjustZenith(zenith, elevation float64) float64 {
	if zenith != GeometricZenith {
		return zenith
	}
	return zenith + SolarRadius + Refraction + ElevationAdjustment(elevation)
}

func geometricMeanLongitude(t float64) float64 {
	l := math.Mod(280.46646+t*(36000.76983+0.0003032*t), 360)
	if l < 0 {
		l += 360
	}
	return l
}

func geometricMeanAnomaly(t float64) float64 {
	return 357.52911 + t*(35999.05029-0.0001537*t)
}

func eccentricity(t float64) float64 {
	return 0.016708634 - t*(0.000042037+0.0000001267*t)
}

func equationOfCenter(t float64) float64 {
	m := rad(geometricMeanAnomaly(t))
	return math.Sin(m)*(1.914602-t*(0.004817+0.000014*t)) +
		math.Sin(2*m)*(0.019993-0.000101*t) +
		math.Sin(3*m)*0.000289
}

func trueLongitude(t float64) float64 {
	return geometricMeanLongitude(t) + equationOfCenter(t)
}

func apparentLongitude(t float64) float64 {
	omega := 125.04 - 1934.136*t
	return trueLongitude(t) - 0.00569 - 0.00478*math.Sin(rad(omega))
}

func meanObliquity(t float64) float64 {
	seconds := 21.448 - t*(46.8150+t*(0.00059-t*0.001813))
	return 23 + (26+seconds/60)/60
}

func obliquityCorrection(t float64) float64 {
	omega := 125.04 - 1934.136*t
	return meanObliquity(t) + 0.00256*math.Cos(rad(omega))
}

// Declination returns the sun's declination in degrees at t Julian
// centuries.
func Declination(t float64) float64 {
	return deg(math.Asin(math.Sin(rad(obliquityCorrection(t))) * math.Sin(rad(apparentLongitude(t)))))
}

// EquationOfTime returns true solar time minus mean solar time in minutes
// at t Julian centuries.
func EquationOfTime(t float64) float64 {
	epsilon := obliquityCorrection(t)
	l0 := rad(geometricMeanLongitude(t))
	e := eccentricity(t)
	m := rad(geometricMeanAnomaly(t))

	y := math.Tan(rad(epsilon) / 2)
	y *= y

	v := y*math.Sin(2*l0) -
		2*e*math.Sin(m) +
		4*e*y*math.Sin(m)*math.Cos(2*l0) -
		0.5*y*y*math.Sin(4*l0) -
		1.25*e*e*math.Sin(2*m)

	return deg(v) * 4
}

// hourAngle returns the hour angle in radians at which the sun reaches
// zenith, or NaN if it never does on that day.
func hourAngle(latitude, declination, zenith float64, ev event) float64 {
	lat := rad(latitude)
	dec := rad(declination)
	x := math.Cos(rad(zenith))/(math.Cos(lat)*math.Cos(dec)) - math.Tan(lat)*math.Tan(dec)
	if x < -1 || x > 1 {
		return math.NaN()
	}
	h := math.Acos(x)
	if ev == sunset {
		return -h
	}
	return h
}

// noonMidnightUTC returns minutes after 00:00 UTC. Longitude is positive
// west, following NOAA.
func noonMidnightUTC(jd, longitude float64, ev event) float64 {
	base := 720.0
	if ev == midnight {
		jd += 0.5
		base = 1440
	}

	eot := EquationOfTime(JulianCenturies(jd + longitude/360))
	first := longitude*4 - eot

	eot = EquationOfTime(JulianCenturies(jd + first/1440))
	return base + longitude*4 - eot
}

// riseSetUTC returns minutes after 00:00 UTC. Longitude is positive west.
func riseSetUTC(jd, latitude, longitude, zenith float64, ev event) float64 {
	noonMinutes := noonMidnightUTC(jd, longitude, noon)
	t := JulianCenturies(jd + noonMinutes/1440)

	h := hourAngle(latitude, Declination(t), zenith, ev)
	estimate := 720 + 4*(longitude-deg(h)) - EquationOfTime(t)

	t = JulianCenturies(jd + estimate/1440)
	h = hourAngle(latitude, Declination(t), zenith, ev)
	return 720 + 4*(longitude-deg(h)) - EquationOfTime(t)
}

func minutesToHours(minutes float64) float64 {
	h := minutes / 60
	if h > 0 {
		return math.Mod(h, 24)
	}
	return math.Mod(h, 24) + 24
}

func julianDayOf(date time.Time) float64 {
	y, m, d := date.Date()
	return JulianDay(y, m, d)
}

// UTCSunrise returns the hours after 00:00 UTC at which the sun reaches
// zenith in the morning of date. The location's elevation is used only when
// adjustForElevation is set and zenith is GeometricZenith. ok is false when
// the sun does not reach zenith that day.
func UTCSunrise(date time.Time, loc geo.Location, zenith float64, adjustForElevation bool) (hours float64, ok bool) {
	return utcRiseSet(date, loc, zenith, adjustForElevation, sunrise)
}

// UTCSunset is the evening counterpart of UTCSunrise.
func UTCSunset(date time.Time, loc geo.Location, zenith float64, adjustForElevation bool) (hours float64, ok bool) {
	return utcRiseSet(date, loc, zenith, adjustForElevation, sunset)
}

func utcRiseSet(date time.Time, loc geo.Location, zenith float64, adjustForElevation bool, ev event) (float64, bool) {
	elevation := 0.0
	if adjustForElevation {
		elevation = loc.Elevation()
	}
	z := AdjustZenith(zenith, elevation)

	minutes := riseSetUTC(julianDayOf(date), loc.Latitude(), -loc.Longitude(), z, ev)
	hours := minutesToHours(minutes)
	if math.IsNaN(hours) {
		return 0, false
	}
	return hours, true
}

// UTCNoon returns the hours after 00:00 UTC of the sun's transit on date.
func UTCNoon(date time.Time, loc geo.Location) float64 {
	return minutesToHours(noonMidnightUTC(julianDayOf(date), -loc.Longitude(), noon))
}

// UTCMidnight returns the hours after 00:00 UTC of solar midnight following
// date's transit.
func UTCMidnight(date time.Time, loc geo.Location) float64 {
	return minutesToHours(noonMidnightUTC(julianDayOf(date), -loc.Longitude(), midnight))
}

// Elevation returns the geometric elevation of the sun in degrees at
// instant t. No refraction is applied.
func Elevation(t time.Time, loc geo.Location) float64 {
	elevation, _ := elevationAzimuth(t, loc)
	return elevation
}

// Azimuth returns the sun's azimuth in degrees east of north at instant t.
func Azimuth(t time.Time, loc geo.Location) float64 {
	_, azimuth := elevationAzimuth(t, loc)
	return azimuth
}

func clamp(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

func elevationAzimuth(t time.Time, loc geo.Location) (float64, float64) {
	utc := t.UTC()
	ms := float64(utc.Nanosecond()/int(time.Millisecond)) / 1000
	dayFraction := (float64(utc.Hour()) + (float64(utc.Minute())+(float64(utc.Second())+ms)/60)/60) / 24

	jc := JulianCenturies(julianDayOf(utc) + dayFraction)
	eot := EquationOfTime(jc)
	dec := rad(Declination(jc))
	lat := rad(loc.Latitude())

	trueSolarTime := math.Mod(dayFraction+eot/1440+loc.Longitude()/360+2, 1)
	h := trueSolarTime*2*math.Pi - math.Pi

	cosZenith := clamp(math.Sin(lat)*math.Sin(dec) + math.Cos(lat)*math.Cos(dec)*math.Cos(h))
	zenith := deg(math.Acos(cosZenith))

	var azimuth float64
	denominator := math.Cos(lat) * math.Sin(rad(zenith))
	if math.Abs(denominator) > 0.001 {
		r := clamp((math.Sin(lat)*math.Cos(rad(zenith)) - math.Sin(dec)) / denominator)
		sign := 1.0
		if h > 0 {
			sign = -1
		}
		azimuth = 180 - deg(math.Acos(r))*sign
	} else if loc.Latitude() > 0 {
		azimuth = 180
	}

	return 90 - zenith, math.Mod(azimuth, 360)
}
