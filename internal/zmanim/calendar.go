// Package zmanim computes halachic times of day on top of the astronomical
// calendar. Times are proportional ("shaos zmaniyos"): the day from a start
// to an end event is split into twelve equal hours.
package zmanim

import (
	"time"

	"github.com/zapponejosh/zmanim-api/internal/astro"
	"github.com/zapponejosh/zmanim-api/internal/calendar"
	"github.com/zapponejosh/zmanim-api/internal/solar"
)

// Options are the customs a Calendar is computed with.
type Options struct {
	// UseAstronomicalChatzos makes Chatzos the sun's transit rather than
	// the midpoint of sunrise and sunset.
	UseAstronomicalChatzos bool

	// UseAstronomicalChatzosForOtherZmanim splits the morning and the
	// afternoon at Chatzos, six hours each, instead of dividing the whole
	// day by twelve.
	UseAstronomicalChatzosForOtherZmanim bool

	CandleLightingOffset    time.Duration
	AteretTorahSunsetOffset time.Duration
}

// DefaultOptions returns the usual customs: astronomical chatzos, a
// twelve hour day, candles 18 minutes before sunset.
func DefaultOptions() Options {
	return Options{
		UseAstronomicalChatzos:  true,
		CandleLightingOffset:    18 * time.Minute,
		AteretTorahSunsetOffset: 40 * time.Minute,
	}
}

// Calendar computes zmanim for one civil date at one location.
type Calendar struct {
	astro astro.Calendar
	opts  Options
}

// New returns a zmanim calendar over ac.
func New(ac astro.Calendar, opts Options) Calendar {
	return Calendar{astro: ac, opts: opts}
}

// Astro returns the underlying astronomical calendar.
func (c Calendar) Astro() astro.Calendar { return c.astro }

func (c Calendar) Options() Options { return c.opts }

// HebrewDate returns the Hebrew date of the calendar's civil date.
func (c Calendar) HebrewDate() (calendar.Date, error) {
	return calendar.FromGregorian(c.astro.Date())
}

// ============================================================================
// Proportional hours
// ============================================================================

// at is an instant that may be absent.
type at struct {
	t  time.Time
	ok bool
}

func of(t time.Time, ok bool) at { return at{t, ok} }

func scale(d time.Duration, hours float64) time.Duration {
	return time.Duration(float64(d) * hours)
}

// ShaahZmanisBasedZman returns start plus hours twelfths of the day from
// start to end.
func ShaahZmanisBasedZman(start, end time.Time, hours float64) time.Time {
	return start.Add(scale(astro.TemporalHour(start, end), hours))
}

// HalfDayBasedZman measures hours in sixths of the half day from start to
// end. Negative hours count back from end.
func HalfDayBasedZman(start, end time.Time, hours float64) time.Time {
	hour := end.Sub(start) / 6
	if hours >= 0 {
		return start.Add(scale(hour, hours))
	}
	return end.Add(scale(hour, hours))
}

// morning returns a zman hours into the day that starts at start. When
// chatzos splits the day, the morning half runs from start to chatzos.
func (c Calendar) morning(start, end at, hours float64, synchronous bool) (time.Time, bool) {
	if !start.ok {
		return time.Time{}, false
	}
	if c.opts.UseAstronomicalChatzosForOtherZmanim && synchronous {
		chatzos, ok := c.Chatzos()
		if !ok {
			return time.Time{}, false
		}
		return HalfDayBasedZman(start.t, chatzos, hours), true
	}
	if !end.ok {
		return time.Time{}, false
	}
	return ShaahZmanisBasedZman(start.t, end.t, hours), true
}

// afternoon returns a zman hours into the day that ends at end. When
// chatzos splits the day, hours-6 is measured from chatzos to end.
func (c Calendar) afternoon(start, end at, hours float64, synchronous bool) (time.Time, bool) {
	if !end.ok {
		return time.Time{}, false
	}
	if c.opts.UseAstronomicalChatzosForOtherZmanim && synchronous {
		chatzos, ok := c.Chatzos()
		if !ok {
			return time.Time{}, false
		}
		return HalfDayBasedZman(chatzos, end.t, hours-6), true
	}
	if !start.ok {
		return time.Time{}, false
	}
	return ShaahZmanisBasedZman(start.t, end.t, hours), true
}

// SofZmanShma is three hours into the day from start to end.
func (c Calendar) SofZmanShma(start, end time.Time, synchronous bool) (time.Time, bool) {
	return c.morning(of(start, true), of(end, true), 3, synchronous)
}

// SofZmanTfila is four hours into the day from start to end.
func (c Calendar) SofZmanTfila(start, end time.Time, synchronous bool) (time.Time, bool) {
	return c.morning(of(start, true), of(end, true), 4, synchronous)
}

func (c Calendar) sunrise() at { return of(c.astro.Sunrise()) }
func (c Calendar) sunset() at  { return of(c.astro.Sunset()) }

// ShaahZmanisGRA is a twelfth of the day from sunrise to sunset.
func (c Calendar) ShaahZmanisGRA() (time.Duration, bool) {
	rise, set := c.sunrise(), c.sunset()
	if !rise.ok || !set.ok {
		return 0, false
	}
	return astro.TemporalHour(rise.t, set.t), true
}

// ShaahZmanisMGA is a twelfth of the day from Alos72 to Tzais72.
func (c Calendar) ShaahZmanisMGA() (time.Duration, bool) {
	alos, tzais := c.alos72(), c.tzais72()
	if !alos.ok || !tzais.ok {
		return 0, false
	}
	return astro.TemporalHour(alos.t, tzais.t), true
}

// ShaahZmanisByDegrees is a twelfth of the day from the sun being degrees
// below the horizon in the morning until the same depression at night.
func (c Calendar) ShaahZmanisByDegrees(degrees float64) (time.Duration, bool) {
	start, end := c.alosByDegrees(degrees), c.tzaisByDegrees(degrees)
	if !start.ok || !end.ok {
		return 0, false
	}
	return astro.TemporalHour(start.t, end.t), true
}

// PercentOfShaahZmanisFromDegrees returns how many sea level shaos
// zmaniyos separate sunrise (or sunset) from the sun being degrees below
// the horizon.
func (c Calendar) PercentOfShaahZmanisFromDegrees(degrees float64, sunset bool) (float64, bool) {
	rise, ok := c.astro.SeaLevelSunrise()
	if !ok {
		return 0, false
	}
	set, ok := c.astro.SeaLevelSunset()
	if !ok {
		return 0, false
	}
	var twilight at
	if sunset {
		twilight = c.tzaisByDegrees(degrees)
	} else {
		twilight = c.alosByDegrees(degrees)
	}
	if !twilight.ok {
		return 0, false
	}

	hour := float64(set.Sub(rise).Milliseconds()) / 12
	var gap time.Duration
	if sunset {
		gap = twilight.t.Sub(set)
	} else {
		gap = rise.Sub(twilight.t)
	}
	return float64(gap.Milliseconds()) / hour, true
}

// ============================================================================
// Dawn and dusk
// ============================================================================

func (c Calendar) alosByDegrees(degrees float64) at {
	return of(c.astro.SunriseOffsetByDegrees(solar.GeometricZenith + degrees))
}

func (c Calendar) tzaisByDegrees(degrees float64) at {
	return of(c.astro.SunsetOffsetByDegrees(solar.GeometricZenith + degrees))
}

func offset(a at, d time.Duration) at {
	if !a.ok {
		return a
	}
	return at{a.t.Add(d), true}
}

func (c Calendar) alos72() at  { return offset(c.sunrise(), -72*time.Minute) }
func (c Calendar) tzais72() at { return offset(c.sunset(), 72*time.Minute) }

// AlosHashachar is dawn, when the sun is 16.1° below the horizon.
func (c Calendar) AlosHashachar() (time.Time, bool) { return unwrap(c.alosByDegrees(16.1)) }

// Alos72 is 72 fixed minutes before sunrise.
func (c Calendar) Alos72() (time.Time, bool) { return unwrap(c.alos72()) }

// Misheyakir returns the earliest time for tallis and tefillin with the
// sun degrees below the horizon. Common values are 11.5, 11, 10.2, 9.5
// and 7.65.
func (c Calendar) Misheyakir(degrees float64) (time.Time, bool) {
	return unwrap(c.alosByDegrees(degrees))
}

// Tzais is nightfall at three medium stars, the sun 8.5° below the horizon.
func (c Calendar) Tzais() (time.Time, bool) { return unwrap(c.tzaisByDegrees(8.5)) }

// Tzais72 is 72 fixed minutes after sunset.
func (c Calendar) Tzais72() (time.Time, bool) { return unwrap(c.tzais72()) }

// TzaisGeonim returns nightfall with the sun degrees below the horizon.
func (c Calendar) TzaisGeonim(degrees float64) (time.Time, bool) {
	return unwrap(c.tzaisByDegrees(degrees))
}

// TzaisAteretTorah is sunset plus the Ateret Torah offset.
func (c Calendar) TzaisAteretTorah() (time.Time, bool) {
	return unwrap(offset(c.sunset(), c.opts.AteretTorahSunsetOffset))
}

// BainHashmashosRT13Point24Degrees is the start of Rabbeinu Tam's twilight
// with the sun 13.24° below the horizon.
func (c Calendar) BainHashmashosRT13Point24Degrees() (time.Time, bool) {
	return unwrap(c.tzaisByDegrees(13.24))
}

// BainHashmashosRT58Point5Minutes is 58.5 minutes after sunset.
func (c Calendar) BainHashmashosRT58Point5Minutes() (time.Time, bool) {
	return unwrap(offset(c.sunset(), 58*time.Minute+30*time.Second))
}

// CandleLighting is the configured offset before sea level sunset.
func (c Calendar) CandleLighting() (time.Time, bool) {
	return unwrap(offset(of(c.astro.SeaLevelSunset()), -c.opts.CandleLightingOffset))
}

func unwrap(a at) (time.Time, bool) { return a.t, a.ok }

// ============================================================================
// Day zmanim
// ============================================================================

// ChatzosAsHalfDay is the midpoint of sea level sunrise and sunset.
func (c Calendar) ChatzosAsHalfDay() (time.Time, bool) {
	rise, ok := c.astro.SeaLevelSunrise()
	if !ok {
		return time.Time{}, false
	}
	set, ok := c.astro.SeaLevelSunset()
	if !ok {
		return time.Time{}, false
	}
	return astro.SunTransitBetween(rise, set), true
}

// Chatzos is midday: the sun's transit, or the half day midpoint when the
// astronomical option is off and the sun rises and sets.
func (c Calendar) Chatzos() (time.Time, bool) {
	if !c.opts.UseAstronomicalChatzos {
		if t, ok := c.ChatzosAsHalfDay(); ok {
			return t, true
		}
	}
	return c.astro.SunTransit()
}

// ChatzosHalayla is solar midnight following the day.
func (c Calendar) ChatzosHalayla() (time.Time, bool) { return c.astro.SolarMidnight() }

func (c Calendar) SofZmanShmaGRA() (time.Time, bool) {
	return c.morning(c.sunrise(), c.sunset(), 3, true)
}

func (c Calendar) SofZmanShmaMGA() (time.Time, bool) {
	return c.morning(c.alos72(), c.tzais72(), 3, true)
}

// SofZmanShmaMGA16Point1Degrees counts the day from alos to tzais at 16.1°.
func (c Calendar) SofZmanShmaMGA16Point1Degrees() (time.Time, bool) {
	return c.morning(c.alosByDegrees(16.1), c.tzaisByDegrees(16.1), 3, true)
}

func (c Calendar) SofZmanTfilaGRA() (time.Time, bool) {
	return c.morning(c.sunrise(), c.sunset(), 4, true)
}

func (c Calendar) SofZmanTfilaMGA() (time.Time, bool) {
	return c.morning(c.alos72(), c.tzais72(), 4, true)
}

func (c Calendar) MinchaGedola() (time.Time, bool) {
	return c.afternoon(c.sunrise(), c.sunset(), 6.5, true)
}

// MinchaGedola30Minutes is half an hour after Chatzos.
func (c Calendar) MinchaGedola30Minutes() (time.Time, bool) {
	chatzos, ok := c.Chatzos()
	if !ok {
		return time.Time{}, false
	}
	return chatzos.Add(30 * time.Minute), true
}

func (c Calendar) MinchaKetana() (time.Time, bool) {
	return c.afternoon(c.sunrise(), c.sunset(), 9.5, true)
}

func (c Calendar) SamuchLeMinchaKetana() (time.Time, bool) {
	return c.afternoon(c.sunrise(), c.sunset(), 9, true)
}

func (c Calendar) PlagHamincha() (time.Time, bool) {
	return c.afternoon(c.sunrise(), c.sunset(), 10.75, true)
}

// Chametz times only exist on Erev Pesach.

func (c Calendar) isErevPesach() bool {
	d, err := c.HebrewDate()
	return err == nil && d.Month() == calendar.Nissan && d.Day() == 14
}

func (c Calendar) SofZmanAchilasChametzGRA() (time.Time, bool) {
	if !c.isErevPesach() {
		return time.Time{}, false
	}
	return c.SofZmanTfilaGRA()
}

func (c Calendar) SofZmanAchilasChametzMGA() (time.Time, bool) {
	if !c.isErevPesach() {
		return time.Time{}, false
	}
	return c.SofZmanTfilaMGA()
}

// SofZmanBiurChametzGRA is five hours into the day.
func (c Calendar) SofZmanBiurChametzGRA() (time.Time, bool) {
	if !c.isErevPesach() {
		return time.Time{}, false
	}
	return c.morning(c.sunrise(), c.sunset(), 5, false)
}

func (c Calendar) SofZmanBiurChametzMGA() (time.Time, bool) {
	if !c.isErevPesach() {
		return time.Time{}, false
	}
	return c.morning(c.alos72(), c.tzais72(), 5, false)
}
