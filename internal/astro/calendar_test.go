package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/zmanim-api/internal/geo"
)

func zone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func parse(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339Nano, s)
	require.NoError(t, err)
	return v
}

type eventCase struct {
	name string
	fn   func(Calendar) (time.Time, bool)
	want string
}

func checkEvents(t *testing.T, cal Calendar, wantOffset int, cases []eventCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.fn(cal)
			require.True(t, ok)
			assert.WithinDuration(t, parse(t, tc.want), got, time.Millisecond)

			_, offset := got.Zone()
			assert.Equal(t, wantOffset, offset, "result must carry the location's offset")
		})
	}
}

func TestJerusalemEvents(t *testing.T) {
	loc := geo.MustNew("Jerusalem", 31.778, 35.2354, 754, zone(t, "Asia/Jerusalem"))
	cal := New(time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), loc)

	checkEvents(t, cal, 3*3600, []eventCase{
		{"sunrise", Calendar.Sunrise, "2024-06-21T05:29:23.543887+03:00"},
		{"sunset", Calendar.Sunset, "2024-06-21T19:52:31.507519+03:00"},
		{"sea level sunrise", Calendar.SeaLevelSunrise, "2024-06-21T05:34:07.893732+03:00"},
		{"sea level sunset", Calendar.SeaLevelSunset, "2024-06-21T19:47:47.169724+03:00"},
		{"transit", Calendar.SunTransit, "2024-06-21T12:40:51.216119+03:00"},
		{"solar midnight", Calendar.SolarMidnight, "2024-06-22T00:40:57.737596+03:00"},
		{"civil twilight", Calendar.BeginCivilTwilight, "2024-06-21T05:05:55.939723+03:00"},
		{"astronomical twilight end", Calendar.EndAstronomicalTwilight, "2024-06-21T21:27:41.314191+03:00"},
	})
}

func TestNewYorkEvents(t *testing.T) {
	loc := geo.MustNew("New York", 40.7128, -74.006, 0, zone(t, "America/New_York"))
	cal := New(time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), loc)

	// Sunset falls on the next UTC day.
	checkEvents(t, cal, -4*3600, []eventCase{
		{"sunrise", Calendar.Sunrise, "2024-06-21T05:25:07.156013-04:00"},
		{"sunset", Calendar.Sunset, "2024-06-21T20:30:51.112239-04:00"},
		{"transit", Calendar.SunTransit, "2024-06-21T12:57:53.111145-04:00"},
		{"solar midnight", Calendar.SolarMidnight, "2024-06-22T00:57:59.626227-04:00"},
	})
}

func TestAntimeridian(t *testing.T) {
	t.Run("auckland", func(t *testing.T) {
		loc := geo.MustNew("", -40, 179.99, 0, zone(t, "Pacific/Auckland"))
		cal := New(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), loc)
		checkEvents(t, cal, 13*3600, []eventCase{
			{"sunrise", Calendar.Sunrise, "2024-01-01T05:34:05.346065+13:00"},
			{"sunset", Calendar.Sunset, "2024-01-01T20:31:58.296348+13:00"},
			{"transit", Calendar.SunTransit, "2024-01-01T13:02:53.767436+13:00"},
		})
	})

	t.Run("kiritimati", func(t *testing.T) {
		loc := geo.MustNew("", 1.87, -157.4, 0, zone(t, "Pacific/Kiritimati"))
		cal := New(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), loc)
		checkEvents(t, cal, 14*3600, []eventCase{
			{"sunrise", Calendar.Sunrise, "2024-03-20T06:33:49.088333+14:00"},
			{"sunset", Calendar.Sunset, "2024-03-20T18:40:19.191271+14:00"},
			{"transit", Calendar.SunTransit, "2024-03-20T12:37:12.224722+14:00"},
			{"solar midnight", Calendar.SolarMidnight, "2024-03-21T00:37:03.362445+14:00"},
		})
	})
}

func TestPolarEventsAreAbsent(t *testing.T) {
	loc := geo.MustNew("Longyearbyen", 78, 15, 0, zone(t, "Europe/Oslo"))
	cal := New(time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), loc)

	_, ok := cal.Sunrise()
	assert.False(t, ok)
	_, ok = cal.Sunset()
	assert.False(t, ok)
	_, ok = cal.TemporalHour()
	assert.False(t, ok)

	// The sun still transits.
	_, ok = cal.SunTransit()
	assert.True(t, ok)
}

func TestTemporalHour(t *testing.T) {
	loc := geo.MustNew("Jerusalem", 31.778, 35.2354, 754, zone(t, "Asia/Jerusalem"))
	cal := New(time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), loc)

	got, ok := cal.TemporalHour()
	require.True(t, ok)
	want := time.Hour + 11*time.Minute + 8*time.Second + 273*time.Millisecond
	assert.InDelta(t, float64(want), float64(got), float64(time.Millisecond))

	rise, _ := cal.SeaLevelSunrise()
	set, _ := cal.SeaLevelSunset()
	mid := SunTransitBetween(rise, set)
	assert.Equal(t, rise.Add(6*TemporalHour(rise, set)), mid)
}

func TestLocalMeanTime(t *testing.T) {
	loc := geo.MustNew("Jerusalem", 31.778, 35.2354, 754, zone(t, "Asia/Jerusalem"))
	cal := New(time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), loc)

	noon, ok := cal.LocalMeanTime(12)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 6, 21, 9, 39, 3, 504000000, time.UTC), noon.UTC())

	_, ok = cal.LocalMeanTime(24)
	assert.False(t, ok)
	_, ok = cal.LocalMeanTime(-0.5)
	assert.False(t, ok)
}

func TestNewUsesCivilDateOfInput(t *testing.T) {
	tz := zone(t, "Asia/Jerusalem")
	loc := geo.MustNew("Jerusalem", 31.778, 35.2354, 754, tz)

	// 23:30 in New York is already the next day in Jerusalem, but the
	// calendar follows the date as written.
	ny := zone(t, "America/New_York")
	cal := New(time.Date(2024, 6, 21, 23, 30, 0, 0, ny), loc)
	assert.Equal(t, time.Date(2024, 6, 21, 0, 0, 0, 0, tz), cal.Date())
}
