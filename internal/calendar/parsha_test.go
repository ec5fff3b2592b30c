package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsha(t *testing.T) {
	tests := []struct {
		date     time.Time
		inIsrael bool
		want     Parsha
		ok       bool
	}{
		{civil(2024, 6, 22), false, Behaaloscha, true},
		{civil(2024, 6, 22), true, Behaaloscha, true},
		{civil(2024, 3, 23), false, Vayikra, true},
		{civil(2024, 6, 29), false, Shlach, true},
		{civil(2011, 4, 16), false, AchreiMos, true},
		{civil(2019, 7, 13), false, ChukasBalak, true},
		{civil(2019, 7, 13), true, Balak, true},
		{civil(2019, 6, 8), false, Bamidbar, true},
		{civil(2019, 6, 8), true, Nasso, true},
		{civil(2015, 5, 16), false, BeharBechukosai, true},
		{civil(2015, 5, 16), true, Bechukosai, true},
		{civil(2025, 2, 8), false, Beshalach, true},
		{civil(2024, 9, 28), false, NitzavimVayeilech, true},
		{civil(2024, 10, 5), false, HaAzinu, true},
		{civil(2023, 10, 14), false, Bereshis, true},
		{civil(2024, 10, 19), false, 0, false}, // chol hamoed
		{civil(2024, 4, 27), false, 0, false},  // chol hamoed
		{civil(2024, 6, 21), false, 0, false},  // Friday
	}

	for _, tt := range tests {
		c := calendarFor(t, tt.date, tt.inIsrael)
		got, ok := c.Parsha()
		assert.Equal(t, tt.ok, ok, "%s israel=%v", FormatDate(tt.date), tt.inIsrael)
		if tt.ok {
			assert.Equal(t, tt.want, got, "%s israel=%v: got %s", FormatDate(tt.date), tt.inIsrael, got)
		}
	}
}

func TestParshaNeverRepeatsWithinYear(t *testing.T) {
	for _, inIsrael := range []bool{false, true} {
		for year := 5760; year < 5800; year++ {
			seen := map[Parsha]bool{}
			c := Calendar{Date: MustFromHebrew(year, Tishrei, 1), InIsrael: inIsrael}
			for c.Year() == year {
				if p, ok := c.Parsha(); ok {
					require.False(t, seen[p], "%s read twice in %d", p, year)
					seen[p] = true
				}
				c = c.Tomorrow()
			}
		}
	}
}

func TestUpcomingParsha(t *testing.T) {
	c := calendarFor(t, civil(2024, 10, 16), false)
	p, on := c.UpcomingParsha()
	assert.Equal(t, Bereshis, p)
	assert.Equal(t, civil(2024, 10, 26), on.Gregorian())

	// On Shabbos itself the next week's reading is returned.
	c = calendarFor(t, civil(2024, 6, 22), false)
	p, on = c.UpcomingParsha()
	assert.Equal(t, Shlach, p)
	assert.Equal(t, civil(2024, 6, 29), on.Gregorian())
}

func TestSpecialShabbos(t *testing.T) {
	tests := []struct {
		date time.Time
		want Parsha
	}{
		{civil(2024, 3, 23), Zachor}, // 13 Adar II
		{civil(2025, 2, 8), Shira},
		{civil(2024, 10, 5), Shuva},
	}
	for _, tt := range tests {
		got, ok := calendarFor(t, tt.date, false).SpecialShabbos()
		require.True(t, ok, FormatDate(tt.date))
		assert.Equal(t, tt.want, got, FormatDate(tt.date))
	}

	_, ok := calendarFor(t, civil(2024, 6, 22), false).SpecialShabbos()
	assert.False(t, ok)
	_, ok = calendarFor(t, civil(2024, 3, 22), false).SpecialShabbos()
	assert.False(t, ok)
}
