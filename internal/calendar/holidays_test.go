package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calendarFor(t *testing.T, date time.Time, inIsrael bool) Calendar {
	t.Helper()
	d, err := FromGregorian(date)
	require.NoError(t, err)
	return Calendar{Date: d, InIsrael: inIsrael, UseModernHolidays: true}
}

func TestHoliday(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		inIsrael bool
		want     Holiday
		ok       bool
	}{
		{"first day of pesach", civil(2024, 4, 23), false, Pesach, true},
		{"second day of pesach diaspora", civil(2024, 4, 24), false, Pesach, true},
		{"second day of pesach israel", civil(2024, 4, 24), true, CholHamoedPesach, true},
		{"eighth day of pesach diaspora", civil(2024, 4, 30), false, Pesach, true},
		{"isru chag israel", civil(2024, 4, 30), true, IsruChag, true},
		{"yom kippur on shabbos", civil(2024, 10, 12), false, YomKippur, true},
		{"seventeenth of tammuz", civil(2024, 7, 23), false, SeventeenthOfTammuz, true},
		{"eighth of av", civil(2025, 8, 2), false, 0, false},
		{"tisha bav on sunday", civil(2025, 8, 3), false, TishahBav, true},
		{"fast of esther", civil(2025, 3, 13), false, FastOfEsther, true},
		{"fast of esther moved to thursday", civil(2014, 3, 13), false, FastOfEsther, true},
		{"purim in leap year", civil(2024, 3, 24), false, Purim, true},
		{"shushan purim", civil(2024, 3, 25), false, ShushanPurim, true},
		{"first day of chanukah", civil(2024, 12, 26), false, Chanukah, true},
		{"yom hazikaron moved to monday", civil(2024, 5, 13), true, YomHazikaron, true},
		{"yom haatzmaut moved to tuesday", civil(2024, 5, 14), true, YomHaatzmaut, true},
		{"yom hashoah moved to monday", civil(2024, 5, 6), true, YomHaShoah, true},
		{"gedalyah on shabbos is not a fast", civil(2024, 10, 5), false, 0, false},
		{"postponed fast of gedalyah", civil(2024, 10, 6), false, FastOfGedalyah, true},
		{"lag bomer", civil(2024, 5, 26), false, LagBomer, true},
		{"shemini atzeres", civil(2024, 10, 24), false, SheminiAtzeres, true},
		{"simchas torah diaspora", civil(2024, 10, 25), false, SimchasTorah, true},
		{"isru chag after succos israel", civil(2024, 10, 25), true, IsruChag, true},
		{"hoshana rabbah", civil(2024, 10, 23), false, HoshanaRabbah, true},
		{"plain day", civil(2024, 6, 21), false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := calendarFor(t, tt.date, tt.inIsrael)
			got, ok := c.Holiday()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got, "got %s", got)
			}
		})
	}
}

func TestModernHolidaysAreOptIn(t *testing.T) {
	c := calendarFor(t, civil(2024, 5, 14), true)
	c.UseModernHolidays = false
	_, ok := c.Holiday()
	assert.False(t, ok)
}

func TestFastsAvoidShabbos(t *testing.T) {
	start := MustFromHebrew(5780, Tishrei, 1)
	for i := 0; i < 19*365; i++ {
		c := Calendar{Date: start.AddDays(i)}
		if c.IsTaanis() && c.Weekday() == time.Saturday {
			require.True(t, c.IsYomKippur(), "fast on Shabbos %s", c)
		}
	}
}

func TestDerivedPredicates(t *testing.T) {
	yk := calendarFor(t, civil(2024, 10, 12), false)
	assert.True(t, yk.IsYomTov())
	assert.True(t, yk.IsTaanis())
	assert.True(t, yk.IsAssurBemelacha())
	assert.True(t, yk.IsAseresYemeiTeshuva())

	erevPesach := calendarFor(t, civil(2024, 4, 22), false)
	assert.True(t, erevPesach.IsErevYomTov())
	assert.False(t, erevPesach.IsYomTov())
	assert.True(t, erevPesach.HasCandleLighting())
	assert.True(t, erevPesach.IsTaanisBechoros())

	// Erev Pesach 5785 is Shabbos, so the firstborn fast on Thursday.
	assert.True(t, calendarFor(t, civil(2025, 4, 10), false).IsTaanisBechoros())

	firstDay := calendarFor(t, civil(2024, 4, 23), false)
	assert.True(t, firstDay.IsErevYomTovSheni())
	assert.True(t, firstDay.HasCandleLighting())
	assert.False(t, calendarFor(t, civil(2024, 4, 23), true).IsErevYomTovSheni())

	cholHamoed := calendarFor(t, civil(2024, 4, 25), false)
	assert.True(t, cholHamoed.IsCholHamoed())
	assert.True(t, cholHamoed.IsPesach())
	assert.True(t, cholHamoed.IsYomTov())
	assert.False(t, cholHamoed.IsAssurBemelacha())

	hoshanaRabbah := calendarFor(t, civil(2024, 10, 23), false)
	assert.True(t, hoshanaRabbah.IsErevYomTov())
	assert.True(t, hoshanaRabbah.IsYomTov())
	assert.True(t, hoshanaRabbah.IsCholHamoedSuccos())
	assert.True(t, hoshanaRabbah.IsSuccos())

	isruChag := calendarFor(t, civil(2024, 10, 25), true)
	assert.False(t, isruChag.IsYomTov())
	assert.True(t, isruChag.IsIsruChag())

	friday := calendarFor(t, civil(2024, 6, 21), false)
	assert.True(t, friday.IsTomorrowShabbosOrYomTov())
	assert.False(t, friday.IsAssurBemelacha())
	assert.True(t, friday.Tomorrow().IsAssurBemelacha())
}

func TestRoshChodesh(t *testing.T) {
	assert.True(t, calendarFor(t, civil(2024, 3, 10), false).IsRoshChodesh())  // 30 Adar I
	assert.True(t, calendarFor(t, civil(2024, 3, 11), false).IsRoshChodesh())  // 1 Adar II
	assert.False(t, calendarFor(t, civil(2024, 10, 3), false).IsRoshChodesh()) // Rosh Hashana

	erev := Calendar{Date: MustFromHebrew(5784, Sivan, 29)}
	assert.True(t, erev.IsErevRoshChodesh())
	assert.False(t, Calendar{Date: MustFromHebrew(5784, Elul, 29)}.IsErevRoshChodesh())
}

func TestChanukahAndOmer(t *testing.T) {
	first := calendarFor(t, civil(2024, 12, 26), false)
	n, ok := first.DayOfChanukah()
	require.True(t, ok)
	assert.Equal(t, 1, n)

	// 5785 has a full Kislev, so Chanukah ends on 2 Teves.
	last := calendarFor(t, civil(2025, 1, 2), false)
	n, ok = last.DayOfChanukah()
	require.True(t, ok)
	assert.Equal(t, 8, n)
	_, ok = last.Tomorrow().DayOfChanukah()
	assert.False(t, ok)

	// 5784 has a short Kislev, so the eighth day is 3 Teves.
	n, ok = Calendar{Date: MustFromHebrew(5784, Teves, 3)}.DayOfChanukah()
	require.True(t, ok)
	assert.Equal(t, 8, n)

	omer, ok := calendarFor(t, civil(2024, 5, 26), false).DayOfOmer()
	require.True(t, ok)
	assert.Equal(t, 33, omer)

	omer, ok = Calendar{Date: MustFromHebrew(5784, Sivan, 5)}.DayOfOmer()
	require.True(t, ok)
	assert.Equal(t, 49, omer)

	_, ok = Calendar{Date: MustFromHebrew(5784, Sivan, 6)}.DayOfOmer()
	assert.False(t, ok)
}

func TestPurimInWalledCity(t *testing.T) {
	purim := calendarFor(t, civil(2024, 3, 24), false)
	shushan := calendarFor(t, civil(2024, 3, 25), false)
	assert.True(t, purim.IsPurim())
	assert.False(t, shushan.IsPurim())

	purim.MukafChoma = true
	shushan.MukafChoma = true
	assert.False(t, purim.IsPurim())
	assert.True(t, shushan.IsPurim())

	katan, ok := Calendar{Date: MustFromHebrew(5784, Adar, 14)}.Holiday()
	require.True(t, ok)
	assert.Equal(t, PurimKatan, katan)
}

func TestMinorObservances(t *testing.T) {
	assert.True(t, calendarFor(t, civil(2009, 4, 8), false).IsBirkasHachamah())
	assert.False(t, calendarFor(t, civil(2009, 4, 9), false).IsBirkasHachamah())

	// Monday 10 Cheshvan 5785.
	assert.True(t, calendarFor(t, civil(2024, 11, 11), false).IsBehab())
	assert.False(t, calendarFor(t, civil(2024, 11, 12), false).IsBehab())

	// 29 Cheshvan 5785 is Shabbos, so Yom Kippur Katan moves to Thursday the 27th.
	assert.True(t, Calendar{Date: MustFromHebrew(5785, Cheshvan, 27)}.IsYomKippurKatan())
	assert.False(t, Calendar{Date: MustFromHebrew(5785, Cheshvan, 29)}.IsYomKippurKatan())

	shabbos := calendarFor(t, civil(2024, 6, 29), false) // 23 Sivan
	assert.True(t, shabbos.IsShabbosMevorchim())
	assert.False(t, shabbos.IsMacharChodesh())
}
