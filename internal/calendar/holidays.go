package calendar

import "time"

// Calendar is a Hebrew date together with the customs that change which
// holidays fall on it.
type Calendar struct {
	Date

	// InIsrael selects the single-day Yomim Tovim and the Israeli parsha cycle.
	InIsrael bool

	// MukafChoma marks a walled city that keeps Purim on the 15th.
	MukafChoma bool

	// UseModernHolidays enables Yom HaShoah, Yom Hazikaron, Yom Ha'atzmaut
	// and Yom Yerushalayim.
	UseModernHolidays bool
}

// NewCalendar wraps d with the Israel/diaspora choice.
func NewCalendar(d Date, inIsrael bool) Calendar {
	return Calendar{Date: d, InIsrael: inIsrael}
}

// Tomorrow returns the calendar for the following day with the same customs.
func (c Calendar) Tomorrow() Calendar { return c.Plus(1) }

// Plus returns the calendar n days later with the same customs.
func (c Calendar) Plus(n int) Calendar {
	c.Date = c.Date.AddDays(n)
	return c
}

// ============================================================================
// Holiday rules
// ============================================================================

type cond func(c Calendar) bool

type holidayRule struct {
	month    Month
	from, to int
	when     cond
	holiday  Holiday
}

func diaspora(c Calendar) bool    { return !c.InIsrael }
func israel(c Calendar) bool      { return c.InIsrael }
func modern(c Calendar) bool      { return c.UseModernHolidays }
func leap(c Calendar) bool        { return c.IsLeapYear() }
func common(c Calendar) bool      { return !c.IsLeapYear() }
func kislevShort(c Calendar) bool { return c.KislevShort() }

func on(days ...time.Weekday) cond {
	return func(c Calendar) bool {
		wd := c.Weekday()
		for _, d := range days {
			if wd == d {
				return true
			}
		}
		return false
	}
}

func notOn(days ...time.Weekday) cond {
	is := on(days...)
	return func(c Calendar) bool { return !is(c) }
}

func all(conds ...cond) cond {
	return func(c Calendar) bool {
		for _, f := range conds {
			if !f(c) {
				return false
			}
		}
		return true
	}
}

// holidayRules is searched in order; the first matching row wins.
var holidayRules = []holidayRule{
	{Nissan, 14, 14, nil, ErevPesach},
	{Nissan, 15, 15, nil, Pesach},
	{Nissan, 21, 21, nil, Pesach},
	{Nissan, 16, 16, diaspora, Pesach},
	{Nissan, 22, 22, diaspora, Pesach},
	{Nissan, 16, 20, nil, CholHamoedPesach},
	{Nissan, 22, 22, nil, IsruChag},
	{Nissan, 23, 23, diaspora, IsruChag},
	{Nissan, 26, 26, all(modern, on(time.Thursday)), YomHaShoah},
	{Nissan, 28, 28, all(modern, on(time.Monday)), YomHaShoah},
	{Nissan, 27, 27, all(modern, notOn(time.Sunday, time.Friday)), YomHaShoah},

	{Iyar, 4, 4, all(modern, on(time.Tuesday)), YomHazikaron},
	{Iyar, 2, 3, all(modern, on(time.Wednesday)), YomHazikaron},
	{Iyar, 5, 5, all(modern, on(time.Monday)), YomHazikaron},
	{Iyar, 5, 5, all(modern, on(time.Wednesday)), YomHaatzmaut},
	{Iyar, 3, 4, all(modern, on(time.Thursday)), YomHaatzmaut},
	{Iyar, 6, 6, all(modern, on(time.Tuesday)), YomHaatzmaut},
	{Iyar, 14, 14, nil, PesachSheni},
	{Iyar, 18, 18, nil, LagBomer},
	{Iyar, 28, 28, modern, YomYerushalayim},

	{Sivan, 5, 5, nil, ErevShavuos},
	{Sivan, 6, 6, nil, Shavuos},
	{Sivan, 7, 7, diaspora, Shavuos},
	{Sivan, 7, 7, israel, IsruChag},
	{Sivan, 8, 8, diaspora, IsruChag},

	{Tammuz, 17, 17, notOn(time.Saturday), SeventeenthOfTammuz},
	{Tammuz, 18, 18, on(time.Sunday), SeventeenthOfTammuz},

	{Av, 9, 9, notOn(time.Saturday), TishahBav},
	{Av, 10, 10, on(time.Sunday), TishahBav},
	{Av, 15, 15, nil, TuBav},

	{Elul, 29, 29, nil, ErevRoshHashana},

	{Tishrei, 1, 2, nil, RoshHashana},
	{Tishrei, 3, 3, notOn(time.Saturday), FastOfGedalyah},
	{Tishrei, 4, 4, on(time.Sunday), FastOfGedalyah},
	{Tishrei, 9, 9, nil, ErevYomKippur},
	{Tishrei, 10, 10, nil, YomKippur},
	{Tishrei, 14, 14, nil, ErevSuccos},
	{Tishrei, 15, 15, nil, Succos},
	{Tishrei, 16, 16, diaspora, Succos},
	{Tishrei, 16, 20, nil, CholHamoedSuccos},
	{Tishrei, 21, 21, nil, HoshanaRabbah},
	{Tishrei, 22, 22, nil, SheminiAtzeres},
	{Tishrei, 23, 23, diaspora, SimchasTorah},
	{Tishrei, 24, 24, diaspora, IsruChag},
	{Tishrei, 23, 23, israel, IsruChag},

	{Kislev, 25, 30, nil, Chanukah},
	{Teves, 1, 2, nil, Chanukah},
	{Teves, 3, 3, kislevShort, Chanukah},
	{Teves, 10, 10, nil, TenthOfTeves},

	{Shevat, 15, 15, nil, TuBshvat},

	{Adar, 11, 12, all(common, on(time.Thursday)), FastOfEsther},
	{Adar, 13, 13, all(common, notOn(time.Friday, time.Saturday)), FastOfEsther},
	{Adar, 14, 14, common, Purim},
	{Adar, 15, 15, common, ShushanPurim},
	{Adar, 14, 14, leap, PurimKatan},
	{Adar, 15, 15, leap, ShushanPurimKatan},

	{AdarII, 11, 12, on(time.Thursday), FastOfEsther},
	{AdarII, 13, 13, notOn(time.Friday, time.Saturday), FastOfEsther},
	{AdarII, 14, 14, nil, Purim},
	{AdarII, 15, 15, nil, ShushanPurim},
}

// Holiday returns the holiday that falls on the day, if any. Rosh Chodesh,
// Erev Chanukah, Yom Kippur Katan and Behab are never returned here; see
// the dedicated predicates.
func (c Calendar) Holiday() (Holiday, bool) {
	for _, r := range holidayRules {
		if r.month != c.month || c.day < r.from || c.day > r.to {
			continue
		}
		if r.when == nil || r.when(c) {
			return r.holiday, true
		}
	}
	return 0, false
}

func (c Calendar) is(holidays ...Holiday) bool {
	h, ok := c.Holiday()
	if !ok {
		return false
	}
	for _, want := range holidays {
		if h == want {
			return true
		}
	}
	return false
}

// ============================================================================
// Derived predicates
// ============================================================================

// IsYomTov reports whether the day is a holiday other than an erev, a
// fast (Yom Kippur excepted) or Isru Chag.
func (c Calendar) IsYomTov() bool {
	h, ok := c.Holiday()
	if !ok {
		return false
	}
	if c.IsErevYomTov() && h != HoshanaRabbah && h != CholHamoedPesach {
		return false
	}
	if c.IsTaanis() && h != YomKippur {
		return false
	}
	return h != IsruChag
}

func (c Calendar) IsYomTovAssurBemelacha() bool {
	return c.is(Pesach, Shavuos, Succos, SheminiAtzeres, SimchasTorah, RoshHashana, YomKippur)
}

// IsAssurBemelacha reports whether work is forbidden: Shabbos or a full Yom Tov.
func (c Calendar) IsAssurBemelacha() bool {
	return c.Weekday() == time.Saturday || c.IsYomTovAssurBemelacha()
}

func (c Calendar) HasCandleLighting() bool { return c.IsTomorrowShabbosOrYomTov() }

func (c Calendar) IsTomorrowShabbosOrYomTov() bool {
	return c.Weekday() == time.Friday || c.IsErevYomTov() || c.IsErevYomTovSheni()
}

// IsErevYomTovSheni reports whether the next day is the second day of a
// Yom Tov: always for Rosh Hashana, otherwise only outside Israel.
func (c Calendar) IsErevYomTovSheni() bool {
	if c.month == Tishrei && c.day == 1 {
		return true
	}
	if c.InIsrael {
		return false
	}
	switch c.month {
	case Nissan:
		return c.day == 15 || c.day == 21
	case Tishrei:
		return c.day == 15 || c.day == 22
	case Sivan:
		return c.day == 6
	}
	return false
}

func (c Calendar) IsAseresYemeiTeshuva() bool { return c.month == Tishrei && c.day <= 10 }

func (c Calendar) IsPesach() bool           { return c.is(Pesach, CholHamoedPesach) }
func (c Calendar) IsCholHamoedPesach() bool { return c.is(CholHamoedPesach) }
func (c Calendar) IsShavuos() bool          { return c.is(Shavuos) }
func (c Calendar) IsRoshHashana() bool      { return c.is(RoshHashana) }
func (c Calendar) IsYomKippur() bool        { return c.is(YomKippur) }
func (c Calendar) IsSuccos() bool           { return c.is(Succos, CholHamoedSuccos, HoshanaRabbah) }
func (c Calendar) IsHoshanaRabba() bool     { return c.is(HoshanaRabbah) }
func (c Calendar) IsSheminiAtzeres() bool   { return c.is(SheminiAtzeres) }
func (c Calendar) IsSimchasTorah() bool     { return c.is(SimchasTorah) }
func (c Calendar) IsCholHamoedSuccos() bool { return c.is(CholHamoedSuccos, HoshanaRabbah) }
func (c Calendar) IsCholHamoed() bool       { return c.IsCholHamoedPesach() || c.IsCholHamoedSuccos() }
func (c Calendar) IsIsruChag() bool         { return c.is(IsruChag) }
func (c Calendar) IsChanukah() bool         { return c.is(Chanukah) }
func (c Calendar) IsTishaBav() bool         { return c.is(TishahBav) }

// IsErevYomTov includes Hoshana Rabbah and the sixth day of Pesach.
func (c Calendar) IsErevYomTov() bool {
	if c.is(CholHamoedPesach) {
		return c.day == 20
	}
	return c.is(ErevPesach, ErevShavuos, ErevRoshHashana, ErevYomKippur, ErevSuccos, HoshanaRabbah)
}

func (c Calendar) IsRoshChodesh() bool {
	return (c.day == 1 && c.month != Tishrei) || c.day == 30
}

// IsErevRoshChodesh excludes Erev Rosh Hashana.
func (c Calendar) IsErevRoshChodesh() bool {
	return c.day == 29 && c.month != Elul
}

func (c Calendar) IsTaanis() bool {
	return c.is(SeventeenthOfTammuz, TishahBav, YomKippur, FastOfGedalyah, TenthOfTeves, FastOfEsther)
}

// IsTaanisBechoros reports the fast of the firstborn, moved to Thursday
// when Erev Pesach is Shabbos.
func (c Calendar) IsTaanisBechoros() bool {
	if c.month != Nissan {
		return false
	}
	wd := c.Weekday()
	return (c.day == 14 && wd != time.Saturday) || (c.day == 12 && wd == time.Thursday)
}

// DayOfChanukah returns 1 through 8.
func (c Calendar) DayOfChanukah() (int, bool) {
	if !c.IsChanukah() {
		return 0, false
	}
	switch {
	case c.month == Kislev:
		return c.day - 24, true
	case c.KislevShort():
		return c.day + 5, true
	default:
		return c.day + 6, true
	}
}

// IsPurim reports the day Purim is read here: the 15th in a walled city.
func (c Calendar) IsPurim() bool {
	if c.MukafChoma {
		return c.is(ShushanPurim)
	}
	return c.is(Purim)
}

// DayOfOmer returns 1 through 49 between the second night of Pesach and Shavuos.
func (c Calendar) DayOfOmer() (int, bool) {
	switch {
	case c.month == Nissan && c.day >= 16:
		return c.day - 15, true
	case c.month == Iyar:
		return c.day + 15, true
	case c.month == Sivan && c.day < 6:
		return c.day + 44, true
	}
	return 0, false
}

// IsBirkasHachamah reports the day of the blessing on the sun, once every
// 28 years.
func (c Calendar) IsBirkasHachamah() bool {
	elapsed := c.ElapsedDays() + c.DayOfYear()
	return elapsed%10227 == 172
}

// IsYomKippurKatan reports Erev Rosh Chodesh observance, moved back to
// Thursday when the 29th is Friday or Shabbos. It is not kept in Elul,
// Tishrei, Kislev or Nissan.
func (c Calendar) IsYomKippurKatan() bool {
	switch c.month {
	case Elul, Tishrei, Kislev, Nissan:
		return false
	}
	wd := c.Weekday()
	if c.day == 29 && wd != time.Friday && wd != time.Saturday {
		return true
	}
	return (c.day == 27 || c.day == 28) && wd == time.Thursday
}

// IsBehab reports the Monday-Thursday-Monday fasts after Pesach and Succos.
func (c Calendar) IsBehab() bool {
	if c.month != Cheshvan && c.month != Iyar {
		return false
	}
	wd := c.Weekday()
	return (wd == time.Monday && c.day > 4 && c.day < 18) ||
		(wd == time.Thursday && c.day > 7 && c.day < 14)
}

// IsMacharChodesh reports a Shabbos followed by Rosh Chodesh.
func (c Calendar) IsMacharChodesh() bool {
	return c.Weekday() == time.Saturday && (c.day == 29 || c.day == 30)
}

// IsShabbosMevorchim reports the Shabbos on which the new month is
// announced. There is none before Tishrei.
func (c Calendar) IsShabbosMevorchim() bool {
	return c.Weekday() == time.Saturday && c.day >= 23 && c.day <= 29 && c.month != Elul
}
