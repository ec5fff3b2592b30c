package calendar

import "time"

// noParsha marks a Shabbos on which a Yom Tov reading replaces the weekly one.
const noParsha Parsha = -1

// parshaYearType picks one of the 17 reading schedules. The choice depends
// on the weekday of Rosh Hashana, whether the year is leap, the lengths of
// Cheshvan and Kislev and, for some years, on Israel or the diaspora.
func parshaYearType(year int, inIsrael bool) (int, bool) {
	rh := (ElapsedDays(year) + 1) % 7
	if rh == 0 {
		rh = 7
	}
	short, long := KislevShort(year), CheshvanLong(year)
	pick := func(israel, diaspora int) int {
		if inIsrael {
			return israel
		}
		return diaspora
	}

	if IsLeapYear(year) {
		switch rh {
		case 2: // Monday
			if short {
				return pick(14, 6), true
			}
			if long {
				return pick(15, 7), true
			}
		case 3: // Tuesday
			return pick(15, 7), true
		case 5: // Thursday
			if short {
				return 8, true
			}
			if long {
				return 9, true
			}
		case 7: // Shabbos
			if short {
				return 10, true
			}
			if long {
				return pick(16, 11), true
			}
		}
		return 0, false
	}

	switch rh {
	case 2:
		if short {
			return 0, true
		}
		if long {
			return pick(12, 1), true
		}
	case 3:
		return pick(12, 1), true
	case 5:
		if long {
			return 3, true
		}
		if !short {
			return pick(13, 2), true
		}
	case 7:
		if short {
			return 4, true
		}
		if long {
			return 5, true
		}
	}
	return 0, false
}

// parshaTables is indexed by year type, then by the week of the year
// counted from the Shabbos on or before Rosh Hashana.
var parshaTables = [17][]Parsha{
	{ // 0
		noParsha, Vayeilech, HaAzinu, noParsha, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei, Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa, VayakhelPekudei, Vayikra, Tzav, noParsha, Shmini, TazriaMetzora, AchreiMosKedoshim, Emor, BeharBechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas, Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo, NitzavimVayeilech,
	},
	{ // 1
		noParsha, Vayeilech, HaAzinu, noParsha, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei, Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa, VayakhelPekudei, Vayikra, Tzav, noParsha, Shmini, TazriaMetzora, AchreiMosKedoshim, Emor, BeharBechukosai, Bamidbar, noParsha, Nasso, Behaaloscha, Shlach, Korach, ChukasBalak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo, NitzavimVayeilech,
	},
	{ // 2
		noParsha, HaAzinu, noParsha, noParsha, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei, Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa, VayakhelPekudei, Vayikra, Tzav, noParsha, noParsha, Shmini, TazriaMetzora, AchreiMosKedoshim, Emor, BeharBechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, ChukasBalak, Pinchas, Matos, Masei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo, Nitzavim,
	},
	{ // 3
		noParsha, HaAzinu, noParsha, noParsha, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei, Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, noParsha, Shmini, TazriaMetzora, AchreiMosKedoshim, Emor, BeharBechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas, Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo, Nitzavim,
	},
	{ // 4
		noParsha, noParsha, HaAzinu, noParsha, noParsha, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei, Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa, VayakhelPekudei, Vayikra, Tzav, noParsha, Shmini, TazriaMetzora, AchreiMosKedoshim, Emor, BeharBechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas, Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo, Nitzavim,
	},
	{ // 5
		noParsha, noParsha, HaAzinu, noParsha, noParsha, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei, Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa, VayakhelPekudei, Vayikra, Tzav, noParsha, Shmini, TazriaMetzora, AchreiMosKedoshim, Emor, BeharBechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas, Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo, NitzavimVayeilech,
	},
	{ // 6
		noParsha, Vayeilech, HaAzinu, noParsha, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei, Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, Shmini, Tazria, Metzora, noParsha, AchreiMos, Kedoshim, Emor, Behar, Bechukosai, Bamidbar, noParsha, Nasso, Behaaloscha, Shlach, Korach, ChukasBalak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo, NitzavimVayeilech,
	},
	{ // 7
		noParsha, Vayeilech, HaAzinu, noParsha, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei, Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, Shmini, Tazria, Metzora, noParsha, noParsha, AchreiMos, Kedoshim, Emor, Behar, Bechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, ChukasBalak, Pinchas, Matos, Masei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo, Nitzavim,
	},
	{ // 8
		noParsha, HaAzinu, noParsha, noParsha, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei, Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, Shmini, Tazria, Metzora, AchreiMos, noParsha, Kedoshim, Emor, Behar, Bechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas, Balak, Pinchas, Matos, Masei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo, Nitzavim,
	},
	{ // 9
		noParsha, HaAzinu, noParsha, noParsha, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei, Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, Shmini, Tazria, Metzora, AchreiMos, noParsha, Kedoshim, Emor, Behar, Bechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas, Balak, Pinchas, Matos, Masei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo, NitzavimVayeilech,
	},
	{ // 10
		noParsha, noParsha, HaAzinu, noParsha, noParsha, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei, Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, Shmini, Tazria, Metzora, noParsha, AchreiMos, Kedoshim, Emor, Behar, Bechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas, Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo, NitzavimVayeilech,
	},
	{ // 11
		noParsha, noParsha, HaAzinu, noParsha, noParsha, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei, Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, Shmini, Tazria, Metzora, noParsha, AchreiMos, Kedoshim, Emor, Behar, Bechukosai, Bamidbar, noParsha, Nasso, Behaaloscha, Shlach, Korach, ChukasBalak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo, NitzavimVayeilech,
	},
	{ // 12
		noParsha, Vayeilech, HaAzinu, noParsha, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei, Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa, VayakhelPekudei, Vayikra, Tzav, noParsha, Shmini, TazriaMetzora, AchreiMosKedoshim, Emor, BeharBechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas, Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo, NitzavimVayeilech,
	},
	{ // 13
		noParsha, HaAzinu, noParsha, noParsha, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei, Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa, VayakhelPekudei, Vayikra, Tzav, noParsha, Shmini, TazriaMetzora, AchreiMosKedoshim, Emor, Behar, Bechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas, Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo, Nitzavim,
	},
	{ // 14
		noParsha, Vayeilech, HaAzinu, noParsha, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei, Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, Shmini, Tazria, Metzora, noParsha, AchreiMos, Kedoshim, Emor, Behar, Bechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas, Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo, NitzavimVayeilech,
	},
	{ // 15
		noParsha, Vayeilech, HaAzinu, noParsha, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei, Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, Shmini, Tazria, Metzora, noParsha, AchreiMos, Kedoshim, Emor, Behar, Bechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas, Balak, Pinchas, Matos, Masei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo, Nitzavim,
	},
	{ // 16
		noParsha, noParsha, HaAzinu, noParsha, noParsha, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei, Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, Shmini, Tazria, Metzora, noParsha, AchreiMos, Kedoshim, Emor, Behar, Bechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas, Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo, NitzavimVayeilech,
	},
}

// Parsha returns the weekly reading. It is absent on weekdays and on a
// Shabbos that is a Yom Tov or Chol Hamoed.
func (c Calendar) Parsha() (Parsha, bool) {
	if c.Weekday() != time.Saturday {
		return 0, false
	}
	yt, ok := parshaYearType(c.year, c.InIsrael)
	if !ok {
		return 0, false
	}
	week := (c.ElapsedDays()%7 + c.DayOfYear()) / 7
	table := parshaTables[yt]
	if week >= len(table) || table[week] == noParsha {
		return 0, false
	}
	return table[week], true
}

// UpcomingParsha returns the next weekly reading after today and the
// Shabbos it is read on, skipping any Shabbos without one. On Shabbos it
// looks at the following week.
func (c Calendar) UpcomingParsha() (Parsha, Date) {
	days := (int(time.Saturday) - int(c.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	next := c.Plus(days)
	for {
		if p, ok := next.Parsha(); ok {
			return p, next.Date
		}
		next = next.Plus(7)
	}
}

// SpecialShabbos returns the name of a Shabbos with an added reading or
// haftarah, such as Shekalim or Shuva.
func (c Calendar) SpecialShabbos() (Parsha, bool) {
	if c.Weekday() != time.Saturday {
		return 0, false
	}
	isLeap := c.IsLeapYear()
	d := c.day

	switch {
	case (c.month == Shevat && !isLeap) || (c.month == Adar && isLeap):
		if d == 25 || d == 27 || d == 29 {
			return Shekalim, true
		}
	case (c.month == Adar && !isLeap) || c.month == AdarII:
		switch d {
		case 1:
			return Shekalim, true
		case 8, 9, 11, 13:
			return Zachor, true
		case 18, 20, 22, 23:
			return Parah, true
		case 25, 27, 29:
			return Hachodesh, true
		}
	case c.month == Nissan:
		if d == 1 {
			return Hachodesh, true
		}
		if d >= 8 && d <= 14 {
			return Hagadol, true
		}
	case c.month == Av:
		if d >= 4 && d <= 9 {
			return Chazon, true
		}
		if d >= 10 && d <= 16 {
			return Nachamu, true
		}
	case c.month == Tishrei:
		if d >= 3 && d <= 8 {
			return Shuva, true
		}
	}

	if p, ok := c.Parsha(); ok && p == Beshalach {
		return Shira, true
	}
	return 0, false
}
