package calendar

import (
	"math"
	"time"
)

// TekufasTishreiElapsedDays returns the days since the Shmuel tekufa of
// Tishrei, which drifts against the Hebrew calendar by 365.25 days a year.
func (d Date) TekufasTishreiElapsedDays() int {
	days := float64(d.ElapsedDays()) + float64(d.DayOfYear()-1) + 0.5
	years := float64(d.year-1) * 365.25
	return int(math.Floor(days - years))
}

// IsVeseinTalUmatarStartDate reports the first day the request for rain
// is said at Maariv: 7 Cheshvan in Israel, otherwise the 60th day after
// the tekufa, deferred from Friday night to Motzai Shabbos.
func (c Calendar) IsVeseinTalUmatarStartDate() bool {
	if c.InIsrael {
		return c.month == Cheshvan && c.day == 7
	}
	switch c.Weekday() {
	case time.Saturday:
		return false
	case time.Sunday:
		e := c.TekufasTishreiElapsedDays()
		return e == 48 || e == 47
	}
	return c.TekufasTishreiElapsedDays() == 47
}

// IsVeseinTalUmatarStartingTonight is the day before IsVeseinTalUmatarStartDate.
func (c Calendar) IsVeseinTalUmatarStartingTonight() bool {
	if c.InIsrael {
		return c.month == Cheshvan && c.day == 6
	}
	switch c.Weekday() {
	case time.Friday:
		return false
	case time.Saturday:
		e := c.TekufasTishreiElapsedDays()
		return e == 47 || e == 46
	}
	return c.TekufasTishreiElapsedDays() == 46
}

// IsVeseinTalUmatarRecited reports whether the request for rain is said
// in the day's Shacharis. It ends before Musaf of the first day of Pesach.
func (c Calendar) IsVeseinTalUmatarRecited() bool {
	if c.month == Nissan && c.day < 15 {
		return true
	}
	if c.month < Cheshvan {
		return false
	}
	if c.InIsrael {
		return c.month != Cheshvan || c.day >= 7
	}
	return c.TekufasTishreiElapsedDays() >= 47
}

func (c Calendar) IsVeseinBerachaRecited() bool { return !c.IsVeseinTalUmatarRecited() }

func (c Calendar) IsMashivHaruachStartDate() bool { return c.month == Tishrei && c.day == 22 }

func (c Calendar) IsMashivHaruachEndDate() bool { return c.month == Nissan && c.day == 15 }

// IsMashivHaruachRecited is true strictly between Shemini Atzeres and the
// first day of Pesach, where the change happens at Musaf.
func (c Calendar) IsMashivHaruachRecited() bool {
	start := hebrewToAbs(c.year, Tishrei, 22)
	end := hebrewToAbs(c.year, Nissan, 15)
	return c.abs > start && c.abs < end
}

func (c Calendar) IsMoridHatalRecited() bool {
	return !c.IsMashivHaruachRecited() || c.IsMashivHaruachStartDate() || c.IsMashivHaruachEndDate()
}

// VeseinTalUmatarStart returns the first day of the year on which the
// request for rain is said.
func VeseinTalUmatarStart(year int, inIsrael bool) Date {
	c := Calendar{Date: MustFromHebrew(year, Cheshvan, 1), InIsrael: inIsrael}
	for !c.IsVeseinTalUmatarStartDate() {
		c = c.Tomorrow()
	}
	return c.Date
}
