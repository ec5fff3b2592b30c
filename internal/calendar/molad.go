package calendar

import (
	"fmt"
	"time"
)

// jerusalemMeanTimeOffset is how far Jerusalem mean solar time (35.2354°E)
// runs ahead of UTC+2.
const jerusalemMeanTimeOffset = 20*time.Minute + 56*time.Second + 496*time.Millisecond

// Molad is the mean conjunction of a month, reported as a civil day in
// Jerusalem mean time plus the clock time on that day.
type Molad struct {
	Date     Date `json:"-" yaml:"-"`
	Hours    int  `json:"hours" yaml:"hours"`
	Minutes  int  `json:"minutes" yaml:"minutes"`
	Chalakim int  `json:"chalakim" yaml:"chalakim"`
}

// MoladOf returns the molad of month m in year.
func MoladOf(year int, m Month) Molad {
	c := ChalakimSinceMoladTohu(year, m)
	day := c / ChalakimPerDay
	parts := c - day*ChalakimPerDay

	hours := int(parts / ChalakimPerHour)
	parts -= int64(hours) * ChalakimPerHour
	minutes := int(parts / ChalakimPerMinute)
	chalakim := int(parts - int64(minutes)*ChalakimPerMinute)

	// The count runs from 6pm; move it onto the civil clock.
	abs := int(day) + epoch
	if hours >= 6 {
		abs++
	}
	return Molad{
		Date:     fromAbs(abs),
		Hours:    (hours + 18) % 24,
		Minutes:  minutes,
		Chalakim: chalakim,
	}
}

// Molad returns the molad of the month d falls in.
func (d Date) Molad() Molad { return MoladOf(d.year, d.month) }

// Instant converts the molad to an absolute instant, treating its clock
// time as Jerusalem mean solar time.
func (m Molad) Instant() time.Time {
	ms := int64(m.Chalakim) * 10000 / 3 // a chelek is 3⅓ seconds
	local := m.Date.In(time.FixedZone("IST", 2*60*60)).
		Add(time.Duration(m.Hours)*time.Hour + time.Duration(m.Minutes)*time.Minute + time.Duration(ms)*time.Millisecond)
	return local.Add(-jerusalemMeanTimeOffset).UTC()
}

// MoladInstant is shorthand for d.Molad().Instant().
func (d Date) MoladInstant() time.Time { return d.Molad().Instant() }

func (m Molad) String() string {
	return fmt.Sprintf("%s %02d:%02d and %d chalakim", m.Date.Gregorian().Format("2006-01-02"), m.Hours, m.Minutes, m.Chalakim)
}

// Kiddush Levana windows, measured from the molad of the date's month.

func (d Date) TchilasKiddushLevana3Days() time.Time { return d.MoladInstant().Add(72 * time.Hour) }

func (d Date) TchilasKiddushLevana7Days() time.Time { return d.MoladInstant().Add(168 * time.Hour) }

// SofKiddushLevanaBetweenMoldos is half a lunar month after the molad:
// 14 days 18 hours 22 minutes and 1⅔ seconds.
func (d Date) SofKiddushLevanaBetweenMoldos() time.Time {
	return d.MoladInstant().Add(14*24*time.Hour + 18*time.Hour + 22*time.Minute + time.Second + 666*time.Millisecond)
}

func (d Date) SofKiddushLevana15Days() time.Time { return d.MoladInstant().Add(15 * 24 * time.Hour) }
