// Package calendar implements the arithmetic Hebrew calendar: date
// conversion, molad, holidays, the weekly parsha, daf yomi and the
// seasonal prayer rules that depend on them.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/zapponejosh/zmanim-api/internal/solar"
)

// ErrInvalidDate is returned for a Hebrew or Gregorian date that cannot be
// represented.
var ErrInvalidDate = errors.New("invalid date")

// Calendar constants
const (
	ChalakimPerMinute = 18
	ChalakimPerHour   = 1080
	ChalakimPerDay    = 25920

	// ChalakimPerMonth is the mean synodic month: 29 days 12 hours 793 chalakim.
	ChalakimPerMonth = 765433

	// MoladTohu is the molad of Tishrei of year 1, counted from the epoch.
	MoladTohu = 31524

	// epoch is the absolute day of the Hebrew epoch. Absolute day 1 is
	// 0001-01-01 in the proleptic Gregorian calendar.
	epoch = -1373429

	// jdOfAbsoluteZero converts absolute days to Julian days at midnight.
	jdOfAbsoluteZero = 1721424.5
)

// Date is a day in the Hebrew calendar. The zero value is not a valid date;
// use FromHebrew or FromGregorian.
type Date struct {
	year  int
	month Month
	day   int
	abs   int
}

// IsLeapYear reports whether year has thirteen months. Leap years are years
// 3, 6, 8, 11, 14, 17 and 19 of the 19 year cycle.
func IsLeapYear(year int) bool {
	return (7*year+1)%19 < 7
}

// lastMonth returns the last month of the Nissan-based year.
func lastMonth(year int) Month {
	if IsLeapYear(year) {
		return AdarII
	}
	return Adar
}

// monthOfYear numbers the months from Tishrei = 1, which is the order the
// molad is counted in.
func monthOfYear(year int, m Month) int {
	if IsLeapYear(year) {
		return (int(m)+6)%13 + 1
	}
	return (int(m)+5)%12 + 1
}

// monthsElapsed is the number of months from the epoch to the start of year.
func monthsElapsed(year int) int64 {
	y := int64(year - 1)
	return 235*(y/19) + 12*(y%19) + (7*(y%19)+1)/19
}

// ChalakimSinceMoladTohu returns the chalakim from the epoch to the molad
// of month in year.
func ChalakimSinceMoladTohu(year int, m Month) int64 {
	months := monthsElapsed(year) + int64(monthOfYear(year, m)) - 1
	return MoladTohu + ChalakimPerMonth*months
}

// ElapsedDays returns the number of days from the epoch to Rosh Hashana of
// year, after the four postponements.
func ElapsedDays(year int) int {
	c := ChalakimSinceMoladTohu(year, Tishrei)
	day := c / ChalakimPerDay
	parts := c - day*ChalakimPerDay
	return int(postpone(year, day, parts))
}

func postpone(year int, day, parts int64) int64 {
	rh := day
	switch {
	case parts >= 19440: // molad zaken
		rh++
	case day%7 == 2 && parts >= 9924 && !IsLeapYear(year): // GaTaRaD
		rh++
	case day%7 == 1 && parts >= 16789 && IsLeapYear(year-1): // BeTUTaKPaT
		rh++
	}
	// lo ADU rosh
	if d := rh % 7; d == 0 || d == 3 || d == 5 {
		rh++
	}
	return rh
}

// DaysInYear returns 353, 354, 355, 383, 384 or 385.
func DaysInYear(year int) int {
	return ElapsedDays(year+1) - ElapsedDays(year)
}

// CheshvanLong reports whether Cheshvan has 30 days in year.
func CheshvanLong(year int) bool { return DaysInYear(year)%10 == 5 }

// KislevShort reports whether Kislev has 29 days in year.
func KislevShort(year int) bool { return DaysInYear(year)%10 == 3 }

// YearType classifies year by its Cheshvan and Kislev.
func YearType(year int) YearLength {
	switch {
	case CheshvanLong(year):
		return Shelaimim
	case KislevShort(year):
		return Chaserim
	default:
		return Kesidran
	}
}

// DaysInMonth returns the length of month m in year.
func DaysInMonth(year int, m Month) int {
	switch m {
	case Iyar, Tammuz, Elul, Teves, AdarII:
		return 29
	case Cheshvan:
		if !CheshvanLong(year) {
			return 29
		}
	case Kislev:
		if KislevShort(year) {
			return 29
		}
	case Adar:
		if !IsLeapYear(year) {
			return 29
		}
	}
	return 30
}

// daysSinceStartOfYear counts from Rosh Hashana, which is day 1.
func daysSinceStartOfYear(year int, m Month, day int) int {
	days := day
	if m >= Tishrei {
		for mm := Tishrei; mm < m; mm++ {
			days += DaysInMonth(year, mm)
		}
		return days
	}
	for mm := Tishrei; mm <= lastMonth(year); mm++ {
		days += DaysInMonth(year, mm)
	}
	for mm := Nissan; mm < m; mm++ {
		days += DaysInMonth(year, mm)
	}
	return days
}

func hebrewToAbs(year int, m Month, day int) int {
	return daysSinceStartOfYear(year, m, day) + ElapsedDays(year) + epoch
}

func absToHebrew(abs int) (int, Month, int) {
	gy, _, _ := absToGregorian(abs)
	year := gy + 3760
	for abs >= hebrewToAbs(year+1, Tishrei, 1) {
		year++
	}
	for abs < hebrewToAbs(year, Tishrei, 1) {
		year--
	}

	m := Nissan
	if abs < hebrewToAbs(year, Nissan, 1) {
		m = Tishrei
	}
	for abs > hebrewToAbs(year, m, DaysInMonth(year, m)) {
		m++
	}
	return year, m, abs - hebrewToAbs(year, m, 1) + 1
}

func gregorianToAbs(year int, month time.Month, day int) int {
	return int(solar.JulianDay(year, month, day) - jdOfAbsoluteZero)
}

func absToGregorian(abs int) (int, time.Month, int) {
	return solar.Gregorian(float64(abs) + jdOfAbsoluteZero)
}

// FromHebrew validates a Hebrew year, month and day.
func FromHebrew(year int, m Month, day int) (Date, error) {
	if year < 1 {
		return Date{}, fmt.Errorf("%w: year %d is before the epoch", ErrInvalidDate, year)
	}
	if !m.valid() || (m == AdarII && !IsLeapYear(year)) {
		return Date{}, fmt.Errorf("%w: month %d does not exist in year %d", ErrInvalidDate, m, year)
	}
	if n := DaysInMonth(year, m); day < 1 || day > n {
		return Date{}, fmt.Errorf("%w: %s %d has %d days, got %d", ErrInvalidDate, m.Name(IsLeapYear(year)), year, n, day)
	}
	return Date{year: year, month: m, day: day, abs: hebrewToAbs(year, m, day)}, nil
}

// MustFromHebrew is like FromHebrew but panics on an invalid date.
func MustFromHebrew(year int, m Month, day int) Date {
	d, err := FromHebrew(year, m, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromGregorian converts the civil date of t (in t's own location) to the
// Hebrew date that begins at the preceding sunset. Only years from 1 CE
// are accepted.
func FromGregorian(t time.Time) (Date, error) {
	y, m, d := t.Date()
	if y < 1 {
		return Date{}, fmt.Errorf("%w: gregorian year %d is out of range", ErrInvalidDate, y)
	}
	return fromAbs(gregorianToAbs(y, m, d)), nil
}

func fromAbs(abs int) Date {
	y, m, d := absToHebrew(abs)
	return Date{year: y, month: m, day: d, abs: abs}
}

func (d Date) Year() int    { return d.year }
func (d Date) Month() Month { return d.month }
func (d Date) Day() int     { return d.day }

// Absolute returns the day number with 0001-01-01 as day 1.
func (d Date) Absolute() int { return d.abs }

// Weekday returns the day of the week of the civil day this date falls on.
func (d Date) Weekday() time.Weekday {
	return time.Weekday(((d.abs % 7) + 7) % 7)
}

// Gregorian returns the civil date at midnight UTC.
func (d Date) Gregorian() time.Time {
	y, m, day := absToGregorian(d.abs)
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// In returns the civil date at midnight in loc.
func (d Date) In(loc *time.Location) time.Time {
	y, m, day := absToGregorian(d.abs)
	return time.Date(y, m, day, 0, 0, 0, 0, loc)
}

func (d Date) IsLeapYear() bool       { return IsLeapYear(d.year) }
func (d Date) DaysInYear() int        { return DaysInYear(d.year) }
func (d Date) DaysInMonth() int       { return DaysInMonth(d.year, d.month) }
func (d Date) CheshvanLong() bool     { return CheshvanLong(d.year) }
func (d Date) KislevShort() bool      { return KislevShort(d.year) }
func (d Date) YearType() YearLength   { return YearType(d.year) }
func (d Date) ElapsedDays() int       { return ElapsedDays(d.year) }
func (d Date) DayOfYear() int         { return daysSinceStartOfYear(d.year, d.month, d.day) }
func (d Date) AddDays(n int) Date     { return fromAbs(d.abs + n) }
func (d Date) Before(other Date) bool { return d.abs < other.abs }

// DaysUntil returns the number of days from d to other.
func (d Date) DaysUntil(other Date) int { return other.abs - d.abs }

// String formats the date as "15 Sivan 5784".
func (d Date) String() string {
	return fmt.Sprintf("%d %s %d", d.day, d.month.Name(d.IsLeapYear()), d.year)
}
