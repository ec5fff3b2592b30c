package solar

import (
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// Gregorian returns the proleptic Gregorian date containing Julian day jd.
func Gregorian(jd float64) (year int, month time.Month, day int) {
	jdn := int(math.Floor(jd + 0.5))

	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - (146097*b)/4
	d := (4*c + 3) / 1461
	e := c - (1461*d)/4
	m := (5*e + 2) / 153

	day = e - (153*m+2)/5 + 1
	month = time.Month(m + 3 - 12*(m/10))
	year = 100*b + d - 4800 + m/10
	return year, month, day
}

// Seasons holds the instants of the equinoxes and solstices of a year, in
// dynamical time (within about a minute of UTC for modern dates).
type Seasons struct {
	MarchEquinox     time.Time `json:"march_equinox" yaml:"march_equinox"`
	JuneSolstice     time.Time `json:"june_solstice" yaml:"june_solstice"`
	SeptemberEquinox time.Time `json:"september_equinox" yaml:"september_equinox"`
	DecemberSolstice time.Time `json:"december_solstice" yaml:"december_solstice"`
}

// SeasonsOf computes the astronomical seasons of the Gregorian year. Valid
// for years -1000 to 3000.
func SeasonsOf(year int) Seasons {
	return Seasons{
		MarchEquinox:     jdeToTime(solstice.March(year)),
		JuneSolstice:     jdeToTime(solstice.June(year)),
		SeptemberEquinox: jdeToTime(solstice.September(year)),
		DecemberSolstice: jdeToTime(solstice.December(year)),
	}
}

func jdeToTime(jde float64) time.Time {
	y, m, d := julian.JDToCalendar(jde)
	day, frac := math.Modf(d)
	ns := math.Round(frac * float64(24*time.Hour))
	return time.Date(y, time.Month(m), int(day), 0, 0, 0, 0, time.UTC).Add(time.Duration(ns)).Truncate(time.Second)
}
