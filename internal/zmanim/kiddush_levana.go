package zmanim

import (
	"time"

	"github.com/zapponejosh/zmanim-api/internal/calendar"
)

// KiddushLevana selects one of the molad based limits on blessing the moon.
type KiddushLevana int

const (
	Tchilas3Days KiddushLevana = iota
	Tchilas7Days
	SofBetweenMoldos
	Sof15Days
)

// dayRange is the span of Hebrew days on which each limit can fall.
var dayRange = [...]struct{ from, to int }{
	Tchilas3Days:     {1, 5}, // and day 30, see KiddushLevana
	Tchilas7Days:     {4, 9},
	SofBetweenMoldos: {11, 16},
	Sof15Days:        {11, 17},
}

func (k KiddushLevana) start() bool { return k == Tchilas3Days || k == Tchilas7Days }

func (k KiddushLevana) instant(d calendar.Date) time.Time {
	switch k {
	case Tchilas3Days:
		return d.TchilasKiddushLevana3Days()
	case Tchilas7Days:
		return d.TchilasKiddushLevana7Days()
	case SofBetweenMoldos:
		return d.SofKiddushLevanaBetweenMoldos()
	default:
		return d.SofKiddushLevana15Days()
	}
}

// KiddushLevana returns the limit k if it falls on the calendar's civil
// day. A limit that falls between alos and tzais is moved out of the day:
// an earliest time to tzais, a latest time back to alos. When alos or
// tzais is absent the molad based instant is returned as is.
func (c Calendar) KiddushLevana(k KiddushLevana, alos, tzais time.Time, haveAlosTzais bool) (time.Time, bool) {
	d, err := c.HebrewDate()
	if err != nil {
		return time.Time{}, false
	}

	r := dayRange[k]
	day := d.Day()
	if k == Tchilas3Days {
		if day > r.to && day < 30 {
			return time.Time{}, false
		}
	} else if day < r.from || day > r.to {
		return time.Time{}, false
	}

	t, ok := c.moladBased(k.instant(d), of(alos, haveAlosTzais), of(tzais, haveAlosTzais), k.start())
	if !ok && k == Tchilas3Days && day == 30 {
		// The molad of the coming month may already be three days old.
		return c.moladBased(k.instant(d.AddDays(1)), of(alos, haveAlosTzais), of(tzais, haveAlosTzais), true)
	}
	return t, ok
}

func (c Calendar) moladBased(molad time.Time, alos, tzais at, start bool) (time.Time, bool) {
	midnight := c.astro.Date()
	local := molad.In(midnight.Location())
	tonight := midnight.AddDate(0, 0, 1)
	if local.Before(midnight) || local.After(tonight) {
		return time.Time{}, false
	}
	if !alos.ok || !tzais.ok {
		return local, true
	}
	if local.After(alos.t) && local.Before(tzais.t) {
		if start {
			return tzais.t, true
		}
		return alos.t, true
	}
	return local, true
}

// kiddushLevana clamps with the calendar's own alos hashachar and tzais.
func (c Calendar) kiddushLevana(k KiddushLevana) (time.Time, bool) {
	alos, aok := c.AlosHashachar()
	tzais, tok := c.Tzais()
	return c.KiddushLevana(k, alos, tzais, aok && tok)
}
