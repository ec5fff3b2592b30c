package zmanim

import (
	"sort"
	"time"
)

// Zman returns a single zman, or false when it does not occur today.
func (c Calendar) Zman(z Zman) (time.Time, bool) {
	switch z {
	case AlosHashachar:
		return c.AlosHashachar()
	case Alos72:
		return c.Alos72()
	case Misheyakir11Point5Degrees:
		return c.Misheyakir(11.5)
	case Misheyakir11Degrees:
		return c.Misheyakir(11)
	case Misheyakir10Point2Degrees:
		return c.Misheyakir(10.2)
	case Misheyakir9Point5Degrees:
		return c.Misheyakir(9.5)
	case Misheyakir7Point65Degrees:
		return c.Misheyakir(7.65)
	case Sunrise:
		return c.astro.Sunrise()
	case SeaLevelSunrise:
		return c.astro.SeaLevelSunrise()
	case SofZmanShmaMGA:
		return c.SofZmanShmaMGA()
	case SofZmanShmaMGA16Point1Degrees:
		return c.SofZmanShmaMGA16Point1Degrees()
	case SofZmanShmaGRA:
		return c.SofZmanShmaGRA()
	case SofZmanTfilaMGA:
		return c.SofZmanTfilaMGA()
	case SofZmanTfilaGRA:
		return c.SofZmanTfilaGRA()
	case SofZmanAchilasChametzMGA:
		return c.SofZmanAchilasChametzMGA()
	case SofZmanAchilasChametzGRA:
		return c.SofZmanAchilasChametzGRA()
	case SofZmanBiurChametzMGA:
		return c.SofZmanBiurChametzMGA()
	case SofZmanBiurChametzGRA:
		return c.SofZmanBiurChametzGRA()
	case Chatzos:
		return c.Chatzos()
	case ChatzosAsHalfDay:
		return c.ChatzosAsHalfDay()
	case MinchaGedola:
		return c.MinchaGedola()
	case MinchaGedola30Minutes:
		return c.MinchaGedola30Minutes()
	case MinchaKetana:
		return c.MinchaKetana()
	case SamuchLeMinchaKetana:
		return c.SamuchLeMinchaKetana()
	case PlagHamincha:
		return c.PlagHamincha()
	case CandleLighting:
		return c.CandleLighting()
	case SeaLevelSunset:
		return c.astro.SeaLevelSunset()
	case Sunset:
		return c.astro.Sunset()
	case TzaisGeonim3Point7Degrees:
		return c.TzaisGeonim(3.7)
	case TzaisGeonim5Point95Degrees:
		return c.TzaisGeonim(5.95)
	case TzaisGeonim7Point083Degrees:
		return c.TzaisGeonim(7.083)
	case Tzais:
		return c.Tzais()
	case TzaisAteretTorah:
		return c.TzaisAteretTorah()
	case BainHashmashosRT58Point5Minutes:
		return c.BainHashmashosRT58Point5Minutes()
	case BainHashmashosRT13Point24Degrees:
		return c.BainHashmashosRT13Point24Degrees()
	case Tzais72:
		return c.Tzais72()
	case TchilasZmanKidushLevana3Days:
		return c.kiddushLevana(Tchilas3Days)
	case TchilasZmanKidushLevana7Days:
		return c.kiddushLevana(Tchilas7Days)
	case SofZmanKidushLevanaBetweenMoldos:
		return c.kiddushLevana(SofBetweenMoldos)
	case SofZmanKidushLevana15Days:
		return c.kiddushLevana(Sof15Days)
	case ChatzosHalayla:
		return c.ChatzosHalayla()
	}
	return time.Time{}, false
}

// Catalogue computes every zman. Zmanim that do not occur today are
// missing from the map.
func (c Calendar) Catalogue() map[Zman]time.Time {
	return c.Select(Zmanim())
}

// Select computes only the given zmanim.
func (c Calendar) Select(zmanim []Zman) map[Zman]time.Time {
	out := make(map[Zman]time.Time, len(zmanim))
	for _, z := range zmanim {
		if t, ok := c.Zman(z); ok {
			out[z] = t
		}
	}
	return out
}

// Entry is one computed zman.
type Entry struct {
	Zman Zman
	Time time.Time
}

// Sorted lists a catalogue in listing order.
func Sorted(cat map[Zman]time.Time) []Entry {
	entries := make([]Entry, 0, len(cat))
	for z, t := range cat {
		entries = append(entries, Entry{Zman: z, Time: t})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Zman < entries[j].Zman })
	return entries
}
