package zmanim

import (
	"time"

	"github.com/zapponejosh/zmanim-api/internal/calendar"
)

// TefilaRules are the customs that decide which variable prayers are said.
type TefilaRules struct {
	TachanunRecitedEndOfTishrei               bool `json:"tachanun_recited_end_of_tishrei" yaml:"tachanun_recited_end_of_tishrei"`
	TachanunRecitedWeekAfterShavuos           bool `json:"tachanun_recited_week_after_shavuos" yaml:"tachanun_recited_week_after_shavuos"`
	TachanunRecited13SivanOutOfIsrael         bool `json:"tachanun_recited_13_sivan_out_of_israel" yaml:"tachanun_recited_13_sivan_out_of_israel"`
	TachanunRecitedPesachSheni                bool `json:"tachanun_recited_pesach_sheni" yaml:"tachanun_recited_pesach_sheni"`
	TachanunRecited15IyarOutOfIsrael          bool `json:"tachanun_recited_15_iyar_out_of_israel" yaml:"tachanun_recited_15_iyar_out_of_israel"`
	TachanunRecitedMinchaErevLagBaomer        bool `json:"tachanun_recited_mincha_erev_lag_baomer" yaml:"tachanun_recited_mincha_erev_lag_baomer"`
	TachanunRecitedShivasYemeiHamiluim        bool `json:"tachanun_recited_shivas_yemei_hamiluim" yaml:"tachanun_recited_shivas_yemei_hamiluim"`
	TachanunRecitedWeekOfHod                  bool `json:"tachanun_recited_week_of_hod" yaml:"tachanun_recited_week_of_hod"`
	TachanunRecitedWeekOfPurim                bool `json:"tachanun_recited_week_of_purim" yaml:"tachanun_recited_week_of_purim"`
	TachanunRecitedFridays                    bool `json:"tachanun_recited_fridays" yaml:"tachanun_recited_fridays"`
	TachanunRecitedSundays                    bool `json:"tachanun_recited_sundays" yaml:"tachanun_recited_sundays"`
	TachanunRecitedMinchaAllYear              bool `json:"tachanun_recited_mincha_all_year" yaml:"tachanun_recited_mincha_all_year"`
	MizmorLesodaRecitedErevYomKippurAndPesach bool `json:"mizmor_lesoda_recited_erev_yom_kippur_and_pesach" yaml:"mizmor_lesoda_recited_erev_yom_kippur_and_pesach"`
}

// DefaultTefilaRules returns the most common Ashkenazic customs.
func DefaultTefilaRules() TefilaRules {
	return TefilaRules{
		TachanunRecitedEndOfTishrei:        true,
		TachanunRecited13SivanOutOfIsrael:  true,
		TachanunRecited15IyarOutOfIsrael:   true,
		TachanunRecitedShivasYemeiHamiluim: true,
		TachanunRecitedWeekOfHod:           true,
		TachanunRecitedWeekOfPurim:         true,
		TachanunRecitedFridays:             true,
		TachanunRecitedSundays:             true,
		TachanunRecitedMinchaAllYear:       true,
	}
}

func lastAdar(c calendar.Calendar) bool {
	if c.IsLeapYear() {
		return c.Month() == calendar.AdarII
	}
	return c.Month() == calendar.Adar
}

// TachanunShacharis reports whether tachanun is said in the morning.
func (r TefilaRules) TachanunShacharis(c calendar.Calendar) bool {
	isHoliday := func(h calendar.Holiday) bool {
		got, ok := c.Holiday()
		return ok && got == h
	}
	day, month, wd := c.Day(), c.Month(), c.Weekday()

	sivanEnd := 13
	if !c.InIsrael && !r.TachanunRecited13SivanOutOfIsrael {
		sivanEnd = 14
	}

	switch {
	case wd == time.Saturday,
		wd == time.Sunday && !r.TachanunRecitedSundays,
		wd == time.Friday && !r.TachanunRecitedFridays,
		month == calendar.Nissan:
		return false
	case month == calendar.Tishrei && day > 8 && (!r.TachanunRecitedEndOfTishrei || day < 22):
		return false
	case month == calendar.Sivan && r.TachanunRecitedWeekAfterShavuos && day < 7,
		month == calendar.Sivan && !r.TachanunRecitedWeekAfterShavuos && day < sivanEnd:
		return false
	case c.IsErevYomTov(),
		c.IsYomTov() && (!c.IsTaanis() || !r.TachanunRecitedPesachSheni && isHoliday(calendar.PesachSheni)):
		return false
	case !c.InIsrael && !r.TachanunRecitedPesachSheni && !r.TachanunRecited15IyarOutOfIsrael &&
		month == calendar.Iyar && day == 15:
		return false
	case isHoliday(calendar.TishahBav), c.IsIsruChag(), c.IsRoshChodesh():
		return false
	case !r.TachanunRecitedShivasYemeiHamiluim && lastAdar(c) && day > 22:
		return false
	case !r.TachanunRecitedWeekOfPurim && lastAdar(c) && day > 10 && day < 18:
		return false
	case c.UseModernHolidays && (isHoliday(calendar.YomHaatzmaut) || isHoliday(calendar.YomYerushalayim)):
		return false
	case !r.TachanunRecitedWeekOfHod && month == calendar.Iyar && day > 13 && day < 21:
		return false
	}
	return true
}

// TachanunMincha reports whether tachanun is said in the afternoon. It is
// left out before a day without tachanun, except before Erev Rosh
// Hashana, Erev Yom Kippur and Pesach Sheni.
func (r TefilaRules) TachanunMincha(c calendar.Calendar) bool {
	tomorrow := c.Tomorrow()
	next, hasNext := tomorrow.Holiday()
	exempt := hasNext && (next == calendar.ErevRoshHashana || next == calendar.ErevYomKippur || next == calendar.PesachSheni)

	switch {
	case !r.TachanunRecitedMinchaAllYear,
		c.Weekday() == time.Friday,
		!r.TachanunShacharis(c),
		!r.TachanunShacharis(tomorrow) && !exempt,
		!r.TachanunRecitedMinchaErevLagBaomer && hasNext && next == calendar.LagBomer:
		return false
	}
	return true
}

// HallelRecited reports whether any hallel is said.
func (r TefilaRules) HallelRecited(c calendar.Calendar) bool {
	if c.IsRoshChodesh() || c.IsChanukah() {
		return true
	}
	day := c.Day()
	switch c.Month() {
	case calendar.Nissan:
		return day >= 15 && (c.InIsrael && day <= 21 || !c.InIsrael && day <= 22)
	case calendar.Iyar:
		h, ok := c.Holiday()
		return ok && c.UseModernHolidays && (h == calendar.YomHaatzmaut || h == calendar.YomYerushalayim)
	case calendar.Sivan:
		return day == 6 || !c.InIsrael && day == 7
	case calendar.Tishrei:
		return day >= 15 && (day <= 22 || !c.InIsrael && day <= 23)
	}
	return false
}

// HallelShalemRecited reports whether the full hallel is said. Rosh
// Chodesh and the later days of Pesach take the shortened form.
func (r TefilaRules) HallelShalemRecited(c calendar.Calendar) bool {
	if !r.HallelRecited(c) {
		return false
	}
	if c.IsRoshChodesh() && !c.IsChanukah() {
		return false
	}
	day := c.Day()
	if c.Month() == calendar.Nissan && (c.InIsrael && day > 15 || !c.InIsrael && day > 16) {
		return false
	}
	return true
}

func (r TefilaRules) AlHanissimRecited(c calendar.Calendar) bool {
	return c.IsPurim() || c.IsChanukah()
}

func (r TefilaRules) YaalehVeyavoRecited(c calendar.Calendar) bool {
	return c.IsPesach() || c.IsShavuos() || c.IsRoshHashana() || c.IsYomKippur() ||
		c.IsSuccos() || c.IsSheminiAtzeres() || c.IsSimchasTorah() || c.IsRoshChodesh()
}

// MizmorLesodaRecited reports whether Mizmor Lesoda is said in Shacharis.
func (r TefilaRules) MizmorLesodaRecited(c calendar.Calendar) bool {
	if c.IsAssurBemelacha() {
		return false
	}
	if r.MizmorLesodaRecitedErevYomKippurAndPesach {
		return true
	}
	h, ok := c.Holiday()
	if ok && (h == calendar.ErevYomKippur || h == calendar.ErevPesach) {
		return false
	}
	return !c.IsCholHamoedPesach()
}

// Seasonal prayers follow the calendar; TefilaRules customs do not change them.

func (r TefilaRules) VeseinTalUmatarStartDate(c calendar.Calendar) bool {
	return c.IsVeseinTalUmatarStartDate()
}

func (r TefilaRules) VeseinTalUmatarStartingTonight(c calendar.Calendar) bool {
	return c.IsVeseinTalUmatarStartingTonight()
}

func (r TefilaRules) VeseinTalUmatarRecited(c calendar.Calendar) bool {
	return c.IsVeseinTalUmatarRecited()
}

func (r TefilaRules) VeseinBerachaRecited(c calendar.Calendar) bool {
	return c.IsVeseinBerachaRecited()
}

func (r TefilaRules) MashivHaruachStartDate(c calendar.Calendar) bool {
	return c.IsMashivHaruachStartDate()
}

func (r TefilaRules) MashivHaruachEndDate(c calendar.Calendar) bool {
	return c.IsMashivHaruachEndDate()
}

func (r TefilaRules) MashivHaruachRecited(c calendar.Calendar) bool {
	return c.IsMashivHaruachRecited()
}

func (r TefilaRules) MoridHatalRecited(c calendar.Calendar) bool {
	return c.IsMoridHatalRecited()
}

// Tefila is the set of prayer variations for one day.
type Tefila struct {
	TachanunShacharis bool `json:"tachanun_shacharis" yaml:"tachanun_shacharis"`
	TachanunMincha    bool `json:"tachanun_mincha" yaml:"tachanun_mincha"`
	Hallel            bool `json:"hallel" yaml:"hallel"`
	HallelShalem      bool `json:"hallel_shalem" yaml:"hallel_shalem"`
	AlHanissim        bool `json:"al_hanissim" yaml:"al_hanissim"`
	YaalehVeyavo      bool `json:"yaaleh_veyavo" yaml:"yaaleh_veyavo"`
	MizmorLesoda      bool `json:"mizmor_lesoda" yaml:"mizmor_lesoda"`
	VeseinTalUmatar   bool `json:"vesein_tal_umatar" yaml:"vesein_tal_umatar"`
	MashivHaruach     bool `json:"mashiv_haruach" yaml:"mashiv_haruach"`
	MoridHatal        bool `json:"morid_hatal" yaml:"morid_hatal"`
}

// Day evaluates every rule for c.
func (r TefilaRules) Day(c calendar.Calendar) Tefila {
	return Tefila{
		TachanunShacharis: r.TachanunShacharis(c),
		TachanunMincha:    r.TachanunMincha(c),
		Hallel:            r.HallelRecited(c),
		HallelShalem:      r.HallelShalemRecited(c),
		AlHanissim:        r.AlHanissimRecited(c),
		YaalehVeyavo:      r.YaalehVeyavoRecited(c),
		MizmorLesoda:      r.MizmorLesodaRecited(c),
		VeseinTalUmatar:   r.VeseinTalUmatarRecited(c),
		MashivHaruach:     r.MashivHaruachRecited(c),
		MoridHatal:        r.MoridHatalRecited(c),
	}
}
