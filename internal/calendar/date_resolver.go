package calendar

import (
	"context"
	"fmt"
	"time"
)

// DayInfo is everything the Hebrew calendar says about one civil day.
type DayInfo struct {
	Civil    time.Time
	Calendar Calendar

	Holiday        *Holiday
	DayOfOmer      int // 0 outside the omer
	DayOfChanukah  int // 0 outside Chanukah
	Parsha         *Parsha
	Upcoming       Parsha
	UpcomingDate   Date
	SpecialShabbos *Parsha
	DafBavli       *BavliDaf
	DafYerushalmi  *YerushalmiDaf

	RoshChodesh        bool
	ErevRoshChodesh    bool
	YomTov             bool
	CholHamoed         bool
	AssurBemelacha     bool
	CandleLighting     bool
	Taanis             bool
	TaanisBechoros     bool
	AseresYemeiTeshuva bool
	YomKippurKatan     bool
	Behab              bool
	MacharChodesh      bool
	ShabbosMevorchim   bool
	BirkasHachamah     bool

	VeseinTalUmatar bool
	MashivHaruach   bool
}

// DateResolver resolves civil dates to their Hebrew calendar information.
type DateResolver struct {
	inIsrael          bool
	mukafChoma        bool
	useModernHolidays bool
}

// ResolverOption configures a DateResolver.
type ResolverOption func(*DateResolver)

// WithMukafChoma resolves Purim for a walled city.
func WithMukafChoma() ResolverOption {
	return func(dr *DateResolver) { dr.mukafChoma = true }
}

// WithModernHolidays includes the Israeli national days.
func WithModernHolidays() ResolverOption {
	return func(dr *DateResolver) { dr.useModernHolidays = true }
}

// NewDateResolver creates a new date resolver.
func NewDateResolver(inIsrael bool, opts ...ResolverOption) *DateResolver {
	dr := &DateResolver{inIsrael: inIsrael}
	for _, opt := range opts {
		opt(dr)
	}
	return dr
}

// InIsrael reports which holiday and parsha schedule the resolver uses.
func (dr *DateResolver) InIsrael() bool { return dr.inIsrael }

// Calendar returns the Hebrew calendar for the civil date of t.
func (dr *DateResolver) Calendar(t time.Time) (Calendar, error) {
	d, err := FromGregorian(t)
	if err != nil {
		return Calendar{}, err
	}
	return Calendar{
		Date:              d,
		InIsrael:          dr.inIsrael,
		MukafChoma:        dr.mukafChoma,
		UseModernHolidays: dr.useModernHolidays,
	}, nil
}

// ResolveDate converts a civil date to its DayInfo.
func (dr *DateResolver) ResolveDate(ctx context.Context, date time.Time) (*DayInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, err := dr.Calendar(date)
	if err != nil {
		return nil, fmt.Errorf("could not resolve date %s: %w", FormatDate(date), err)
	}
	return resolve(date, c), nil
}

// ResolveRange resolves every day from start to end inclusive.
func (dr *DateResolver) ResolveRange(ctx context.Context, start, end time.Time) ([]*DayInfo, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s is before start %s", ErrInvalidDate, FormatDate(end), FormatDate(start))
	}
	var days []*DayInfo
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		info, err := dr.ResolveDate(ctx, d)
		if err != nil {
			return nil, err
		}
		days = append(days, info)
	}
	return days, nil
}

func resolve(civil time.Time, c Calendar) *DayInfo {
	info := &DayInfo{
		Civil:    civil,
		Calendar: c,

		RoshChodesh:        c.IsRoshChodesh(),
		ErevRoshChodesh:    c.IsErevRoshChodesh(),
		YomTov:             c.IsYomTov(),
		CholHamoed:         c.IsCholHamoed(),
		AssurBemelacha:     c.IsAssurBemelacha(),
		CandleLighting:     c.HasCandleLighting(),
		Taanis:             c.IsTaanis(),
		TaanisBechoros:     c.IsTaanisBechoros(),
		AseresYemeiTeshuva: c.IsAseresYemeiTeshuva(),
		YomKippurKatan:     c.IsYomKippurKatan(),
		Behab:              c.IsBehab(),
		MacharChodesh:      c.IsMacharChodesh(),
		ShabbosMevorchim:   c.IsShabbosMevorchim(),
		BirkasHachamah:     c.IsBirkasHachamah(),
		VeseinTalUmatar:    c.IsVeseinTalUmatarRecited(),
		MashivHaruach:      c.IsMashivHaruachRecited(),
	}

	if h, ok := c.Holiday(); ok {
		info.Holiday = &h
	}
	if n, ok := c.DayOfOmer(); ok {
		info.DayOfOmer = n
	}
	if n, ok := c.DayOfChanukah(); ok {
		info.DayOfChanukah = n
	}
	if p, ok := c.Parsha(); ok {
		info.Parsha = &p
	}
	info.Upcoming, info.UpcomingDate = c.UpcomingParsha()
	if p, ok := c.SpecialShabbos(); ok {
		info.SpecialShabbos = &p
	}
	if d, ok := c.DafYomiBavli(); ok {
		info.DafBavli = &d
	}
	if d, ok := c.DafYomiYerushalmi(); ok {
		info.DafYerushalmi = &d
	}
	return info
}

// ============================================================================
// Presentation
// ============================================================================

// DayView is a DayInfo with every value rendered as text in one language.
type DayView struct {
	Date               string   `json:"date" yaml:"date"`
	Weekday            string   `json:"weekday" yaml:"weekday"`
	HebrewYear         int      `json:"hebrew_year" yaml:"hebrew_year"`
	HebrewMonth        int      `json:"hebrew_month" yaml:"hebrew_month"`
	HebrewDay          int      `json:"hebrew_day" yaml:"hebrew_day"`
	HebrewDate         string   `json:"hebrew_date" yaml:"hebrew_date"`
	YearType           string   `json:"year_type" yaml:"year_type"`
	Holiday            string   `json:"holiday,omitempty" yaml:"holiday,omitempty"`
	DayOfOmer          int      `json:"day_of_omer,omitempty" yaml:"day_of_omer,omitempty"`
	DayOfChanukah      int      `json:"day_of_chanukah,omitempty" yaml:"day_of_chanukah,omitempty"`
	Parsha             string   `json:"parsha,omitempty" yaml:"parsha,omitempty"`
	UpcomingParsha     string   `json:"upcoming_parsha" yaml:"upcoming_parsha"`
	UpcomingParshaDate string   `json:"upcoming_parsha_date" yaml:"upcoming_parsha_date"`
	SpecialShabbos     string   `json:"special_shabbos,omitempty" yaml:"special_shabbos,omitempty"`
	DafBavli           string   `json:"daf_bavli,omitempty" yaml:"daf_bavli,omitempty"`
	DafYerushalmi      string   `json:"daf_yerushalmi,omitempty" yaml:"daf_yerushalmi,omitempty"`
	Observances        []string `json:"observances,omitempty" yaml:"observances,omitempty"`
	VeseinTalUmatar    bool     `json:"vesein_tal_umatar" yaml:"vesein_tal_umatar"`
	MashivHaruach      bool     `json:"mashiv_haruach" yaml:"mashiv_haruach"`
}

// View renders the day in English, or in Hebrew when hebrew is set.
func (di *DayInfo) View(hebrew bool) DayView {
	c := di.Calendar
	v := DayView{
		Date:               FormatDate(di.Civil),
		Weekday:            DayName(di.Civil),
		HebrewYear:         c.Year(),
		HebrewMonth:        int(c.Month()),
		HebrewDay:          c.Day(),
		HebrewDate:         c.String(),
		YearType:           Name(c.YearType(), hebrew),
		DayOfOmer:          di.DayOfOmer,
		DayOfChanukah:      di.DayOfChanukah,
		UpcomingParsha:     Name(di.Upcoming, hebrew),
		UpcomingParshaDate: FormatDate(di.UpcomingDate.Gregorian()),
		VeseinTalUmatar:    di.VeseinTalUmatar,
		MashivHaruach:      di.MashivHaruach,
	}
	if hebrew {
		v.Weekday = HebrewWeekday(di.Civil.Weekday())
		v.HebrewDate = c.Hebrew()
	}
	if di.Holiday != nil {
		v.Holiday = Name(*di.Holiday, hebrew)
	}
	if di.Parsha != nil {
		v.Parsha = Name(*di.Parsha, hebrew)
	}
	if di.SpecialShabbos != nil {
		v.SpecialShabbos = Name(*di.SpecialShabbos, hebrew)
	}
	if di.DafBavli != nil {
		v.DafBavli = Name(*di.DafBavli, hebrew)
	}
	if di.DafYerushalmi != nil {
		v.DafYerushalmi = Name(*di.DafYerushalmi, hebrew)
	}

	flags := []struct {
		on   bool
		name Holiday
	}{
		{di.RoshChodesh, RoshChodesh},
		{di.YomKippurKatan, YomKippurKatan},
		{di.Behab, Behab},
	}
	for _, f := range flags {
		if f.on {
			v.Observances = append(v.Observances, Name(f.name, hebrew))
		}
	}
	return v
}
