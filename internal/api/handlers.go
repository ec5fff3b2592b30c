package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/zapponejosh/zmanim-api/internal/astro"
	"github.com/zapponejosh/zmanim-api/internal/cache"
	"github.com/zapponejosh/zmanim-api/internal/calendar"
	"github.com/zapponejosh/zmanim-api/internal/config"
	"github.com/zapponejosh/zmanim-api/internal/database"
	"github.com/zapponejosh/zmanim-api/internal/logger"
	"github.com/zapponejosh/zmanim-api/internal/solar"
	"github.com/zapponejosh/zmanim-api/internal/zmanim"
)

// maxRangeDays bounds /zmanim/range.
const maxRangeDays = 31

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db           *database.DB
	cache        cache.Cache
	cfg          *config.Config
	defaultPlace place
	rules        zmanim.TefilaRules
}

// NewHandlers creates a new Handlers instance. A nil cache disables caching.
func NewHandlers(db *database.DB, c cache.Cache, cfg *config.Config) (*Handlers, error) {
	loc, err := cfg.DefaultLocation()
	if err != nil {
		return nil, fmt.Errorf("default location: %w", err)
	}
	if c == nil {
		c = cache.Noop{}
	}
	return &Handlers{
		db:           db,
		cache:        c,
		cfg:          cfg,
		defaultPlace: place{loc: loc, inIsrael: cfg.InIsrael},
		rules:        zmanim.DefaultTefilaRules(),
	}, nil
}

func (h *Handlers) options() zmanim.Options {
	opts := zmanim.DefaultOptions()
	opts.CandleLightingOffset = h.cfg.CandleLightingOffset()
	return opts
}

// fail writes the response for err: a 4xx when the request caused it,
// otherwise a logged 500 carrying msg.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if clientError(w, err) {
		return
	}
	logger.Error(r.Context(), msg, err, slog.String("path", r.URL.Path))
	WriteInternalError(w, msg)
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		logger.Warn(r.Context(), "health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}
	WriteSuccess(w, map[string]string{"status": "healthy"})
}

// =============================================================================
// Zmanim
// =============================================================================

type zmanView struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Time string `json:"time"`
}

type zmanimDay struct {
	Date     string           `json:"date"`
	Location locationView     `json:"location"`
	Day      calendar.DayView `json:"day"`
	Zmanim   []zmanView       `json:"zmanim"`
	Tefila   zmanim.Tefila    `json:"tefila"`
}

// zmanimFor computes one day. A zman that does not occur at the location
// (polar day or night) is left out of the list.
func (h *Handlers) zmanimFor(ctx context.Context, date time.Time, p place, selected []zmanim.Zman, hebrew bool) (*zmanimDay, error) {
	info, err := calendar.NewDateResolver(p.inIsrael).ResolveDate(ctx, date)
	if err != nil {
		return nil, err
	}

	zc := zmanim.New(astro.New(date, p.loc), h.options())
	if selected == nil {
		selected = zmanim.Zmanim()
	}

	day := &zmanimDay{
		Date:     calendar.FormatDate(date),
		Location: p.view(),
		Day:      info.View(hebrew),
		Zmanim:   []zmanView{},
		Tefila:   h.rules.Day(info.Calendar),
	}
	for _, e := range zmanim.Sorted(zc.Select(selected)) {
		day.Zmanim = append(day.Zmanim, zmanView{
			Key:  e.Zman.Key(),
			Name: calendar.Name(e.Zman, hebrew),
			Time: e.Time.Format(time.RFC3339),
		})
	}
	return day, nil
}

// selectedZmanim reads the optional zmanim=key,key filter.
func selectedZmanim(r *http.Request) ([]zmanim.Zman, error) {
	list := r.URL.Query().Get("zmanim")
	if list == "" {
		return nil, nil
	}
	selected, bad := zmanim.ParseZmanim(list)
	if len(bad) > 0 {
		return nil, fmt.Errorf("unknown zmanim: %s", strings.Join(bad, ", "))
	}
	return selected, nil
}

// GetZmanim handles GET /api/v1/zmanim
func (h *Handlers) GetZmanim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := h.place(ctx, r)
	if err != nil {
		h.fail(w, r, "Failed to resolve location", err)
		return
	}
	date, err := dateParam(r, "date", p.loc.TimeZone())
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	selected, err := selectedZmanim(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	hebrew := wantsHebrew(r)

	key := cache.Key("zmanim", calendar.FormatDate(date),
		fmt.Sprintf("%.5f,%.5f,%.1f", p.loc.Latitude(), p.loc.Longitude(), p.loc.Elevation()),
		p.loc.TimeZone().String(), fmt.Sprint(p.inIsrael), fmt.Sprint(hebrew), r.URL.Query().Get("zmanim"))

	body, hit, err := cache.Through(ctx, h.cache, key, h.cfg.CacheTTL, func() ([]byte, error) {
		day, err := h.zmanimFor(ctx, date, p, selected, hebrew)
		if err != nil {
			return nil, err
		}
		return json.Marshal(day)
	})
	if err != nil {
		h.fail(w, r, "Failed to compute zmanim", err)
		return
	}

	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	WriteSuccess(w, json.RawMessage(body))
}

// GetZmanimRange handles GET /api/v1/zmanim/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) GetZmanimRange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.URL.Query().Get("start") == "" || r.URL.Query().Get("end") == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}
	p, err := h.place(ctx, r)
	if err != nil {
		h.fail(w, r, "Failed to resolve location", err)
		return
	}
	start, err := dateParam(r, "start", p.loc.TimeZone())
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	end, err := dateParam(r, "end", p.loc.TimeZone())
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	if start.After(end) {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}
	if days := int(math.Round(end.Sub(start).Hours()/24)) + 1; days > maxRangeDays {
		WriteBadRequest(w, fmt.Sprintf("Date range cannot exceed %d days", maxRangeDays))
		return
	}
	selected, err := selectedZmanim(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	hebrew := wantsHebrew(r)

	days := []*zmanimDay{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day, err := h.zmanimFor(ctx, d, p, selected, hebrew)
		if err != nil {
			h.fail(w, r, "Failed to compute zmanim", err)
			return
		}
		days = append(days, day)
	}

	WriteSuccess(w, map[string]any{
		"start": calendar.FormatDate(start),
		"end":   calendar.FormatDate(end),
		"days":  days,
	})
}

// =============================================================================
// Hebrew calendar
// =============================================================================

// dayInfo resolves the date and Israel flag a calendar request names.
func (h *Handlers) dayInfo(r *http.Request) (*calendar.DayInfo, error) {
	p, err := h.place(r.Context(), r)
	if err != nil {
		return nil, err
	}
	date, err := dateParam(r, "date", p.loc.TimeZone())
	if err != nil {
		return nil, err
	}
	return calendar.NewDateResolver(p.inIsrael).ResolveDate(r.Context(), date)
}

// GetHebrewDate handles GET /api/v1/hebrew-date
func (h *Handlers) GetHebrewDate(w http.ResponseWriter, r *http.Request) {
	info, err := h.dayInfo(r)
	if err != nil {
		h.fail(w, r, "Failed to resolve date", err)
		return
	}
	WriteSuccess(w, info.View(wantsHebrew(r)))
}

// ConvertHebrewDate handles GET /api/v1/hebrew-date/convert?year=&month=&day=
//
// Months are numbered from Nissan (1) to Adar II (13).
func (h *Handlers) ConvertHebrewDate(w http.ResponseWriter, r *http.Request) {
	year, err := intParam(r, "year")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	month, err := intParam(r, "month")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	day, err := intParam(r, "day")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	d, err := calendar.FromHebrew(year, calendar.Month(month), day)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	p, err := h.place(r.Context(), r)
	if err != nil {
		h.fail(w, r, "Failed to resolve location", err)
		return
	}
	info, err := calendar.NewDateResolver(p.inIsrael).ResolveDate(r.Context(), d.Gregorian())
	if err != nil {
		h.fail(w, r, "Failed to resolve date", err)
		return
	}
	WriteSuccess(w, info.View(wantsHebrew(r)))
}

// GetParsha handles GET /api/v1/parsha
func (h *Handlers) GetParsha(w http.ResponseWriter, r *http.Request) {
	info, err := h.dayInfo(r)
	if err != nil {
		h.fail(w, r, "Failed to resolve date", err)
		return
	}
	v := info.View(wantsHebrew(r))
	WriteSuccess(w, map[string]string{
		"date":            v.Date,
		"parsha":          v.Parsha,
		"upcoming":        v.UpcomingParsha,
		"upcoming_date":   v.UpcomingParshaDate,
		"special_shabbos": v.SpecialShabbos,
	})
}

// GetDaf handles GET /api/v1/daf
func (h *Handlers) GetDaf(w http.ResponseWriter, r *http.Request) {
	info, err := h.dayInfo(r)
	if err != nil {
		h.fail(w, r, "Failed to resolve date", err)
		return
	}
	v := info.View(wantsHebrew(r))
	WriteSuccess(w, map[string]string{
		"date":       v.Date,
		"bavli":      v.DafBavli,
		"yerushalmi": v.DafYerushalmi,
	})
}

type moladView struct {
	Year     int    `json:"year"`
	Month    string `json:"month"`
	Date     string `json:"date"`
	Hours    int    `json:"hours"`
	Minutes  int    `json:"minutes"`
	Chalakim int    `json:"chalakim"`
	Instant  string `json:"instant"`

	TchilasKiddushLevana3Days     string `json:"tchilas_kiddush_levana_3_days"`
	TchilasKiddushLevana7Days     string `json:"tchilas_kiddush_levana_7_days"`
	SofKiddushLevanaBetweenMoldos string `json:"sof_kiddush_levana_between_moldos"`
	SofKiddushLevana15Days        string `json:"sof_kiddush_levana_15_days"`
}

// GetMolad handles GET /api/v1/molad?year=&month=
//
// Instants are reported in the requested location's timezone.
func (h *Handlers) GetMolad(w http.ResponseWriter, r *http.Request) {
	year, err := intParam(r, "year")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	month, err := intParam(r, "month")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	d, err := calendar.FromHebrew(year, calendar.Month(month), 1)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	p, err := h.place(r.Context(), r)
	if err != nil {
		h.fail(w, r, "Failed to resolve location", err)
		return
	}

	tz := p.loc.TimeZone()
	format := func(t time.Time) string { return t.In(tz).Format(time.RFC3339) }
	m := d.Molad()
	hebrew := wantsHebrew(r)
	name := d.Month().Name(d.IsLeapYear())
	if hebrew {
		name = d.Month().HebrewName(d.IsLeapYear())
	}

	WriteSuccess(w, moladView{
		Year:     year,
		Month:    name,
		Date:     calendar.FormatDate(m.Date.Gregorian()),
		Hours:    m.Hours,
		Minutes:  m.Minutes,
		Chalakim: m.Chalakim,
		Instant:  format(m.Instant()),

		TchilasKiddushLevana3Days:     format(d.TchilasKiddushLevana3Days()),
		TchilasKiddushLevana7Days:     format(d.TchilasKiddushLevana7Days()),
		SofKiddushLevanaBetweenMoldos: format(d.SofKiddushLevanaBetweenMoldos()),
		SofKiddushLevana15Days:        format(d.SofKiddushLevana15Days()),
	})
}

// GetSeasons handles GET /api/v1/seasons?year=
//
// The Gregorian year's equinoxes and solstices, next to the first day of
// the request for rain in the Hebrew year that begins that autumn.
func (h *Handlers) GetSeasons(w http.ResponseWriter, r *http.Request) {
	year, err := intParam(r, "year")
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	if year < 1000 || year > 3000 {
		WriteBadRequest(w, "year must be between 1000 and 3000")
		return
	}

	hebrewYear := year + 3761
	WriteSuccess(w, map[string]any{
		"year":        year,
		"hebrew_year": hebrewYear,
		"seasons":     solar.SeasonsOf(year),
		"vesein_tal_umatar_start": map[string]string{
			"israel":   calendar.FormatDate(calendar.VeseinTalUmatarStart(hebrewYear, true).Gregorian()),
			"diaspora": calendar.FormatDate(calendar.VeseinTalUmatarStart(hebrewYear, false).Gregorian()),
		},
	})
}
