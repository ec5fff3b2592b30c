package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/zapponejosh/zmanim-api/internal/calendar"
	"github.com/zapponejosh/zmanim-api/internal/geo"
)

// place is the observer a request resolved to.
type place struct {
	loc      geo.Location
	inIsrael bool
}

// locationView is the JSON form of a geo.Location.
type locationView struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`
	Timezone  string  `json:"timezone"`
	InIsrael  bool    `json:"in_israel"`
}

func (p place) view() locationView {
	return locationView{
		Name:      p.loc.Name(),
		Latitude:  p.loc.Latitude(),
		Longitude: p.loc.Longitude(),
		Elevation: p.loc.Elevation(),
		Timezone:  p.loc.TimeZone().String(),
		InIsrael:  p.inIsrael,
	}
}

// place resolves the observer from the query:
//
//   - location=<id or name> loads a saved location
//   - lat and lon (with optional elev and tz) give an ad hoc one
//   - neither falls back to the configured default
//
// israel=true|false overrides the Israel flag in every case.
func (h *Handlers) place(ctx context.Context, r *http.Request) (place, error) {
	q := r.URL.Query()
	var p place

	switch {
	case q.Get("location") != "":
		saved, err := h.db.GetLocation(ctx, q.Get("location"))
		if err != nil {
			saved, err = h.db.GetLocationByName(ctx, q.Get("location"))
		}
		if err != nil {
			return place{}, err
		}
		loc, err := saved.Geo()
		if err != nil {
			return place{}, err
		}
		p = place{loc: loc, inIsrael: saved.InIsrael}

	case q.Get("lat") != "" || q.Get("lon") != "":
		lat, err := floatParam(q.Get("lat"), "lat")
		if err != nil {
			return place{}, err
		}
		lon, err := floatParam(q.Get("lon"), "lon")
		if err != nil {
			return place{}, err
		}
		elev := 0.0
		if s := q.Get("elev"); s != "" {
			if elev, err = floatParam(s, "elev"); err != nil {
				return place{}, err
			}
		}
		tz := h.defaultPlace.loc.TimeZone()
		if s := q.Get("tz"); s != "" {
			if tz, err = time.LoadLocation(s); err != nil {
				return place{}, fmt.Errorf("%w: unknown timezone %q", geo.ErrInvalidLocation, s)
			}
		}
		loc, err := geo.New("Custom", lat, lon, elev, tz)
		if err != nil {
			return place{}, err
		}
		p = place{loc: loc, inIsrael: h.cfg.InIsrael}

	default:
		p = h.defaultPlace
	}

	if s := q.Get("israel"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return place{}, fmt.Errorf("%w: israel must be true or false", geo.ErrInvalidLocation)
		}
		p.inIsrael = b
	}
	return p, nil
}

func floatParam(s, name string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: %s is required", geo.ErrInvalidLocation, name)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", geo.ErrInvalidLocation, name)
	}
	return f, nil
}

// dateParam parses a YYYY-MM-DD query value, defaulting to today in tz.
func dateParam(r *http.Request, key string, tz *time.Location) (time.Time, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		y, m, d := time.Now().In(tz).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, tz), nil
	}
	t, err := calendar.ParseDateIn(s, tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q, use YYYY-MM-DD", calendar.ErrInvalidDate, key, s)
	}
	return t, nil
}

// intParam parses a required integer query value.
func intParam(r *http.Request, key string) (int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, fmt.Errorf("%w: %s is required", calendar.ErrInvalidDate, key)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", calendar.ErrInvalidDate, key)
	}
	return n, nil
}
