package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/zmanim-api/internal/astro"
	"github.com/zapponejosh/zmanim-api/internal/calendar"
	"github.com/zapponejosh/zmanim-api/internal/zmanim"
)

// luachZmanim are the columns of the month table.
var luachZmanim = []zmanim.Zman{
	zmanim.AlosHashachar,
	zmanim.Sunrise,
	zmanim.SofZmanShmaGRA,
	zmanim.Chatzos,
	zmanim.CandleLighting,
	zmanim.Sunset,
	zmanim.Tzais,
}

type luachDay struct {
	Date       string               `json:"date" yaml:"date"`
	Weekday    string               `json:"weekday" yaml:"weekday"`
	HebrewDate string               `json:"hebrew_date" yaml:"hebrew_date"`
	Events     []string             `json:"events,omitempty" yaml:"events,omitempty"`
	Zmanim     map[string]time.Time `json:"zmanim" yaml:"zmanim"`

	shabbos bool
}

type luachReport struct {
	Month    string         `json:"month" yaml:"month"`
	Location locationReport `json:"location" yaml:"location"`
	Days     []luachDay     `json:"days" yaml:"days"`
}

// NewLuachCommand creates the luach command.
func NewLuachCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "luach",
		Short: "Print a month of days with their main zmanim",
		Long: `Print every day of the civil month containing --date, with the Hebrew
date, holidays and parsha, and the main zmanim. Candle lighting is shown
only on days it applies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLuach(cmd, rootOpts)
		},
	}
}

func runLuach(cmd *cobra.Command, opts *RootOptions) error {
	p, err := opts.resolvePlace(cmd)
	if err != nil {
		return err
	}
	date, err := opts.date(p.loc.TimeZone())
	if err != nil {
		return err
	}
	start := date.AddDate(0, 0, 1-date.Day())
	end := start.AddDate(0, 1, -1)

	days, err := calendar.NewDateResolver(p.inIsrael).ResolveRange(cmd.Context(), start, end)
	if err != nil {
		return err
	}

	report := luachReport{
		Month:    start.Format("2006-01"),
		Location: p.report(),
	}
	zopts := opts.zmanimOptions()
	for _, info := range days {
		v := info.View(opts.Hebrew)
		day := luachDay{
			Date:       v.Date,
			Weekday:    v.Weekday,
			HebrewDate: v.HebrewDate,
			Zmanim:     map[string]time.Time{},
			shabbos:    info.Civil.Weekday() == time.Saturday,
		}
		for _, e := range []string{v.Holiday, v.Parsha, v.SpecialShabbos} {
			if e != "" {
				day.Events = append(day.Events, e)
			}
		}
		zc := zmanim.New(astro.New(info.Civil, p.loc), zopts)
		for z, t := range zc.Select(luachZmanim) {
			if z == zmanim.CandleLighting && !info.CandleLighting {
				continue
			}
			day.Zmanim[z.Key()] = t.Truncate(time.Second)
		}
		report.Days = append(report.Days, day)
	}

	return opts.emit(cmd, report, func(w io.Writer) {
		printLuach(w, &report)
	})
}

func printLuach(w io.Writer, r *luachReport) {
	header(w, r.Location.Name, r.Month, r.Location.Timezone)

	cols := make([]string, len(luachZmanim))
	for i, z := range luachZmanim {
		cols[i] = z.Key()
	}
	fmt.Fprintf(w, "%s %s %s\n",
		label(pad("date", 15)), label(pad("hebrew", 22)), label(strings.Join(abbrev(cols), " ")))

	for _, d := range r.Days {
		line := fmt.Sprintf("%s %s ", pad(d.Date+" "+string([]rune(d.Weekday)[:3]), 15), pad(d.HebrewDate, 22))
		for _, key := range cols {
			if t, ok := d.Zmanim[key]; ok {
				line += t.Format("15:04") + "  "
			} else {
				line += "       "
			}
		}
		if len(d.Events) > 0 {
			line += hi(strings.Join(d.Events, ", "))
		}
		if d.shabbos {
			fmt.Fprintln(w, title(line))
		} else {
			fmt.Fprintln(w, line)
		}
	}
}

// abbrev shortens column keys to the five character time width.
func abbrev(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		k = strings.ReplaceAll(k, "_", "")
		if len(k) > 5 {
			k = k[:5]
		}
		out[i] = pad(k, 6)
	}
	return out
}
