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

type zmanReport struct {
	Key  string    `json:"key" yaml:"key"`
	Name string    `json:"name" yaml:"name"`
	Time time.Time `json:"time" yaml:"time"`
}

type timesReport struct {
	Date       string         `json:"date" yaml:"date"`
	HebrewDate string         `json:"hebrew_date" yaml:"hebrew_date"`
	Location   locationReport `json:"location" yaml:"location"`
	Zmanim     []zmanReport   `json:"zmanim" yaml:"zmanim"`
	Tefila     *zmanim.Tefila `json:"tefila,omitempty" yaml:"tefila,omitempty"`
	Missing    []string       `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// NewTimesCommand creates the times command.
func NewTimesCommand(rootOpts *RootOptions) *cobra.Command {
	var tefila bool

	cmd := &cobra.Command{
		Use:   "times [zman...]",
		Short: "Print the zmanim for a day",
		Long: `Print the zmanim for a day, in the order they occur.

With arguments only the named zmanim are printed, for example
"zmanim times sunrise sof_zman_shma_gra tzais". A zman that does not occur
at the location that day, as in a polar summer, is listed as missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimes(cmd, rootOpts, args, tefila)
		},
	}
	cmd.Flags().BoolVar(&tefila, "tefila", false, "also print the liturgical additions for the day")
	return cmd
}

func runTimes(cmd *cobra.Command, opts *RootOptions, args []string, withTefila bool) error {
	selected := zmanim.Zmanim()
	if len(args) > 0 {
		var bad []string
		selected, bad = zmanim.ParseZmanim(strings.Join(args, ","))
		if len(bad) > 0 {
			return fmt.Errorf("unknown zmanim: %s", strings.Join(bad, ", "))
		}
	}

	p, err := opts.resolvePlace(cmd)
	if err != nil {
		return err
	}
	date, err := opts.date(p.loc.TimeZone())
	if err != nil {
		return err
	}
	info, err := calendar.NewDateResolver(p.inIsrael).ResolveDate(cmd.Context(), date)
	if err != nil {
		return err
	}

	zc := zmanim.New(astro.New(date, p.loc), opts.zmanimOptions())
	cat := zc.Select(selected)

	report := timesReport{
		Date:       calendar.FormatDate(date),
		HebrewDate: info.View(opts.Hebrew).HebrewDate,
		Location:   p.report(),
		Zmanim:     []zmanReport{},
	}
	for _, e := range zmanim.Sorted(cat) {
		report.Zmanim = append(report.Zmanim, zmanReport{
			Key:  e.Zman.Key(),
			Name: calendar.Name(e.Zman, opts.Hebrew),
			Time: e.Time.Truncate(time.Second),
		})
	}
	for _, z := range selected {
		if _, ok := cat[z]; !ok {
			report.Missing = append(report.Missing, z.Key())
		}
	}
	if withTefila {
		t := zmanim.DefaultTefilaRules().Day(info.Calendar)
		report.Tefila = &t
	}

	return opts.emit(cmd, report, func(w io.Writer) {
		printTimes(w, &report, opts.Hebrew)
	})
}

func printTimes(w io.Writer, r *timesReport, hebrew bool) {
	header(w, r.Location.Name, r.Date, r.HebrewDate)
	fmt.Fprintln(w, faint(fmt.Sprintf("  %.4f, %.4f  %.0fm  %s",
		r.Location.Latitude, r.Location.Longitude, r.Location.Elevation, r.Location.Timezone)))
	fmt.Fprintln(w)

	for _, z := range r.Zmanim {
		fmt.Fprintf(w, "  %s %s\n", pad(z.Name, 44), hi(z.Time.Format("15:04:05")))
	}
	for _, key := range r.Missing {
		name := key
		if z, ok := zmanim.ParseZman(key); ok {
			name = calendar.Name(z, hebrew)
		}
		fmt.Fprintf(w, "  %s %s\n", pad(name, 44), faint("--:--:--"))
	}

	if t := r.Tefila; t != nil {
		fmt.Fprintln(w)
		row(w, "Tachanun (shacharis)", yesNo(t.TachanunShacharis))
		row(w, "Tachanun (mincha)", yesNo(t.TachanunMincha))
		row(w, "Hallel", yesNo(t.Hallel))
		row(w, "Hallel shalem", yesNo(t.HallelShalem))
		row(w, "Al hanissim", yesNo(t.AlHanissim))
		row(w, "Yaaleh veyavo", yesNo(t.YaalehVeyavo))
		row(w, "Mizmor lesoda", yesNo(t.MizmorLesoda))
		row(w, "Vesein tal umatar", yesNo(t.VeseinTalUmatar))
		row(w, "Mashiv haruach", yesNo(t.MashivHaruach))
		row(w, "Morid hatal", yesNo(t.MoridHatal))
	}
}
