package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/zmanim-api/internal/calendar"
)

type moladReport struct {
	Year     int       `json:"year" yaml:"year"`
	Month    string    `json:"month" yaml:"month"`
	Molad    string    `json:"molad" yaml:"molad"`
	Instant  time.Time `json:"instant" yaml:"instant"`
	Timezone string    `json:"timezone" yaml:"timezone"`

	TchilasKiddushLevana3Days     time.Time `json:"tchilas_kiddush_levana_3_days" yaml:"tchilas_kiddush_levana_3_days"`
	TchilasKiddushLevana7Days     time.Time `json:"tchilas_kiddush_levana_7_days" yaml:"tchilas_kiddush_levana_7_days"`
	SofKiddushLevanaBetweenMoldos time.Time `json:"sof_kiddush_levana_between_moldos" yaml:"sof_kiddush_levana_between_moldos"`
	SofKiddushLevana15Days        time.Time `json:"sof_kiddush_levana_15_days" yaml:"sof_kiddush_levana_15_days"`
}

// NewMoladCommand creates the molad command.
func NewMoladCommand(rootOpts *RootOptions) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "molad",
		Short: "Print the molad and the kiddush levana window for a month",
		Long: `Print the molad of a Hebrew month and the times kiddush levana may
first and last be said. Months are numbered from Nissan (1) to Adar II (13).
Without --year and --month the month of --date is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rootOpts.resolvePlace(cmd)
			if err != nil {
				return err
			}
			tz := p.loc.TimeZone()

			d, err := moladMonth(rootOpts, tz, year, month)
			if err != nil {
				return err
			}

			name := d.Month().Name(d.IsLeapYear())
			if rootOpts.Hebrew {
				name = d.Month().HebrewName(d.IsLeapYear())
			}
			in := func(t time.Time) time.Time { return t.In(tz).Truncate(time.Second) }
			r := moladReport{
				Year:     d.Year(),
				Month:    name,
				Molad:    d.Molad().String(),
				Instant:  in(d.MoladInstant()),
				Timezone: tz.String(),

				TchilasKiddushLevana3Days:     in(d.TchilasKiddushLevana3Days()),
				TchilasKiddushLevana7Days:     in(d.TchilasKiddushLevana7Days()),
				SofKiddushLevanaBetweenMoldos: in(d.SofKiddushLevanaBetweenMoldos()),
				SofKiddushLevana15Days:        in(d.SofKiddushLevana15Days()),
			}

			const layout = "Mon 2006-01-02 15:04:05"
			return rootOpts.emit(cmd, r, func(w io.Writer) {
				header(w, "Molad", r.Month, fmt.Sprint(r.Year))
				row(w, "Molad", r.Molad)
				row(w, "Instant", hi(r.Instant.Format(layout)))
				row(w, "Earliest (3 days)", r.TchilasKiddushLevana3Days.Format(layout))
				row(w, "Earliest (7 days)", r.TchilasKiddushLevana7Days.Format(layout))
				row(w, "Latest (between moldos)", r.SofKiddushLevanaBetweenMoldos.Format(layout))
				row(w, "Latest (15 days)", r.SofKiddushLevana15Days.Format(layout))
				fmt.Fprintln(w, faint("  times in "+r.Timezone))
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Hebrew year")
	cmd.Flags().IntVar(&month, "month", 0, "Hebrew month, 1 (Nissan) to 13 (Adar II)")
	return cmd
}

// moladMonth picks the month from --year/--month, or from --date.
func moladMonth(opts *RootOptions, tz *time.Location, year, month int) (calendar.Date, error) {
	if year != 0 || month != 0 {
		if year == 0 || month == 0 {
			return calendar.Date{}, fmt.Errorf("%w: --year and --month go together", calendar.ErrInvalidDate)
		}
		return calendar.FromHebrew(year, calendar.Month(month), 1)
	}
	date, err := opts.date(tz)
	if err != nil {
		return calendar.Date{}, err
	}
	today, err := calendar.FromGregorian(date)
	if err != nil {
		return calendar.Date{}, err
	}
	return calendar.FromHebrew(today.Year(), today.Month(), 1)
}
