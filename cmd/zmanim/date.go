package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/zmanim-api/internal/calendar"
)

// dayView resolves the flags to a calendar view of one day.
func (o *RootOptions) dayView(cmd *cobra.Command) (calendar.DayView, error) {
	p, err := o.resolvePlace(cmd)
	if err != nil {
		return calendar.DayView{}, err
	}
	date, err := o.date(p.loc.TimeZone())
	if err != nil {
		return calendar.DayView{}, err
	}
	info, err := calendar.NewDateResolver(p.inIsrael).ResolveDate(cmd.Context(), date)
	if err != nil {
		return calendar.DayView{}, err
	}
	return info.View(o.Hebrew), nil
}

// NewDateCommand creates the date command.
func NewDateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "date",
		Aliases: []string{"day"},
		Short:   "Print the Hebrew date and what falls on it",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := rootOpts.dayView(cmd)
			if err != nil {
				return err
			}
			return rootOpts.emit(cmd, v, func(w io.Writer) {
				header(w, v.Date, v.Weekday)
				row(w, "Hebrew date", v.HebrewDate)
				row(w, "Year type", v.YearType)
				rowIf(w, "Holiday", v.Holiday)
				if v.DayOfOmer > 0 {
					row(w, "Omer", calendar.Ordinal(v.DayOfOmer)+" day")
				}
				if v.DayOfChanukah > 0 {
					row(w, "Chanukah", calendar.Ordinal(v.DayOfChanukah)+" candle")
				}
				rowIf(w, "Parsha", v.Parsha)
				rowIf(w, "Special Shabbos", v.SpecialShabbos)
				rowIf(w, "Daf yomi", v.DafBavli)
				rowIf(w, "Yerushalmi", v.DafYerushalmi)
				if len(v.Observances) > 0 {
					row(w, "Observances", strings.Join(v.Observances, ", "))
				}
				row(w, "Vesein tal umatar", yesNo(v.VeseinTalUmatar))
				row(w, "Mashiv haruach", yesNo(v.MashivHaruach))
			})
		},
	}
}

type parshaReport struct {
	Date           string `json:"date" yaml:"date"`
	Parsha         string `json:"parsha,omitempty" yaml:"parsha,omitempty"`
	Upcoming       string `json:"upcoming" yaml:"upcoming"`
	UpcomingDate   string `json:"upcoming_date" yaml:"upcoming_date"`
	SpecialShabbos string `json:"special_shabbos,omitempty" yaml:"special_shabbos,omitempty"`
}

// NewParshaCommand creates the parsha command.
func NewParshaCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parsha",
		Short: "Print the weekly Torah portion",
		Long: `Print the parsha read on the date when it is Shabbos, and the next
Shabbos that reads a parsha. The schedule differs in Israel; see --israel.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := rootOpts.dayView(cmd)
			if err != nil {
				return err
			}
			r := parshaReport{
				Date:           v.Date,
				Parsha:         v.Parsha,
				Upcoming:       v.UpcomingParsha,
				UpcomingDate:   v.UpcomingParshaDate,
				SpecialShabbos: v.SpecialShabbos,
			}
			return rootOpts.emit(cmd, r, func(w io.Writer) {
				header(w, r.Date)
				rowIf(w, "Parsha", r.Parsha)
				row(w, "Upcoming", fmt.Sprintf("%s (%s)", r.Upcoming, r.UpcomingDate))
				rowIf(w, "Special Shabbos", r.SpecialShabbos)
			})
		},
	}
}

type dafReport struct {
	Date       string `json:"date" yaml:"date"`
	Bavli      string `json:"bavli,omitempty" yaml:"bavli,omitempty"`
	Yerushalmi string `json:"yerushalmi,omitempty" yaml:"yerushalmi,omitempty"`
}

// NewDafCommand creates the daf command.
func NewDafCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "daf",
		Short: "Print the daf yomi, Bavli and Yerushalmi",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := rootOpts.dayView(cmd)
			if err != nil {
				return err
			}
			r := dafReport{Date: v.Date, Bavli: v.DafBavli, Yerushalmi: v.DafYerushalmi}
			return rootOpts.emit(cmd, r, func(w io.Writer) {
				header(w, r.Date)
				rowIf(w, "Bavli", r.Bavli)
				if r.Yerushalmi == "" {
					row(w, "Yerushalmi", faint("no daf today"))
				} else {
					row(w, "Yerushalmi", r.Yerushalmi)
				}
			})
		},
	}
}
