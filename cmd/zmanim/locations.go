package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zapponejosh/zmanim-api/internal/database"
)

// NewLocationsCommand creates the locations command.
func NewLocationsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "locations",
		Aliases: []string{"ls"},
		Short:   "List saved locations",
		Long: `List the locations saved in the database (see --db). Any of them can be
passed to the other commands with --location.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := rootOpts.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			locations, err := db.ListLocations(cmd.Context())
			if err != nil {
				return fmt.Errorf("list locations: %w", err)
			}

			return rootOpts.emit(cmd, locations, func(w io.Writer) {
				printLocations(w, locations)
			})
		},
	}
}

func printLocations(w io.Writer, locations []database.Location) {
	if len(locations) == 0 {
		fmt.Fprintln(w, "No saved locations. Load some with the import command.")
		return
	}
	for _, l := range locations {
		israel := ""
		if l.InIsrael {
			israel = color.BlueString(" israel")
		}
		fmt.Fprintf(w, "%s %s %s%s\n",
			color.GreenString(pad(l.Name, 24)),
			faint(fmt.Sprintf("(%.4f, %.4f, %.0fm)", l.Latitude, l.Longitude, l.Elevation)),
			l.Timezone,
			israel)
	}
}
