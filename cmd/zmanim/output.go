package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	title = color.New(color.Bold).SprintFunc()
	label = color.New(color.FgCyan).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
	hi    = color.New(color.FgYellow).SprintFunc()
)

// emit writes v as JSON or YAML, or calls table for the table format.
func (o *RootOptions) emit(cmd *cobra.Command, v any, table func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	switch o.Output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		table(w)
		return nil
	}
}

// row prints one aligned key/value line.
func row(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "  %s %v\n", label(pad(key, 28)), value)
}

// rowIf prints the line only for a non-empty value.
func rowIf(w io.Writer, key, value string) {
	if value != "" {
		row(w, key, value)
	}
}

// pad right-pads by rune count so Hebrew names line up.
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func header(w io.Writer, parts ...string) {
	fmt.Fprintln(w, title(strings.Join(parts, "  ")))
}

func yesNo(b bool) string {
	if b {
		return hi("yes")
	}
	return faint("no")
}
