// Package render writes resolved combo tables in the supported output
// formats.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/bodegafresh/qmkmap/internal/qmk"
)

// Format selects the table output style.
type Format string

const (
	FormatPlain Format = "plain"
	FormatMD    Format = "md"
	FormatCSV   Format = "csv"
)

// Headers is the fixed column order for every format.
var Headers = []string{"Character", "Key", "Modifier", "Keysym", "QMK"}

const placeholder = "—"

// Rows flattens combos into table cells. Missing characters become
// placeholder rows so the reader sees which requests failed.
func Rows(combos []qmk.Combo) [][]string {
	out := make([][]string, 0, len(combos))
	for _, c := range combos {
		if !c.Found {
			out = append(out, []string{c.Char, placeholder, placeholder, placeholder, "not found in this layout"})
			continue
		}
		mod := c.Modifier
		if mod == "" {
			mod = placeholder
		}
		out = append(out, []string{c.Char, c.KeyLabel, mod, c.Symbol, c.Expr})
	}
	return out
}

// Write renders combos to w in the requested format.
func Write(w io.Writer, format Format, combos []qmk.Combo) error {
	rows := Rows(combos)
	switch format {
	case FormatCSV:
		return writeCSV(w, rows)
	case FormatMD:
		return writeMarkdown(w, rows)
	case FormatPlain, "":
		writePlain(w, rows)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeMarkdown(w io.Writer, rows [][]string) error {
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(Headers, " | ")); err != nil {
		return err
	}
	sep := make([]string, len(Headers))
	for i := range sep {
		sep[i] = "---"
	}
	if _, err := fmt.Fprintf(w, "|%s|\n", strings.Join(sep, "|")); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | ")); err != nil {
			return err
		}
	}
	return nil
}

func writePlain(w io.Writer, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(Headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(false)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}
