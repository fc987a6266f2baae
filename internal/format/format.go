// Package format renders batch results as aligned tables for interactive
// use or terse line-oriented output for piping.
package format

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/rodaine/table"
)

// Colorized stdout/stderr helpers shared by the commands.
var (
	Blue   = color.New(color.FgBlue)
	Green  = color.New(color.FgGreen)
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgHiYellow)
)

// NewTable returns a table with the standard header and first-column
// styling, writing to w.
func NewTable(w io.Writer, headers ...interface{}) table.Table {
	headerFmt := color.New(color.FgBlue, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgHiYellow).SprintfFunc()

	tbl := table.New(headers...)
	tbl.WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)
	return tbl
}

// Terse writes one field per line with no header, the shape the target
// resolver accepts on stdin.
func Terse(w io.Writer, fields []string) {
	for _, f := range fields {
		fmt.Fprintln(w, f)
	}
}

// Banner writes the per-host section header used for raw config and
// command output.
func Banner(w io.Writer, host string) {
	Green.Fprintf(w, "\n*** %s ***\n\n", host)
}

// Divider separates per-host sections.
func Divider(w io.Writer) {
	Blue.Fprintf(w, "################################################################################\n\n")
}

// ReportErrors prints failed targets individually so successful entries
// remain usable.
func ReportErrors(w io.Writer, errs []error) {
	if len(errs) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, err := range errs {
		Red.Fprintf(w, "%v\n", err)
	}
}

// Summary prints the elapsed-time trailer.
func Summary(w io.Writer, start time.Time) {
	fmt.Fprintf(w, "\n Completed in %.3f seconds\n", time.Since(start).Seconds())
}
