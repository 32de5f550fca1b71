package display

import (
	"fmt"
	"io"

	"github.com/harrison/reprolevels/internal/levels"
)

// PrintCatalog lists every level in the catalog with its description,
// sorted by name.
func PrintCatalog(out io.Writer, version string, catalog levels.Catalog) {
	printCatalog(out, version, catalog, ColorEnabled(out))
}

func printCatalog(out io.Writer, version string, catalog levels.Catalog, colored bool) {
	p := newPalette(colored)

	names := catalog.Names()
	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	fmt.Fprintf(out, "Levels (version %s):\n", version)
	for _, name := range names {
		fmt.Fprintf(out, "  %s  %s\n", p.title.Sprintf("%-*s", width, name), catalog[name].Description)
	}
}

// PrintLevel shows one level: description, expression, and both file sets.
func PrintLevel(out io.Writer, name string, level levels.Level) {
	printLevel(out, name, level, ColorEnabled(out))
}

func printLevel(out io.Writer, name string, level levels.Level, colored bool) {
	p := newPalette(colored)

	p.title.Fprintln(out, name)
	fmt.Fprintf(out, "  Description: %s\n", level.Description)
	fmt.Fprintf(out, "  Regexp:      %s\n", level.Regexp)
	printSet(out, p, "Skip files", level.SkipFiles)
	printSet(out, p, "Include files", level.IncludeFiles)
}

func printSet(out io.Writer, p palette, label string, set levels.Set) {
	if set == nil {
		fmt.Fprintf(out, "  %s: %s\n", label, p.subtle.Sprint("(not set)"))
		return
	}
	fmt.Fprintf(out, "  %s (%d):\n", label, set.Len())
	for _, item := range set.Sorted() {
		fmt.Fprintf(out, "    - %s\n", item)
	}
}

// CheckReport prints include/exclude decisions for a run of paths.
type CheckReport struct {
	writer   io.Writer
	level    string
	total    int
	current  int
	included int
	palette  palette
}

// NewCheckReport creates a report for total paths checked against level
func NewCheckReport(w io.Writer, level string, total int) *CheckReport {
	return newCheckReport(w, level, total, ColorEnabled(w))
}

func newCheckReport(w io.Writer, level string, total int, colored bool) *CheckReport {
	return &CheckReport{
		writer:  w,
		level:   level,
		total:   total,
		palette: newPalette(colored),
	}
}

// Start displays the header message
func (r *CheckReport) Start() {
	fmt.Fprintf(r.writer, "Checking %d %s against %s:\n", r.total, pluralPaths(r.total), r.level)
}

// Step records the decision for path: [N/Total] followed by the outcome.
func (r *CheckReport) Step(path string, included bool) {
	r.current++
	counter := r.palette.step.Sprintf("[%d/%d]", r.current, r.total)
	if included {
		r.included++
		fmt.Fprintf(r.writer, "  %s %s %s\n", counter, r.palette.ok.Sprint("include"), path)
		return
	}
	fmt.Fprintf(r.writer, "  %s %s %s\n", counter, r.palette.fail.Sprint("exclude"), path)
}

// Included returns the number of included paths so far.
func (r *CheckReport) Included() int {
	return r.included
}

// Complete displays the summary line
func (r *CheckReport) Complete() {
	mark := r.palette.ok.Sprint("✓")
	fmt.Fprintf(r.writer, "%s %d of %d %s included by %s\n", mark, r.included, r.total, pluralPaths(r.total), r.level)
}

func pluralPaths(n int) string {
	if n == 1 {
		return "path"
	}
	return "paths"
}
