// Package display renders reprolevels output for the terminal: warnings,
// level catalogs, single levels, and per-path check reports.
//
// Warnings collect the diagnostics a command wants the user to act on:
//
//	warning := display.WarnLevelNotFound(notFound)
//	warning.Display(os.Stderr)
//
// Catalogs and levels are printed with PrintCatalog and PrintLevel. A
// CheckReport walks a list of paths and records whether each one takes part
// in a comparison:
//
//	report := display.NewCheckReport(os.Stdout, "RECIPE", len(paths))
//	report.Start()
//	for _, p := range paths {
//	    report.Step(p, filter.Includes(p))
//	}
//	report.Complete()
//
// Colour is only emitted when the writer is a terminal and NO_COLOR is unset;
// every function takes an io.Writer so output can be captured in tests.
package display
