package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/reprolevels/internal/levels"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Options    []string // Valid choices (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning, in yellow on a terminal
func (w Warning) Display(out io.Writer) {
	w.render(out, ColorEnabled(out))
}

func (w Warning) render(out io.Writer, colored bool) {
	var b strings.Builder

	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Options) > 0 {
		b.WriteString("    ")
		if len(w.Options) == 1 {
			b.WriteString("Valid option:\n")
		} else {
			b.WriteString("Valid options:\n")
		}

		for i, option := range w.Options {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, option))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	p := newPalette(colored)
	p.warn.Fprint(out, b.String())
}

// WarnLevelNotFound creates a warning for a level lookup miss
func WarnLevelNotFound(err *levels.NotFoundError) Warning {
	return Warning{
		Title:      fmt.Sprintf("%s is not a valid level", err.Name),
		Options:    err.Valid,
		Suggestion: "Run 'reprolevels levels list' to see what each level compares",
	}
}

// WarnInvalidField creates a warning for a modification of an unknown field
func WarnInvalidField(err *levels.FieldError) Warning {
	return Warning{
		Title:   fmt.Sprintf("%s is not a valid field", err.Field),
		Options: err.Valid,
	}
}

// WarnVersion creates a warning for an unsupported catalog version
func WarnVersion(err *levels.VersionError) Warning {
	return Warning{
		Title:      fmt.Sprintf("unsupported version %q", err.Version),
		Options:    err.Valid,
		Suggestion: "Pass --version-fallback to load the default version instead",
	}
}
