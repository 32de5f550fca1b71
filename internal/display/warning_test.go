package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/harrison/reprolevels/internal/levels"
)

func TestDisplayWarning_TitleOnly(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{
		Title: "Configuration Missing",
	}

	w.render(&buf, true)

	output := buf.String()

	// Should contain yellow color code
	if !strings.Contains(output, "\x1b[33m") {
		t.Error("Expected yellow ANSI color code in output")
	}

	if !strings.Contains(output, "⚠️") {
		t.Error("Expected warning emoji ⚠️ in output")
	}

	if !strings.Contains(output, "Configuration Missing") {
		t.Error("Expected title in output")
	}

	// Should end with reset code
	if !strings.Contains(output, "\x1b[0m") {
		t.Error("Expected ANSI reset code in output")
	}
}

func TestDisplayWarning_NoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{Title: "Plain", Message: "no escapes"}

	w.Display(&buf)

	output := buf.String()
	if strings.Contains(output, "\x1b[") {
		t.Errorf("Expected no ANSI codes when writing to a buffer, got: %q", output)
	}
	if !strings.Contains(output, "⚠️  Warning: Plain\n    no escapes\n") {
		t.Errorf("Unexpected output: %q", output)
	}
}

func TestDisplayWarning_WithOptions(t *testing.T) {
	tests := []struct {
		name     string
		options  []string
		wantText string
	}{
		{
			name:     "single option",
			options:  []string{"IDENTICAL"},
			wantText: "Valid option:",
		},
		{
			name:     "multiple options",
			options:  []string{"BASE", "IDENTICAL", "RECIPE"},
			wantText: "Valid options:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := Warning{
				Title:   "Unknown level",
				Options: tt.options,
			}

			w.render(&buf, false)

			output := buf.String()

			if !strings.Contains(output, tt.wantText) {
				t.Errorf("Expected %q in output, got: %s", tt.wantText, output)
			}

			// Should list each option with indentation and numbering
			for i, option := range tt.options {
				expected := strings.Repeat(" ", 6) + string(rune('1'+i)) + ". " + option
				if !strings.Contains(output, expected) {
					t.Errorf("Expected option entry %q in output, got: %s", expected, output)
				}
			}
		})
	}
}

func TestDisplayWarning_WithSuggestion(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{
		Title:      "Unsupported version",
		Suggestion: "Pass --version 2.3",
	}

	w.render(&buf, false)

	output := buf.String()

	if !strings.Contains(output, "    Suggestion:\n    Pass --version 2.3\n") {
		t.Errorf("Expected indented suggestion in output, got: %s", output)
	}
}

func TestWarnLevelNotFound(t *testing.T) {
	err := &levels.NotFoundError{Name: "NOPE", Valid: []string{"BASE", "RECIPE"}}

	w := WarnLevelNotFound(err)

	if w.Title != "NOPE is not a valid level" {
		t.Errorf("Unexpected title: %q", w.Title)
	}
	if len(w.Options) != 2 || w.Options[0] != "BASE" || w.Options[1] != "RECIPE" {
		t.Errorf("Expected catalog names as options, got %v", w.Options)
	}
	if !strings.Contains(w.Suggestion, "levels list") {
		t.Errorf("Expected suggestion to point at levels list, got %q", w.Suggestion)
	}
}

func TestWarnInvalidField(t *testing.T) {
	_, err := levels.Modify(levels.Level{}, "bogus", nil, false)

	var fieldErr *levels.FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("Expected *levels.FieldError, got %v", err)
	}

	w := WarnInvalidField(fieldErr)

	if !strings.Contains(w.Title, "bogus") {
		t.Errorf("Expected field name in title, got %q", w.Title)
	}
	if len(w.Options) != len(levels.Fields()) {
		t.Errorf("Expected %d options, got %v", len(levels.Fields()), w.Options)
	}
}

func TestWarnVersion(t *testing.T) {
	err := &levels.VersionError{Version: "9.9", Valid: levels.SupportedVersions()}

	var buf bytes.Buffer
	WarnVersion(err).render(&buf, false)

	output := buf.String()
	for _, want := range []string{`unsupported version "9.9"`, "1. 2.3", "2. 2.2", "--version-fallback"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}
