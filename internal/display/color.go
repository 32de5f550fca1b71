package display

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorEnabled reports whether coloured output should be written to w.
func ColorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// palette holds the colours used by one rendering pass.
type palette struct {
	warn   *color.Color
	title  *color.Color
	ok     *color.Color
	fail   *color.Color
	step   *color.Color
	subtle *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		warn:   color.New(color.FgYellow),
		title:  color.New(color.FgCyan, color.Bold),
		ok:     color.New(color.FgGreen),
		fail:   color.New(color.FgRed),
		step:   color.New(color.FgCyan),
		subtle: color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.warn, p.title, p.ok, p.fail, p.step, p.subtle} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}
