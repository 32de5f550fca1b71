package levels

import (
	"regexp"
	"strings"
)

// Filter applies a level to individual paths. It is immutable and safe for
// concurrent use.
type Filter struct {
	level Level
	re    *regexp.Regexp
}

// NewFilter compiles the level's expression. An empty expression falls back
// to DefaultRegexp.
func NewFilter(level Level) (*Filter, error) {
	expr := level.Regexp
	if expr == "" {
		expr = DefaultRegexp
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &RegexpError{Regexp: expr, Err: err}
	}
	return &Filter{level: level.Clone(), re: re}, nil
}

// Level returns a copy of the level the filter was built from.
func (f *Filter) Level() Level {
	return f.level.Clone()
}

// Includes reports whether path takes part in the comparison. Skip files win
// over include files, which win over the expression. Archive-style paths such
// as "./etc/hosts" are compared in their rooted form "/etc/hosts".
func (f *Filter) Includes(path string) bool {
	path = memberPath(path)
	if path == "" {
		return false
	}
	if f.level.SkipFiles.Has(path) {
		return false
	}
	if f.level.IncludeFiles.Has(path) {
		return true
	}
	return f.re.MatchString(path)
}

// memberPath strips the leading "." of archive member names.
func memberPath(path string) string {
	if path == "." {
		return ""
	}
	if strings.HasPrefix(path, "./") {
		return path[1:]
	}
	return path
}
