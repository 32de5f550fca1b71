package levels

const (
	// DefaultRegexp matches every path.
	DefaultRegexp = "."

	// DefaultCustomDescription is used when a custom level has no description.
	DefaultCustomDescription = "This is a custom filter generated by the user."
)

// CustomOption configures BuildCustomLevel.
type CustomOption func(*Spec)

// WithRegexp sets the filter expression.
func WithRegexp(expr string) CustomOption {
	return func(s *Spec) { s.Regexp = expr }
}

// WithDescription sets the human readable description.
func WithDescription(description string) CustomOption {
	return func(s *Spec) { s.Description = description }
}

// WithSkipFiles attaches files that are always excluded. Passing no files
// still attaches an empty set.
func WithSkipFiles(files ...string) CustomOption {
	return func(s *Spec) { s.SkipFiles = append([]string{}, files...) }
}

// WithIncludeFiles attaches files that are always included. Passing no files
// still attaches an empty set.
func WithIncludeFiles(files ...string) CustomOption {
	return func(s *Spec) { s.IncludeFiles = append([]string{}, files...) }
}

// BuildCustomLevel synthesizes a level from user parameters only, without
// consulting any catalog. Omitted file lists stay absent.
func BuildCustomLevel(opts ...CustomOption) Level {
	spec := Spec{
		Description: DefaultCustomDescription,
		Regexp:      DefaultRegexp,
	}
	for _, opt := range opts {
		opt(&spec)
	}
	if spec.Regexp == "" {
		spec.Regexp = DefaultRegexp
	}
	if spec.Description == "" {
		spec.Description = DefaultCustomDescription
	}
	return Normalize(spec)
}
