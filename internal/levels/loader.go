package levels

import (
	"fmt"
	"strings"

	"github.com/harrison/reprolevels/internal/logger"
)

const (
	Version22 = "2.2"
	Version23 = "2.3"

	// DefaultVersion is used when a caller does not name a version.
	DefaultVersion = Version23

	// LabelsLevel only exists from Version23 onwards.
	LabelsLevel = "LABELS"
)

// SupportedVersions returns the catalog versions LoadLevels accepts.
func SupportedVersions() []string {
	return []string{Version23, Version22}
}

// DocumentReader reads a structured document into a key/value mapping.
// Nested objects are map[string]any and lists are []any.
type DocumentReader interface {
	ReadDocument(path string) (map[string]any, error)
}

// Logger receives diagnostics from a Loader.
type Logger interface {
	Warnf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// Loader builds catalogs from a backing document. It keeps no state between
// calls: the document is read again on every LoadLevels.
type Loader struct {
	reader   DocumentReader
	path     string
	logger   Logger
	fallback bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger routes loader diagnostics to logger. A nil logger is ignored.
func WithLogger(logger Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithVersionFallback makes LoadLevels warn about an unsupported version and
// continue with DefaultVersion instead of failing.
func WithVersionFallback(enabled bool) LoaderOption {
	return func(l *Loader) { l.fallback = enabled }
}

// NewLoader returns a Loader reading the levels document at path through reader.
func NewLoader(reader DocumentReader, path string, opts ...LoaderOption) *Loader {
	l := &Loader{
		reader: reader,
		path:   path,
		logger: logger.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the document path the loader reads.
func (l *Loader) Path() string {
	return l.path
}

// resolveVersion applies the default and validates the result.
func (l *Loader) resolveVersion(version string) (string, error) {
	version = strings.TrimSpace(version)
	if version == "" {
		return DefaultVersion, nil
	}
	for _, v := range SupportedVersions() {
		if v == version {
			return version, nil
		}
	}

	verr := &VersionError{Version: version, Valid: SupportedVersions()}
	if !l.fallback {
		return "", verr
	}
	l.logger.Warnf("%v, using %s", verr, DefaultVersion)
	return DefaultVersion, nil
}

// LoadLevels reads the backing document and returns the catalog for version.
// An empty version selects DefaultVersion. The document must define LABELS;
// for Version22 that level is removed from the result.
func (l *Loader) LoadLevels(version string) (Catalog, error) {
	v, err := l.resolveVersion(version)
	if err != nil {
		return nil, err
	}

	doc, err := l.reader.ReadDocument(l.path)
	if err != nil {
		return nil, fmt.Errorf("read levels document %s: %w", l.path, err)
	}

	specs, err := decodeDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("levels document %s: %w", l.path, err)
	}

	if _, ok := specs[LabelsLevel]; !ok {
		return nil, fmt.Errorf("levels document %s: %w", l.path, ErrMissingLabels)
	}
	if v == Version22 {
		delete(specs, LabelsLevel)
	}

	l.logger.Debugf("loaded %d levels from %s (version %s)", len(specs), l.path, v)
	return NormalizeCatalog(specs), nil
}

// GetLevel returns the named level from the catalog for version, with
// skipFiles and then includeFiles appended when they are non-nil. The lookup
// is case-insensitive. A miss returns a *NotFoundError listing the valid
// names and is only logged at debug level.
func (l *Loader) GetLevel(name, version string, includeFiles, skipFiles []string) (Level, error) {
	catalog, err := l.LoadLevels(version)
	if err != nil {
		return Level{}, err
	}

	key := strings.ToUpper(strings.TrimSpace(name))
	level, ok := catalog[key]
	if !ok {
		notFound := &NotFoundError{Name: key, Valid: catalog.Names()}
		l.logger.Debugf("%v", notFound)
		return Level{}, notFound
	}

	if skipFiles != nil {
		if level, err = Modify(level, string(FieldSkipFiles), skipFiles, true); err != nil {
			return Level{}, err
		}
	}
	if includeFiles != nil {
		if level, err = Modify(level, string(FieldIncludeFiles), includeFiles, true); err != nil {
			return Level{}, err
		}
	}

	return Normalize(level.Spec()), nil
}
