package levels

import (
	"encoding/json"
	"sort"
)

// Set is an unordered collection of file paths. A nil Set marks an absent
// field; an empty non-nil Set is present but holds nothing.
type Set map[string]struct{}

// NewSet returns a present Set holding items, deduplicated.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// setFrom converts a sequence into a Set, keeping absence: a nil slice yields
// a nil Set.
func setFrom(items []string) Set {
	if items == nil {
		return nil
	}
	return NewSet(items...)
}

// Has reports whether path is in the set. It is safe on a nil Set.
func (s Set) Has(path string) bool {
	_, ok := s[path]
	return ok
}

// Len returns the number of elements.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the elements in lexical order. A nil Set returns nil and an
// empty Set returns an empty, non-nil slice.
func (s Set) Sorted() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy, preserving nil.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	for item := range s {
		out[item] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold the same elements and agree on
// presence.
func (s Set) Equal(other Set) bool {
	if (s == nil) != (other == nil) {
		return false
	}
	if len(s) != len(other) {
		return false
	}
	for item := range s {
		if _, ok := other[item]; !ok {
			return false
		}
	}
	return true
}

// Spec is the sequence-shaped form of a level, as it appears in the backing
// document and during modification. Nil slices mean the field is absent.
type Spec struct {
	Description  string   `json:"description" yaml:"description" mapstructure:"description"`
	Regexp       string   `json:"regexp" yaml:"regexp" mapstructure:"regexp"`
	SkipFiles    []string `json:"skip_files,omitempty" yaml:"skip_files,omitempty" mapstructure:"skip_files"`
	IncludeFiles []string `json:"include_files,omitempty" yaml:"include_files,omitempty" mapstructure:"include_files"`
}

// Level is a finalized reproducibility level. Values are only produced by
// Normalize, so SkipFiles and IncludeFiles are always sets.
type Level struct {
	Description  string
	Regexp       string
	SkipFiles    Set
	IncludeFiles Set
}

// Normalize converts sequence fields into sets, discarding order and
// duplicates. Scalars pass through. Normalize(l.Spec()) equals l.
func Normalize(spec Spec) Level {
	return Level{
		Description:  spec.Description,
		Regexp:       spec.Regexp,
		SkipFiles:    setFrom(spec.SkipFiles),
		IncludeFiles: setFrom(spec.IncludeFiles),
	}
}

// Spec returns the level in sequence form with sorted file lists.
func (l Level) Spec() Spec {
	return Spec{
		Description:  l.Description,
		Regexp:       l.Regexp,
		SkipFiles:    l.SkipFiles.Sorted(),
		IncludeFiles: l.IncludeFiles.Sorted(),
	}
}

// Clone returns a deep copy of the level.
func (l Level) Clone() Level {
	return Level{
		Description:  l.Description,
		Regexp:       l.Regexp,
		SkipFiles:    l.SkipFiles.Clone(),
		IncludeFiles: l.IncludeFiles.Clone(),
	}
}

// Equal reports whether two levels hold the same rules.
func (l Level) Equal(other Level) bool {
	return l.Description == other.Description &&
		l.Regexp == other.Regexp &&
		l.SkipFiles.Equal(other.SkipFiles) &&
		l.IncludeFiles.Equal(other.IncludeFiles)
}

// MarshalJSON renders the level with sorted file lists.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Spec())
}

// MarshalYAML renders the level with sorted file lists.
func (l Level) MarshalYAML() (interface{}, error) {
	return l.Spec(), nil
}

// Catalog maps uppercase level names to levels. A Catalog is rebuilt on every
// load and never shared between calls.
type Catalog map[string]Level

// NormalizeCatalog applies Normalize to every entry.
func NormalizeCatalog(specs map[string]Spec) Catalog {
	catalog := make(Catalog, len(specs))
	for name, spec := range specs {
		catalog[name] = Normalize(spec)
	}
	return catalog
}

// Names returns the catalog keys in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
