package levels

import "strings"

// Field names a modifiable level field.
type Field string

const (
	FieldRegexp       Field = "regexp"
	FieldSkipFiles    Field = "skip_files"
	FieldIncludeFiles Field = "include_files"
)

// Fields lists the fields Modify accepts, in document order.
func Fields() []Field {
	return []Field{FieldRegexp, FieldSkipFiles, FieldIncludeFiles}
}

// ParseField resolves a field name case-insensitively.
func ParseField(name string) (Field, error) {
	normalized := Field(strings.ToLower(strings.TrimSpace(name)))
	for _, f := range Fields() {
		if f == normalized {
			return f, nil
		}
	}

	valid := make([]string, 0, len(Fields()))
	for _, f := range Fields() {
		valid = append(valid, string(f))
	}
	return "", &FieldError{Field: string(normalized), Valid: valid}
}

// Modify returns a copy of level with one field changed and the result
// normalized. The input level is never mutated.
//
// For the file fields, appendValues concatenates values onto the existing
// sequence, creating the field when it is absent. Without appendValues the
// field is replaced by values; a nil values slice leaves the field absent.
// Regexp is a scalar and is always overwritten by the last value; an empty
// values slice leaves it unchanged.
//
// An unknown field returns level unchanged together with a *FieldError.
func Modify(level Level, field string, values []string, appendValues bool) (Level, error) {
	f, err := ParseField(field)
	if err != nil {
		return level, err
	}

	spec := level.Spec()
	switch f {
	case FieldRegexp:
		if len(values) > 0 {
			spec.Regexp = values[len(values)-1]
		}
	case FieldSkipFiles:
		spec.SkipFiles = mergeSequence(spec.SkipFiles, values, appendValues)
	case FieldIncludeFiles:
		spec.IncludeFiles = mergeSequence(spec.IncludeFiles, values, appendValues)
	}

	return Normalize(spec), nil
}

// mergeSequence concatenates without deduplicating; Normalize resolves
// duplicates afterwards.
func mergeSequence(existing, values []string, appendValues bool) []string {
	if !appendValues {
		if values == nil {
			return nil
		}
		return append([]string{}, values...)
	}

	merged := make([]string, 0, len(existing)+len(values))
	merged = append(merged, existing...)
	return append(merged, values...)
}
