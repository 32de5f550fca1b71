package levels

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidVersion is returned when a requested catalog version is not supported.
	ErrInvalidVersion = errors.New("unsupported levels version")

	// ErrLevelNotFound is returned when a level name is absent from the catalog.
	ErrLevelNotFound = errors.New("level not found")

	// ErrInvalidField is returned by Modify for an unrecognized field name.
	ErrInvalidField = errors.New("invalid level field")

	// ErrMissingLabels means the backing document lacks the LABELS level and
	// is considered corrupt.
	ErrMissingLabels = errors.New("levels document is missing the LABELS level")

	// ErrInvalidDocument means the backing document does not have the level shape.
	ErrInvalidDocument = errors.New("invalid levels document")

	// ErrInvalidRegexp is returned when a level's filter expression does not compile.
	ErrInvalidRegexp = errors.New("invalid level regexp")
)

// VersionError reports an unsupported catalog version.
type VersionError struct {
	Version string
	Valid   []string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unsupported version %q, valid versions are %s", e.Version, strings.Join(e.Valid, ","))
}

func (e *VersionError) Unwrap() error { return ErrInvalidVersion }

// NotFoundError reports a level lookup miss. Valid holds the catalog's level
// names for diagnostics.
type NotFoundError struct {
	Name  string
	Valid []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s is not a valid level, options are %s", e.Name, strings.Join(e.Valid, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrLevelNotFound }

// FieldError reports a Modify call on a field that levels do not have.
type FieldError struct {
	Field string
	Valid []string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s is not a valid field, choices are %s", e.Field, strings.Join(e.Valid, ","))
}

func (e *FieldError) Unwrap() error { return ErrInvalidField }

// RegexpError reports a level expression that failed to compile.
type RegexpError struct {
	Regexp string
	Err    error
}

func (e *RegexpError) Error() string {
	return fmt.Sprintf("compile %q: %v", e.Regexp, e.Err)
}

// Is makes errors.Is(err, ErrInvalidRegexp) hold while Unwrap exposes the
// compiler error.
func (e *RegexpError) Is(target error) bool { return target == ErrInvalidRegexp }

func (e *RegexpError) Unwrap() error { return e.Err }
