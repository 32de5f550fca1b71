// Package levels defines reproducibility levels: named rule-sets that decide
// which files inside a container filesystem tree take part in a content
// comparison.
//
// A level carries a description, a filter regular expression and two optional
// file sets. Files in SkipFiles are always excluded, files in IncludeFiles are
// always included, and every other path is included when it matches Regexp.
//
// # Catalog
//
// Predefined levels come from a versioned backing document read through a
// DocumentReader. A Loader turns that document into a Catalog:
//
//	loader := levels.NewLoader(reader, path)
//	catalog, err := loader.LoadLevels(levels.DefaultVersion)
//
// The LABELS level only exists from version 2.3 onwards; loading 2.2 drops it.
//
// # Selecting and customizing
//
// GetLevel looks a level up case-insensitively and optionally extends its file
// sets:
//
//	level, err := loader.GetLevel("runscript", "", []string{"/extra"}, nil)
//	if errors.Is(err, levels.ErrLevelNotFound) {
//	    // err.(*levels.NotFoundError).Valid lists the catalog names
//	}
//
// BuildCustomLevel synthesizes a level without consulting the catalog:
//
//	level := levels.BuildCustomLevel(levels.WithRegexp(`^/etc/`))
//
// # Sets
//
// Every exit point that produces a Level goes through Normalize, so the file
// lists of a Level are always deduplicated sets. A nil Set means the field is
// absent, which is not the same value as an empty Set.
//
// Nothing in this package holds mutable package-level state; catalogs are
// rebuilt on every call and all functions are safe for concurrent use.
package levels
