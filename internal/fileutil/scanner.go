package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// ExcludeDirs lists member paths of directories to skip (e.g. "/proc")
	ExcludeDirs []string
	// MaxDepth limits recursion depth (0 = unlimited, 1 = top level only)
	MaxDepth int
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files contains the member paths of all non-directory entries, sorted
	Files []string
	// Errors contains any errors encountered during scanning
	Errors []error
}

// MemberPath converts rel, a path relative to the scanned root, into a rooted
// slash-separated member path.
func MemberPath(rel string) string {
	return "/" + strings.TrimPrefix(filepath.ToSlash(rel), "/")
}

// ScanRoot walks root and returns every file below it as a member path.
func ScanRoot(root string, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	result := &ScanResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	excludeMap := make(map[string]bool)
	for _, dir := range opts.ExcludeDirs {
		excludeMap[path.Clean("/"+strings.TrimPrefix(filepath.ToSlash(dir), "/"))] = true
	}

	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", p, err))
			return nil // Continue walking
		}

		// Skip the root directory itself
		if p == root {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to resolve path %s: %w", p, err))
			return nil
		}
		member := MemberPath(rel)

		if d.IsDir() {
			if excludeMap[member] {
				return filepath.SkipDir
			}
			if opts.MaxDepth > 0 && strings.Count(member, "/") >= opts.MaxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		result.Files = append(result.Files, member)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	// Sort files for consistent output
	sort.Strings(result.Files)

	return result, nil
}
