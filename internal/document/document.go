// Package document reads the structured documents that back the level
// catalog. Documents are JSON or YAML mappings; both decode to the same
// shape: map[string]any with nested map[string]any objects and []any lists.
package document

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/reprolevels/internal/filelock"
)

// DefaultPath is the location of the bundled levels document inside the
// embedded data directory.
const DefaultPath = "data/reproduce_levels.json"

//go:embed data/reproduce_levels.json
var bundled embed.FS

// Reader reads the document at path into a mapping.
type Reader interface {
	ReadDocument(path string) (map[string]any, error)
}

// FileReader reads documents from disk under a shared file lock.
type FileReader struct{}

// NewFileReader returns a reader for on-disk documents.
func NewFileReader() *FileReader {
	return &FileReader{}
}

// ReadDocument implements Reader.
func (r *FileReader) ReadDocument(path string) (map[string]any, error) {
	data, err := filelock.ReadShared(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, filepath.Ext(path))
}

// EmbeddedReader reads documents from a read-only file system, by default the
// one bundled into the binary.
type EmbeddedReader struct {
	fsys fs.FS
}

// NewEmbeddedReader returns a reader over fsys, or over the bundled data when
// fsys is nil.
func NewEmbeddedReader(fsys fs.FS) *EmbeddedReader {
	if fsys == nil {
		fsys = bundled
	}
	return &EmbeddedReader{fsys: fsys}
}

// ReadDocument implements Reader.
func (r *EmbeddedReader) ReadDocument(name string) (map[string]any, error) {
	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, err
	}
	return Decode(data, path.Ext(name))
}

// Resolve picks the reader and path for a levels document. An empty
// levelsFile selects the bundled document.
func Resolve(levelsFile string) (Reader, string) {
	if strings.TrimSpace(levelsFile) == "" {
		return NewEmbeddedReader(nil), DefaultPath
	}
	return NewFileReader(), levelsFile
}

// Decode parses data as YAML for the .yaml and .yml extensions and as JSON
// otherwise. The top level must be a mapping.
func Decode(data []byte, ext string) (map[string]any, error) {
	var doc map[string]any

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml document: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse json document: %w", err)
		}
		if dec.More() {
			return nil, fmt.Errorf("parse json document: trailing data after top-level value")
		}
	}

	return doc, nil
}
