package document

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonDoc = `{
	"LABELS": {
		"description": "labels",
		"regexp": "^/labels$",
		"include_files": ["/labels", "/labels"]
	}
}`

const yamlDoc = `LABELS:
  description: labels
  regexp: ^/labels$
  include_files:
    - /labels
    - /labels
`

func TestDecode(t *testing.T) {
	want := map[string]any{
		"LABELS": map[string]any{
			"description":   "labels",
			"regexp":        "^/labels$",
			"include_files": []any{"/labels", "/labels"},
		},
	}

	t.Run("json", func(t *testing.T) {
		doc, err := Decode([]byte(jsonDoc), ".json")
		require.NoError(t, err)
		assert.Equal(t, want, doc)
	})

	t.Run("yaml", func(t *testing.T) {
		doc, err := Decode([]byte(yamlDoc), ".yaml")
		require.NoError(t, err)
		assert.Equal(t, want, doc)
	})

	t.Run("yml extension is case-insensitive", func(t *testing.T) {
		doc, err := Decode([]byte(yamlDoc), ".YML")
		require.NoError(t, err)
		assert.Equal(t, want, doc)
	})

	t.Run("unknown extension is json", func(t *testing.T) {
		doc, err := Decode([]byte(jsonDoc), "")
		require.NoError(t, err)
		assert.Equal(t, want, doc)
	})
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
	}{
		{name: "malformed json", data: `{"LABELS":`, ext: ".json"},
		{name: "json array", data: `["LABELS"]`, ext: ".json"},
		{name: "trailing json", data: `{} {}`, ext: ".json"},
		{name: "yaml sequence", data: "- LABELS\n", ext: ".yaml"},
		{name: "malformed yaml", data: "LABELS: [\n", ext: ".yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.ext)
			assert.Error(t, err)
		})
	}
}

func TestFileReader(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "levels.json")
	yamlPath := filepath.Join(dir, "levels.yaml")
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonDoc), 0644))
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlDoc), 0644))

	reader := NewFileReader()

	fromJSON, err := reader.ReadDocument(jsonPath)
	require.NoError(t, err)
	fromYAML, err := reader.ReadDocument(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, fromJSON, fromYAML)

	_, err = reader.ReadDocument(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileReaderReadOnlyDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "levels.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0644))
	require.NoError(t, os.Chmod(dir, 0555))
	t.Cleanup(func() { os.Chmod(dir, 0755) })

	doc, err := NewFileReader().ReadDocument(path)
	require.NoError(t, err)
	assert.Contains(t, doc, "LABELS")
	assert.NoFileExists(t, path+".lock")
}

func TestEmbeddedReader(t *testing.T) {
	t.Run("bundled document", func(t *testing.T) {
		doc, err := NewEmbeddedReader(nil).ReadDocument(DefaultPath)
		require.NoError(t, err)

		for _, name := range []string{"IDENTICAL", "REPLICATE", "BASE", "RECIPE", "RUNSCRIPT", "ENVIRONMENT", "LABELS"} {
			assert.Contains(t, doc, name)
		}
	})

	t.Run("custom fs", func(t *testing.T) {
		fsys := fstest.MapFS{"levels.yml": &fstest.MapFile{Data: []byte(yamlDoc)}}

		doc, err := NewEmbeddedReader(fsys).ReadDocument("levels.yml")
		require.NoError(t, err)
		assert.Contains(t, doc, "LABELS")
	})

	t.Run("missing entry", func(t *testing.T) {
		_, err := NewEmbeddedReader(nil).ReadDocument("data/nope.json")
		assert.Error(t, err)
	})
}

func TestResolve(t *testing.T) {
	reader, path := Resolve("")
	assert.IsType(t, &EmbeddedReader{}, reader)
	assert.Equal(t, DefaultPath, path)

	reader, path = Resolve("/etc/reprolevels/levels.yaml")
	assert.IsType(t, &FileReader{}, reader)
	assert.Equal(t, "/etc/reprolevels/levels.yaml", path)
}
