// Package registry scaffolds a container registry on disk: the base folder
// with builder and recipe subfolders, the storage folder for containers, and
// the JSON config file describing the registry.
package registry

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/harrison/reprolevels/internal/filelock"
	reprologger "github.com/harrison/reprolevels/internal/logger"
)

// DefaultConfigFilename is written at the registry base when no name is given.
const DefaultConfigFilename = "config.json"

// ErrRegistryExists is returned when the base or storage folder already exists.
var ErrRegistryExists = errors.New("registry already exists")

//go:embed templates/ci/.travis.yml
var travisTemplate []byte

// Config is the persisted registry description.
type Config struct {
	Base    string `json:"REGISTRY_BASE"`
	Storage string `json:"STORAGE_BASE"`
	URI     string `json:"REGISTRY_URI"`
	Name    string `json:"REGISTRY_NAME"`
	ID      string `json:"REGISTRY_ID,omitempty"`
}

// Options describes the registry to generate.
type Options struct {
	Base    string
	URI     string
	Name    string
	Storage string // defaults to <Base>/storage

	ConfigFilename string // defaults to DefaultConfigFilename
	CITemplates    bool
}

// Logger receives progress messages.
type Logger interface {
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// Generator creates registries.
type Generator struct {
	logger Logger
	newID  func() string
}

// NewGenerator returns a Generator logging to logger; nil discards messages.
func NewGenerator(logger Logger) *Generator {
	if logger == nil {
		logger = reprologger.NewNoOpLogger()
	}
	return &Generator{
		logger: logger,
		newID:  func() string { return uuid.NewString() },
	}
}

// Generate creates the registry folders and config and returns the config
// file path. Nothing is created when the base or storage folder exists.
func (g *Generator) Generate(opts Options) (string, error) {
	if opts.Base == "" || opts.URI == "" || opts.Name == "" {
		return "", fmt.Errorf("registry base, uri and name are required")
	}
	if opts.Storage == "" {
		opts.Storage = filepath.Join(opts.Base, "storage")
	}

	for _, dir := range []string{opts.Base, opts.Storage} {
		if _, err := os.Stat(dir); err == nil {
			return "", fmt.Errorf("%w: %s, will not overwrite", ErrRegistryExists, dir)
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("check %s: %w", dir, err)
		}
	}

	recipes := filepath.Join(opts.Base, "recipes")
	builder := filepath.Join(opts.Base, "builder")
	containers := filepath.Join(opts.Storage, "containers")
	for _, dir := range []string{containers, filepath.Join(builder, "templates"), recipes} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create %s: %w", dir, err)
		}
	}

	g.logger.Infof("BASE: %s", opts.Base)
	g.logger.Infof(" --> RECIPES: %s", recipes)
	g.logger.Infof(" --> BUILDER: %s", builder)
	g.logger.Infof("STORAGE: %s", opts.Storage)
	g.logger.Infof(" --> CONTAINERS: %s", containers)

	cfg := Config{
		Base:    opts.Base,
		Storage: opts.Storage,
		URI:     opts.URI,
		Name:    opts.Name,
		ID:      g.newID(),
	}
	configFile, err := WriteConfig(cfg, opts.Base, opts.ConfigFilename)
	if err != nil {
		return "", err
	}
	g.logger.Debugf("generated config file %s", configFile)

	if opts.CITemplates {
		g.logger.Debugf("adding CI templates to recipes folder")
		if err := filelock.AtomicWrite(filepath.Join(recipes, ".travis.yml"), travisTemplate); err != nil {
			return "", fmt.Errorf("copy CI template: %w", err)
		}
	}

	return configFile, nil
}

// WriteConfig writes cfg as indented JSON to <base>/<filename> under the
// file's exclusive lock. Only the base name of filename is used; an empty
// filename means DefaultConfigFilename.
func WriteConfig(cfg Config, base, filename string) (string, error) {
	if filename == "" {
		filename = DefaultConfigFilename
	}
	configFile := filepath.Join(base, filepath.Base(filename))

	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encode registry config: %w", err)
	}
	if err := filelock.LockAndWrite(configFile, append(data, '\n')); err != nil {
		return "", fmt.Errorf("write registry config: %w", err)
	}
	return configFile, nil
}

// ReadConfig loads a registry config written by WriteConfig.
func ReadConfig(path string) (*Config, error) {
	data, err := filelock.ReadShared(path)
	if err != nil {
		return nil, fmt.Errorf("read registry config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse registry config %s: %w", path, err)
	}
	return &cfg, nil
}
