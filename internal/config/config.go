package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/reprolevels/internal/levels"
	"github.com/harrison/reprolevels/internal/logger"
)

// LevelsFileEnv overrides the levels document path.
const LevelsFileEnv = "REPROLEVELS_LEVELS_FILE"

// RegistryConfig controls registry scaffolding.
type RegistryConfig struct {
	// ConfigFilename is the name of the JSON config written at the registry base
	ConfigFilename string `yaml:"config_filename"`

	// CITemplates copies the bundled CI templates into the recipes folder
	CITemplates bool `yaml:"ci_templates"`
}

// Config represents reprolevels configuration options
type Config struct {
	// DefaultVersion is the catalog version used when none is requested
	DefaultVersion string `yaml:"default_version"`

	// LevelsFile is an on-disk levels document (JSON or YAML); empty uses the bundled one
	LevelsFile string `yaml:"levels_file"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// VersionFallback loads the default version instead of failing on an unsupported one
	VersionFallback bool `yaml:"version_fallback"`

	// Registry contains registry scaffolding configuration
	Registry RegistryConfig `yaml:"registry"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		DefaultVersion:  levels.DefaultVersion,
		LevelsFile:      "",
		LogLevel:        "warn",
		VersionFallback: false,
		Registry: RegistryConfig{
			ConfigFilename: "config.json",
			CITemplates:    true,
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileCfg.DefaultVersion != "" {
		cfg.DefaultVersion = fileCfg.DefaultVersion
	}
	if fileCfg.LevelsFile != "" {
		cfg.LevelsFile = resolveRelative(path, fileCfg.LevelsFile)
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.Registry.ConfigFilename != "" {
		cfg.Registry.ConfigFilename = fileCfg.Registry.ConfigFilename
	}

	// Booleans only override defaults when the key is present, so an explicit
	// false is honoured.
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if _, exists := rawMap["version_fallback"]; exists {
			cfg.VersionFallback = fileCfg.VersionFallback
		}
		if registrySection, ok := rawMap["registry"].(map[string]interface{}); ok {
			if _, exists := registrySection["ci_templates"]; exists {
				cfg.Registry.CITemplates = fileCfg.Registry.CITemplates
			}
		}
	}

	return cfg, nil
}

// resolveRelative interprets a levels file path relative to the config file
// that names it.
func resolveRelative(configPath, target string) string {
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(filepath.Dir(configPath), target)
}

// LoadConfigFromDir loads configuration from .reprolevels/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, HomeDirName, ConfigFileName))
}

// ApplyEnv applies environment overrides on top of file configuration.
func (c *Config) ApplyEnv() {
	if levelsFile := strings.TrimSpace(os.Getenv(LevelsFileEnv)); levelsFile != "" {
		c.LevelsFile = levelsFile
	}
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(defaultVersion *string, levelsFile *string, logLevel *string, versionFallback *bool) {
	if defaultVersion != nil {
		c.DefaultVersion = *defaultVersion
	}
	if levelsFile != nil {
		c.LevelsFile = *levelsFile
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if versionFallback != nil {
		c.VersionFallback = *versionFallback
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	supported := false
	for _, v := range levels.SupportedVersions() {
		if c.DefaultVersion == v {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("invalid default_version %q, must be one of: %s", c.DefaultVersion, strings.Join(levels.SupportedVersions(), ", "))
	}

	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: %s", c.LogLevel, strings.Join(logger.ValidLevels, ", "))
	}

	if c.Registry.ConfigFilename == "" {
		return fmt.Errorf("registry.config_filename cannot be empty")
	}
	if filepath.Base(c.Registry.ConfigFilename) != c.Registry.ConfigFilename {
		return fmt.Errorf("registry.config_filename must be a file name, got %q", c.Registry.ConfigFilename)
	}

	return nil
}
