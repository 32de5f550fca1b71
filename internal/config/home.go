package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// HomeEnv overrides the reprolevels home directory.
	HomeEnv = "REPROLEVELS_HOME"

	// HomeDirName is the per-project configuration directory.
	HomeDirName = ".reprolevels"

	// ConfigFileName is the configuration file inside the home directory.
	ConfigFileName = "config.yaml"
)

// GetHome returns the reprolevels home directory
// Priority order:
//  1. REPROLEVELS_HOME environment variable (if set)
//  2. .reprolevels in the current working directory
//
// The directory is not created; a missing home means default configuration.
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	return filepath.Join(cwd, HomeDirName), nil
}

// GetConfigPath returns the path of config.yaml inside the home directory.
func GetConfigPath() (string, error) {
	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigFileName), nil
}
