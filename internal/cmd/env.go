package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/reprolevels/internal/config"
	"github.com/harrison/reprolevels/internal/display"
	"github.com/harrison/reprolevels/internal/document"
	"github.com/harrison/reprolevels/internal/levels"
	"github.com/harrison/reprolevels/internal/logger"
)

// environment is what a subcommand needs after configuration is resolved.
type environment struct {
	cfg    *config.Config
	log    *logger.ConsoleLogger
	loader *levels.Loader
}

// loadEnvironment resolves configuration in order: defaults, config file,
// environment, then flags explicitly set on the command line.
func loadEnvironment(cmd *cobra.Command) (*environment, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString(flagConfig)
	if configPath == "" {
		var err error
		configPath, err = config.GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("locate config: %w", err)
		}
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	var levelsFile, logLevel *string
	var versionFallback *bool
	if flags.Changed(flagLevelsFile) {
		v, _ := flags.GetString(flagLevelsFile)
		levelsFile = &v
	}
	if flags.Changed(flagLogLevel) {
		v, _ := flags.GetString(flagLogLevel)
		logLevel = &v
	}
	if flags.Changed(flagVersionFallback) {
		v, _ := flags.GetBool(flagVersionFallback)
		versionFallback = &v
	}
	cfg.MergeWithFlags(nil, levelsFile, logLevel, versionFallback)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	log.Debugf("using config %s", configPath)

	reader, path := document.Resolve(cfg.LevelsFile)
	loader := levels.NewLoader(reader, path,
		levels.WithLogger(log),
		levels.WithVersionFallback(cfg.VersionFallback),
	)

	return &environment{cfg: cfg, log: log, loader: loader}, nil
}

// version returns the --version flag when given, else the configured default.
func (e *environment) version(cmd *cobra.Command) string {
	if cmd.Flags().Changed("version") {
		v, _ := cmd.Flags().GetString("version")
		return v
	}
	return e.cfg.DefaultVersion
}

// effectiveVersion names the catalog version a successful load used.
func effectiveVersion(requested string) string {
	requested = strings.TrimSpace(requested)
	for _, v := range levels.SupportedVersions() {
		if v == requested {
			return v
		}
	}
	return levels.DefaultVersion
}

// warnOnError shows a warning for level errors that carry a list of valid
// choices and returns err unchanged.
func warnOnError(out io.Writer, err error) error {
	var notFound *levels.NotFoundError
	var versionErr *levels.VersionError
	var fieldErr *levels.FieldError

	switch {
	case errors.As(err, &notFound):
		display.WarnLevelNotFound(notFound).Display(out)
	case errors.As(err, &versionErr):
		display.WarnVersion(versionErr).Display(out)
	case errors.As(err, &fieldErr):
		display.WarnInvalidField(fieldErr).Display(out)
	}
	return err
}
