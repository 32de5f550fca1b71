package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// Persistent flag names shared by every subcommand.
const (
	flagConfig          = "config"
	flagLevelsFile      = "levels-file"
	flagLogLevel        = "log-level"
	flagVersionFallback = "version-fallback"
)

// NewRootCommand creates and returns the root cobra command for reprolevels
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reprolevels",
		Short: "Reproducibility levels for comparing container images",
		Long: `Reprolevels manages the reproducibility levels used to compare container
images. A level names the files that take part in a comparison: a regular
expression over paths plus explicit lists of files to skip and to include.

Levels come from a versioned catalog bundled with the binary (or a document
passed with --levels-file). They can be listed, inspected, extended with
extra files, or replaced by a custom level built on the command line.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text; main prints
		// the returned error
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.String(flagConfig, "", "config file (default $REPROLEVELS_HOME/config.yaml or ./.reprolevels/config.yaml)")
	flags.String(flagLevelsFile, "", "levels document to load instead of the bundled catalog (JSON or YAML)")
	flags.String(flagLogLevel, "", "log level: trace, debug, info, warn, error")
	flags.Bool(flagVersionFallback, false, "load the default version when an unsupported one is requested")

	// Add subcommands
	cmd.AddCommand(NewLevelsCommand())
	cmd.AddCommand(NewRegistryCommand())

	return cmd
}
