package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/reprolevels/internal/registry"
)

// NewRegistryCommand creates the 'reprolevels registry' command group
func NewRegistryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Scaffold container registries",
	}

	cmd.AddCommand(NewRegistryInitCommand())

	return cmd
}

// NewRegistryInitCommand creates the 'reprolevels registry init' command
func NewRegistryInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <base>",
		Short: "Create a new registry folder tree and config",
		Long: `Create a registry at <base>:
  - <base>/recipes        recipes (plus CI templates unless disabled in config)
  - <base>/builder        builder templates
  - <storage>/containers  container storage (default <base>/storage)
  - <base>/config.json    registry config with a generated REGISTRY_ID

Nothing is created if <base> or the storage folder already exists.`,
		Args: cobra.ExactArgs(1),
		RunE: runRegistryInit,
	}

	cmd.Flags().String("uri", "", "registry URI, used as its short identifier (required)")
	cmd.Flags().String("name", "", "human readable registry name (required)")
	cmd.Flags().String("storage", "", "container storage folder (default <base>/storage)")
	_ = cmd.MarkFlagRequired("uri")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runRegistryInit(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	uri, _ := cmd.Flags().GetString("uri")
	name, _ := cmd.Flags().GetString("name")
	storage, _ := cmd.Flags().GetString("storage")

	configFile, err := registry.NewGenerator(env.log).Generate(registry.Options{
		Base:           args[0],
		URI:            uri,
		Name:           name,
		Storage:        storage,
		ConfigFilename: env.cfg.Registry.ConfigFilename,
		CITemplates:    env.cfg.Registry.CITemplates,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Registry %q created, config written to %s\n", name, configFile)
	return nil
}
