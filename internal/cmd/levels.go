package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harrison/reprolevels/internal/display"
	"github.com/harrison/reprolevels/internal/fileutil"
	"github.com/harrison/reprolevels/internal/levels"
)

// NewLevelsCommand creates the 'reprolevels levels' command group
func NewLevelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List, inspect and build reproducibility levels",
	}

	cmd.AddCommand(NewLevelsListCommand())
	cmd.AddCommand(NewLevelsShowCommand())
	cmd.AddCommand(NewLevelsCustomCommand())
	cmd.AddCommand(NewLevelsCheckCommand())

	return cmd
}

// addOutputFlags registers the machine-readable output switches.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "print as JSON")
	cmd.Flags().Bool("yaml", false, "print as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

// writeStructured encodes v as JSON or YAML when the matching flag is set and
// reports whether it did.
func writeStructured(cmd *cobra.Command, v interface{}) (bool, error) {
	out := cmd.OutOrStdout()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "    ")
		if err := enc.Encode(v); err != nil {
			return true, fmt.Errorf("encode json: %w", err)
		}
		return true, nil
	}

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, fmt.Errorf("encode yaml: %w", err)
		}
		return true, enc.Close()
	}

	return false, nil
}

// NewLevelsListCommand creates the 'reprolevels levels list' command
func NewLevelsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the levels in a catalog version",
		Long: `List every level in the catalog with its description.

Version 2.3 includes the LABELS level; version 2.2 does not.`,
		Args: cobra.NoArgs,
		RunE: runLevelsList,
	}

	cmd.Flags().String("version", "", "catalog version (default from config, 2.3)")
	addOutputFlags(cmd)

	return cmd
}

func runLevelsList(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	version := env.version(cmd)
	catalog, err := env.loader.LoadLevels(version)
	if err != nil {
		return warnOnError(cmd.ErrOrStderr(), err)
	}

	if done, err := writeStructured(cmd, catalog); done {
		return err
	}

	display.PrintCatalog(cmd.OutOrStdout(), effectiveVersion(version), catalog)
	return nil
}

// NewLevelsShowCommand creates the 'reprolevels levels show' command
func NewLevelsShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <level>",
		Short: "Show one level, optionally with extra files",
		Long: `Show the rules of a level from the catalog. The name is matched
case-insensitively.

--skip and --include append files to the level's skip and include sets for
this invocation only; the catalog is not changed.`,
		Args: cobra.ExactArgs(1),
		RunE: runLevelsShow,
	}

	cmd.Flags().String("version", "", "catalog version (default from config, 2.3)")
	cmd.Flags().StringArray("include", nil, "file to add to the include set (repeatable)")
	cmd.Flags().StringArray("skip", nil, "file to add to the skip set (repeatable)")
	addOutputFlags(cmd)

	return cmd
}

func runLevelsShow(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	level, err := env.loader.GetLevel(args[0], env.version(cmd), changedArray(cmd, "include"), changedArray(cmd, "skip"))
	if err != nil {
		return warnOnError(cmd.ErrOrStderr(), err)
	}

	return printLevel(cmd, levelName(args[0]), level)
}

// NewLevelsCustomCommand creates the 'reprolevels levels custom' command
func NewLevelsCustomCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "custom",
		Short: "Build a custom level from flags",
		Long: `Build a level that is not in the catalog. Without flags the level
matches every path (regexp ".") and has no skip or include files.`,
		Args: cobra.NoArgs,
		RunE: runLevelsCustom,
	}

	cmd.Flags().String("regexp", levels.DefaultRegexp, "expression selecting the paths to compare")
	cmd.Flags().String("description", levels.DefaultCustomDescription, "description of the level")
	cmd.Flags().StringArray("include", nil, "file to include regardless of the expression (repeatable)")
	cmd.Flags().StringArray("skip", nil, "file to skip regardless of the expression (repeatable)")
	addOutputFlags(cmd)

	return cmd
}

func runLevelsCustom(cmd *cobra.Command, args []string) error {
	expr, _ := cmd.Flags().GetString("regexp")
	description, _ := cmd.Flags().GetString("description")

	opts := []levels.CustomOption{
		levels.WithRegexp(expr),
		levels.WithDescription(description),
	}
	if include := changedArray(cmd, "include"); include != nil {
		opts = append(opts, levels.WithIncludeFiles(include...))
	}
	if skip := changedArray(cmd, "skip"); skip != nil {
		opts = append(opts, levels.WithSkipFiles(skip...))
	}

	level := levels.BuildCustomLevel(opts...)
	if _, err := levels.NewFilter(level); err != nil {
		return err
	}

	return printLevel(cmd, "CUSTOM", level)
}

// NewLevelsCheckCommand creates the 'reprolevels levels check' command
func NewLevelsCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <level> [path]...",
		Short: "Show which paths a level compares",
		Long: `Apply a level to each path and print whether the path takes part in
the comparison. Skip files win over include files, which win over the
level's expression. Archive member names such as ./etc/hosts are checked as
/etc/hosts.

With --root, every file below an unpacked image filesystem is checked as
well, named by its path inside the image.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runLevelsCheck,
	}

	cmd.Flags().String("version", "", "catalog version (default from config, 2.3)")
	cmd.Flags().String("root", "", "unpacked image filesystem to check")
	cmd.Flags().StringArray("exclude-dir", []string{"/proc", "/sys", "/dev"}, "directory inside --root to skip (repeatable)")

	return cmd
}

func runLevelsCheck(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")
	paths := args[1:]
	if len(paths) == 0 && root == "" {
		return fmt.Errorf("no paths to check: pass paths or --root")
	}

	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	level, err := env.loader.GetLevel(args[0], env.version(cmd), nil, nil)
	if err != nil {
		return warnOnError(cmd.ErrOrStderr(), err)
	}

	filter, err := levels.NewFilter(level)
	if err != nil {
		return err
	}

	if root != "" {
		excludeDirs, _ := cmd.Flags().GetStringArray("exclude-dir")
		result, err := fileutil.ScanRoot(root, fileutil.ScanOptions{ExcludeDirs: excludeDirs})
		if err != nil {
			return fmt.Errorf("scan %s: %w", root, err)
		}
		for _, scanErr := range result.Errors {
			env.log.Warnf("%v", scanErr)
		}
		env.log.Debugf("found %d files below %s", len(result.Files), root)
		paths = append(paths, result.Files...)
	}

	report := display.NewCheckReport(cmd.OutOrStdout(), levelName(args[0]), len(paths))
	report.Start()
	for _, path := range paths {
		report.Step(path, filter.Includes(path))
	}
	report.Complete()

	env.log.Debugf("%d of %d paths included", report.Included(), len(paths))
	return nil
}

// printLevel writes level in the format selected by the output flags.
func printLevel(cmd *cobra.Command, name string, level levels.Level) error {
	if done, err := writeStructured(cmd, level); done {
		return err
	}
	display.PrintLevel(cmd.OutOrStdout(), name, level)
	return nil
}

// changedArray returns the flag's values, or nil when it was not given so the
// corresponding level field stays untouched.
func changedArray(cmd *cobra.Command, name string) []string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	values, _ := cmd.Flags().GetStringArray(name)
	if values == nil {
		values = []string{}
	}
	return values
}

// levelName is the catalog key for a user-supplied level name.
func levelName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
