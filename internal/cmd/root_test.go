package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harrison/reprolevels/internal/config"
)

// executeCommand runs the root command with args in an isolated home and
// returns what it wrote to stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.HomeEnv, t.TempDir())
	t.Setenv(config.LevelsFileEnv, "")

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	if cmd == nil {
		t.Fatal("Root command should not be nil")
	}

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("--help returned error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "reprolevels") {
		t.Errorf("Help text should contain 'reprolevels', got: %s", output)
	}
	if !strings.Contains(output, "reproducibility levels") {
		t.Errorf("Help text should describe reproducibility levels, got: %s", output)
	}
	for _, flag := range []string{"--config", "--levels-file", "--log-level", "--version-fallback"} {
		if !strings.Contains(output, flag) {
			t.Errorf("Help text should list %s, got: %s", flag, output)
		}
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	if cmd.Use != "reprolevels" {
		t.Errorf("Expected Use to be 'reprolevels', got '%s'", cmd.Use)
	}

	want := map[string][]string{
		"levels":   {"list", "show", "custom", "check"},
		"registry": {"init"},
	}
	for group, subs := range want {
		found, _, err := cmd.Find([]string{group})
		if err != nil || found.Name() != group {
			t.Fatalf("Expected %s subcommand, got %v (err %v)", group, found, err)
		}
		for _, sub := range subs {
			leaf, _, err := cmd.Find([]string{group, sub})
			if err != nil || leaf.Name() != sub {
				t.Errorf("Expected %s %s subcommand, got %v (err %v)", group, sub, leaf, err)
			}
		}
	}
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := executeCommand(t, "--version")
	if err != nil {
		t.Fatalf("--version returned error: %v", err)
	}
	if !strings.Contains(stdout, "version") {
		t.Errorf("Version output should contain 'version', got: %s", stdout)
	}
}

func TestInvalidLogLevelFlag(t *testing.T) {
	_, _, err := executeCommand(t, "levels", "list", "--log-level", "loud")
	if err == nil || !strings.Contains(err.Error(), "invalid log_level") {
		t.Fatalf("Expected invalid log_level error, got %v", err)
	}
}
