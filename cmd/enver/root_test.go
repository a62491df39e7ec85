// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/fang"
)

func TestGetVersionString(t *testing.T) {
	// Mutates package-level version variables.
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origDate })

	Version = "dev"
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}

	Version, Commit, BuildDate = "v1.2.3", "abc123", "2026-01-01"
	want := "v1.2.3 (commit: abc123, built: 2026-01-01)"
	if got := getVersionString(); got != want {
		t.Errorf("getVersionString() = %q, want %q", got, want)
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t, nil)
	root := newRootCommand(app)

	for _, name := range []string{"run", "list", "config", "completion"} {
		if c, _, err := root.Find([]string{name}); err != nil || c.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRunCommand_StopsParsingFlagsAtCommand(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t, nil)
	run, _, err := newRootCommand(app).Find([]string{"run"})
	if err != nil {
		t.Fatal(err)
	}
	if err := run.Flags().Parse([]string{"--runtime", "virtual", ".env", "ls", "--runtime", "-la"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got := run.Flags().Args()
	if strings.Join(got, " ") != ".env ls --runtime -la" {
		t.Errorf("positional args = %v", got)
	}
	if v, _ := run.Flags().GetString("runtime"); v != "virtual" {
		t.Errorf("--runtime = %q, want virtual", v)
	}
}

func TestCompletion(t *testing.T) {
	t.Parallel()

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			t.Parallel()

			app, _, _ := newTestApp(t, nil)
			var out bytes.Buffer
			root := newRootCommand(app)
			root.SetOut(&out)
			root.SetArgs([]string{"completion", shell})
			if err := root.Execute(); err != nil {
				t.Fatalf("completion %s failed: %v", shell, err)
			}
			if !strings.Contains(out.String(), "enver") {
				t.Errorf("completion script does not mention enver")
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rendered := fmt.Errorf("wrapped: %w", &ExitError{Code: 1, Err: errors.New("failed to read env file: x")})
	errorHandler(&buf, fang.Styles{}, rendered)
	if buf.Len() != 0 {
		t.Errorf("already rendered error printed again:\n%s", buf.String())
	}

	errorHandler(&buf, fang.Styles{}, errors.New("unknown flag: --nope"))
	if !strings.Contains(buf.String(), "unknown flag: --nope") {
		t.Errorf("usage error not printed:\n%s", buf.String())
	}
}
