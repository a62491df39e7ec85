// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/enver/enver/internal/config"
	"github.com/enver/enver/internal/testutil"
)

func TestConfigDump_PrintsEffectiveConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.DefaultRuntime = config.RuntimeVirtual
	app, stdout, _ := newTestApp(t, staticConfig{cfg: cfg})

	if err := execute(app, "config", "dump"); err != nil {
		t.Fatalf("config dump failed: %v", err)
	}
	if !strings.Contains(stdout.String(), `default_runtime: "virtual"`) {
		t.Errorf("dump output:\n%s", stdout)
	}
}

func TestConfigShow(t *testing.T) {
	t.Parallel()

	app, stdout, _ := newTestApp(t, nil)

	if err := execute(app, "config", "show"); err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	out := stdout.String()
	for _, want := range []string{"Current Configuration", "(using defaults)", "default_runtime", "native", "border", "color_scheme"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigShow_ReportsFile(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, t.TempDir(), "custom.cue", "list: border: \"thick\"\n")
	app, stdout, _ := newTestApp(t, config.NewProvider())

	if err := execute(app, "--config", path, "config", "show"); err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(stdout.String(), path) {
		t.Errorf("show should name %s:\n%s", path, stdout)
	}
	if !strings.Contains(stdout.String(), "thick") {
		t.Errorf("show should print list.border from the file:\n%s", stdout)
	}
}

func TestBrokenConfigFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	app, stdout, stderr := newTestApp(t, staticConfig{err: errors.New("bad config")})
	path := testutil.WriteEnvFile(t, "FOO=bar\n")

	if err := execute(app, "list", path); err != nil {
		t.Fatalf("list should still work with a broken config: %v", err)
	}
	if !strings.Contains(stderr.String(), "Warning: ") || !strings.Contains(stderr.String(), "bad config") {
		t.Errorf("expected a config warning, got:\n%s", stderr)
	}
	if !strings.Contains(stdout.String(), "FOO") {
		t.Errorf("list output missing:\n%s", stdout)
	}
}
