// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"testing"

	"github.com/enver/enver/internal/config"
	"github.com/enver/enver/pkg/platform"
)

// staticConfig is a ConfigProvider returning a fixed config or error.
type staticConfig struct {
	cfg *config.Config
	err error
}

func (s staticConfig) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.cfg, nil
}

// newTestApp builds an App writing to buffers whose child processes inherit
// only PATH and ENVER_PARENT.
func newTestApp(t *testing.T, provider ConfigProvider) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	if provider == nil {
		provider = staticConfig{cfg: config.DefaultConfig()}
	}
	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		Config: provider,
		Environ: func() []string {
			return []string{"PATH=" + os.Getenv("PATH"), "ENVER_PARENT=kept"}
		},
		Stdin:  &bytes.Buffer{},
		Stdout: &stdout,
		Stderr: &stderr,
	})
	return app, &stdout, &stderr
}

func execute(app *App, args ...string) error {
	root := newRootCommand(app)
	root.SetArgs(args)
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)
	return root.ExecuteContext(context.Background())
}

func requireTool(t *testing.T, name string) {
	t.Helper()
	if platform.IsWindows() {
		t.Skip("test relies on POSIX utilities")
	}
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}
