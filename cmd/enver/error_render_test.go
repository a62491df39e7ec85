// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"testing"

	"github.com/enver/enver/internal/config"
	"github.com/enver/enver/internal/envfile"
	"github.com/enver/enver/internal/issue"
	"github.com/enver/enver/internal/runtime"
)

func actionable(op string, cause error) error {
	return issue.NewErrorContext().WithOperation(op).WithResource("x").Wrap(cause).BuildError()
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{
			name: "env file missing",
			err:  actionable("read env file", fs.ErrNotExist),
			want: issue.EnvFileNotFoundId,
		},
		{
			name: "env file not text",
			err:  actionable("read env file", envfile.ErrNotText),
			want: issue.EnvFileUnreadableId,
		},
		{
			name: "env file is a directory",
			err:  actionable("read env file", errors.New("is a directory")),
			want: issue.EnvFileUnreadableId,
		},
		{
			name: "permission",
			err:  actionable("read env file", fs.ErrPermission),
			want: issue.PermissionDeniedId,
		},
		{
			name: "command not found",
			err:  actionable("start command", fmt.Errorf("%w: %w", runtime.ErrCommandNotFound, exec.ErrNotFound)),
			want: issue.CommandNotFoundId,
		},
		{
			name: "command failed to start",
			err:  actionable("start command", errors.New("exec format error")),
			want: issue.CommandStartFailedId,
		},
		{
			name: "invalid runtime",
			err:  actionable("select runtime", &config.InvalidConfigRuntimeModeError{Value: "container"}),
			want: issue.InvalidRuntimeModeId,
		},
		{
			name: "config",
			err:  actionable("load configuration", errors.New("bad cue")),
			want: issue.ConfigLoadFailedId,
		},
		{
			name: "issue set at the source wins",
			err: issue.NewErrorContext().
				WithOperation("read env file").
				WithIssue(issue.PermissionDeniedId).
				Wrap(fs.ErrNotExist).
				BuildError(),
			want: issue.PermissionDeniedId,
		},
		{
			name: "plain error",
			err:  errors.New("something else"),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := classifyError(tt.err); got != tt.want {
				t.Errorf("classifyError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	err := issue.NewErrorContext().
		WithOperation("read env file").
		WithResource(".env").
		WithSuggestion("Verify the file path is correct").
		Wrap(fmt.Errorf("open .env: %w", fs.ErrNotExist)).
		BuildError()

	short := formatErrorForDisplay(err, false)
	if !strings.Contains(short, "Verify the file path is correct") {
		t.Errorf("suggestions missing:\n%s", short)
	}
	if strings.Contains(short, "Error chain") {
		t.Errorf("non-verbose output should not include the chain:\n%s", short)
	}
	if long := formatErrorForDisplay(err, true); !strings.Contains(long, "Error chain") {
		t.Errorf("verbose output should include the chain:\n%s", long)
	}

	if got := formatErrorForDisplay(errors.New("plain"), true); got != "plain" {
		t.Errorf("plain error = %q", got)
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	if got := (&ExitError{Code: 2}).Error(); got != "exit status 2" {
		t.Errorf("Error() = %q", got)
	}
	cause := errors.New("boom")
	if err := (&ExitError{Code: 1, Err: cause}); !errors.Is(err, cause) || err.Error() != "boom" {
		t.Errorf("ExitError should wrap and print its cause, got %q", err.Error())
	}
}

func TestExitStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain error", err: errors.New("unknown flag"), want: 1},
		{name: "exit error", err: &ExitError{Code: 3}, want: 3},
		{name: "wrapped exit error", err: fmt.Errorf("fang: %w", &ExitError{Code: 2}), want: 2},
		{name: "signaled code", err: &ExitError{Code: runtime.ExitSignaled}, want: 1},
	}

	for _, tt := range tests {
		if got := exitStatus(tt.err); got != tt.want {
			t.Errorf("%s: exitStatus() = %d, want %d", tt.name, got, tt.want)
		}
	}
}
