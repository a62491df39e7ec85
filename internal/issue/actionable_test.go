// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "read env file"},
			want: "failed to read env file",
		},
		{
			name: "with resource",
			err:  &ActionableError{Operation: "read env file", Resource: "./.env"},
			want: "failed to read env file: ./.env",
		},
		{
			name: "with resource and cause",
			err: &ActionableError{
				Operation: "start command",
				Resource:  "printenv",
				Cause:     errors.New("boom"),
			},
			want: "failed to start command: printenv: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	t.Parallel()

	wrapped := &ActionableError{Operation: "read env file", Cause: os.ErrNotExist}
	if !errors.Is(wrapped, os.ErrNotExist) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		verbose  bool
		contains []string
		excludes []string
	}{
		{
			name: "suggestions are bulleted",
			err: &ActionableError{
				Operation:   "read env file",
				Resource:    "./.env",
				Suggestions: []string{"Verify the file path is correct"},
			},
			contains: []string{"failed to read env file: ./.env", "• Verify the file path is correct"},
		},
		{
			name: "no error chain in non-verbose",
			err: &ActionableError{
				Operation: "start command",
				Cause:     errors.New("not found"),
			},
			contains: []string{"failed to start command: not found"},
			excludes: []string{"Error chain:"},
		},
		{
			name: "nested error chain verbose",
			err: &ActionableError{
				Operation: "run command",
				Cause: &ActionableError{
					Operation: "start command",
					Cause:     errors.New("not found"),
				},
			},
			verbose: true,
			contains: []string{
				"Error chain:",
				"1. failed to start command: not found",
				"2. not found",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.err.Format(tt.verbose)
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Format() missing %q in:\n%s", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("Format() should not contain %q in:\n%s", s, got)
				}
			}
		})
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("denied")
	ae := NewErrorContext().
		WithOperation("read env file").
		WithResource("/etc/app.env").
		WithSuggestion("one").
		WithSuggestion("two").
		Wrap(cause).
		Build()

	if ae == nil {
		t.Fatal("Build() returned nil")
	}
	if ae.Operation != "read env file" || ae.Resource != "/etc/app.env" {
		t.Errorf("Build() = %+v", ae)
	}
	if len(ae.Suggestions) != 2 {
		t.Errorf("len(Suggestions) = %d, want 2", len(ae.Suggestions))
	}
	if !errors.Is(ae, cause) {
		t.Error("built error does not wrap cause")
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	t.Parallel()

	if ae := NewErrorContext().WithResource("x").Build(); ae != nil {
		t.Errorf("Build() = %+v, want nil", ae)
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() = %v, want nil", err)
	}
}

func TestErrorContext_IssueAndFormattedSuggestion(t *testing.T) {
	t.Parallel()

	ctx := NewErrorContext().
		WithOperation("read env file").
		WithIssue(EnvFileNotFoundId).
		WithSuggestionf("Check that %s exists", "./.env")
	ae := ctx.Build()

	if ae.Issue != EnvFileNotFoundId {
		t.Errorf("Issue = %d, want %d", ae.Issue, EnvFileNotFoundId)
	}
	if len(ae.Suggestions) != 1 || ae.Suggestions[0] != "Check that ./.env exists" {
		t.Errorf("Suggestions = %q", ae.Suggestions)
	}

	// Later builder calls must not leak into an error already built.
	ctx.WithSuggestion("another")
	if len(ae.Suggestions) != 1 {
		t.Errorf("built error changed after builder reuse: %q", ae.Suggestions)
	}
}

func TestActionableError_FormatWalksJoinedCauses(t *testing.T) {
	t.Parallel()

	ae := &ActionableError{
		Operation: "load configuration",
		Cause:     errors.Join(errors.New("first"), errors.New("second")),
	}
	got := ae.Format(true)
	for _, want := range []string{"2. first", "3. second"} {
		if !strings.Contains(got, want) {
			t.Errorf("Format(true) missing %q in:\n%s", want, got)
		}
	}
}
