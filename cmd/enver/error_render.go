// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/enver/enver/internal/config"
	"github.com/enver/enver/internal/envfile"
	"github.com/enver/enver/internal/issue"
	"github.com/enver/enver/internal/runtime"
)

// classifyError maps a fatal error to the issue catalog page that explains
// it, or 0 when no page applies. A page chosen where the error was built
// takes precedence.
func classifyError(err error) issue.Id {
	var ae *issue.ActionableError
	if errors.As(err, &ae) && ae.Issue != 0 {
		return ae.Issue
	}

	switch {
	case errors.Is(err, runtime.ErrCommandNotFound):
		return issue.CommandNotFoundId
	case errors.Is(err, config.ErrInvalidConfigRuntimeMode):
		return issue.InvalidRuntimeModeId
	case errors.Is(err, os.ErrPermission):
		return issue.PermissionDeniedId
	case errors.Is(err, envfile.ErrNotText):
		return issue.EnvFileUnreadableId
	}

	if ae == nil {
		return 0
	}
	switch ae.Operation {
	case "read env file":
		if errors.Is(err, os.ErrNotExist) {
			return issue.EnvFileNotFoundId
		}
		return issue.EnvFileUnreadableId
	case "start command":
		return issue.CommandStartFailedId
	case "load configuration", "validate configuration":
		return issue.ConfigLoadFailedId
	}
	return 0
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// renderError writes err and its issue catalog page to stderr and returns
// the ExitError the command handler should return.
func (a *App) renderError(err error) error {
	fmt.Fprintf(a.stderr, "%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, a.verbose))

	if id := classifyError(err); id != 0 {
		if entry := issue.Get(id); entry != nil {
			rendered, renderErr := entry.Render(a.glamourStyle())
			if renderErr != nil {
				a.logger.Warn("failed to render issue catalog entry", "issue", id, "error", renderErr)
			} else {
				fmt.Fprint(a.stderr, rendered)
			}
		}
	}

	return &ExitError{Code: runtime.ExitFailure, Err: err}
}
