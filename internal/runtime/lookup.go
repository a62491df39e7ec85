// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"fmt"
	"os"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"

	"github.com/enver/enver/internal/issue"
)

// lookPath resolves command against the PATH in env, relative to dir.
// Paths containing a separator are checked as given.
func lookPath(dir string, env []string, command string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}
	path, err := interp.LookPathDir(dir, expand.ListEnviron(env...), command)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCommandNotFound, err)
	}
	return path, nil
}

// startError builds the fatal error reported when command cannot be launched.
func startError(command string, err error) error {
	id := issue.CommandStartFailedId
	switch {
	case errors.Is(err, ErrCommandNotFound):
		id = issue.CommandNotFoundId
	case errors.Is(err, os.ErrPermission):
		id = issue.PermissionDeniedId
	}

	return issue.NewErrorContext().
		WithOperation("start command").
		WithResource(command).
		WithIssue(id).
		WithSuggestion("Check that the command is installed and spelled correctly").
		WithSuggestion("Check that PATH, after applying the env file, includes the command's directory").
		Wrap(err).
		BuildError()
}
