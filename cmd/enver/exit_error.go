// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/enver/enver/internal/runtime"
)

// ExitError is returned by handlers that have already reported Err to the
// user. Execute turns it into the process exit status.
type ExitError struct {
	Code runtime.ExitCode
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return "exit status " + e.Code.String()
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitStatus maps an error returned by the command tree to the status enver
// exits with. Anything but a positive ExitError code becomes ExitFailure.
func exitStatus(err error) int {
	if err == nil {
		return int(runtime.ExitSuccess)
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code > runtime.ExitSuccess {
		return int(exitErr.Code)
	}
	return int(runtime.ExitFailure)
}
