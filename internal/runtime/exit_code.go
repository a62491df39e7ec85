// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"os/exec"
	"strconv"

	"mvdan.cc/sh/v3/interp"
)

// ExitCode is the status a command exited with.
type ExitCode int

const (
	ExitSuccess ExitCode = 0

	// ExitFailure is reported when a command could not be started or its
	// status could not be determined.
	ExitFailure ExitCode = 1

	// ExitSignaled is reported for a native child terminated by a signal.
	ExitSignaled ExitCode = -1
)

// IsSuccess reports whether the command exited cleanly.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

func (c ExitCode) String() string {
	if c == ExitSignaled {
		return "signaled"
	}
	return strconv.Itoa(int(c))
}

// exitCodeOf extracts the exit status carried by a wait or run error from
// either runtime. ok is false when err is some other failure, in which case
// ExitFailure is returned.
func exitCodeOf(err error) (code ExitCode, ok bool) {
	if err == nil {
		return ExitSuccess, true
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return ExitCode(exitErr.ExitCode()), true
	}

	var status interp.ExitStatus
	if errors.As(err, &status) {
		return ExitCode(status), true
	}

	return ExitFailure, false
}
