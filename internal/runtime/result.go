// SPDX-License-Identifier: MPL-2.0

package runtime

// Result contains the outcome of launching a command.
type Result struct {
	// ExitCode is the exit code of the command. It is zero when the
	// command was not waited for.
	ExitCode ExitCode
	// Error is set when the command could not be started.
	Error error
	// WaitError is set when waiting failed for a reason other than a
	// non-zero exit status.
	WaitError error
	// PID is the process id of a natively started command.
	PID int
	// Detached reports that the command was started without waiting.
	Detached bool
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
func NewExitCodeResult(code ExitCode) *Result {
	return &Result{ExitCode: code}
}

// Started returns true if the command was launched.
func (r *Result) Started() bool {
	return r.Error == nil
}
