// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/enver/enver/pkg/platform"
)

// interruptGrace is how long a canceled child has to exit after being
// interrupted before it is killed.
const interruptGrace = 10 * time.Second

// NativeRuntime spawns commands directly on the host.
type NativeRuntime struct{}

// NewNativeRuntime creates a new native runtime.
func NewNativeRuntime() *NativeRuntime {
	return &NativeRuntime{}
}

// Name returns the runtime name.
func (r *NativeRuntime) Name() string {
	return string(RuntimeTypeNative)
}

// Available returns whether this runtime is available.
func (r *NativeRuntime) Available() bool {
	return true
}

// Execute starts the command with the merged environment and the context's
// streams. When ctx.Wait is set it blocks until the command exits and
// records the exit code; otherwise the process is released and left running.
func (r *NativeRuntime) Execute(ctx *ExecutionContext) *Result {
	env := ctx.MergedEnv()

	path, err := lookPath("", env, ctx.Command)
	if err != nil {
		return NewErrorResult(ExitFailure, startError(ctx.Command, err))
	}

	cmd := exec.CommandContext(ctx.goContext(), path, ctx.Args...)
	cmd.Args[0] = ctx.Command
	cmd.Env = env
	cmd.Stdin = ctx.Stdin
	cmd.Stdout = ctx.Stdout
	cmd.Stderr = ctx.Stderr
	// Cancellation forwards an interrupt instead of the default SIGKILL.
	cmd.Cancel = func() error { return interrupt(cmd.Process) }
	cmd.WaitDelay = interruptGrace

	if err := cmd.Start(); err != nil {
		return NewErrorResult(ExitFailure, startError(ctx.Command, err))
	}
	pid := cmd.Process.Pid

	if !ctx.Wait {
		// Release errors only matter on Windows, where the handle is
		// closed when this process exits anyway.
		_ = cmd.Process.Release()
		return &Result{PID: pid, Detached: true}
	}

	err = cmd.Wait()
	if code, ok := exitCodeOf(err); ok {
		return &Result{PID: pid, ExitCode: code}
	}
	// Wait reports the context error when the interrupted child exits
	// cleanly; the child's own status is what gets recorded.
	if ctxErr := ctx.goContext().Err(); ctxErr != nil && errors.Is(err, ctxErr) && cmd.ProcessState != nil {
		return &Result{PID: pid, ExitCode: ExitCode(cmd.ProcessState.ExitCode())}
	}
	return &Result{PID: pid, ExitCode: ExitFailure, WaitError: err}
}

// interrupt asks p to stop. Windows cannot deliver os.Interrupt to another
// process, so it is killed there.
func interrupt(p *os.Process) error {
	if platform.IsWindows() {
		return p.Kill()
	}
	return p.Signal(os.Interrupt)
}
