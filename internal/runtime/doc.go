// SPDX-License-Identifier: MPL-2.0

// Package runtime launches the child process for "enver run".
//
// Two runtimes implement the Runtime interface:
//   - native: spawns the command directly with os/exec
//   - virtual: runs the command through the embedded mvdan/sh interpreter
//
// Both merge the env file entries over ExecutionContext.BaseEnv (the parent
// environment by default) and resolve the command against the merged PATH.
// A command that cannot be resolved or started is reported as an
// *issue.ActionableError wrapping ErrCommandNotFound or the start failure.
// The child's exit status is recorded on the Result; it is never turned into
// an error.
package runtime
