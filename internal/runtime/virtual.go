// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualRuntime runs commands through the embedded mvdan/sh interpreter.
// Shell builtins such as echo run in-process; everything else is resolved
// against the merged PATH and spawned by the interpreter.
type VirtualRuntime struct{}

// NewVirtualRuntime creates a new virtual runtime.
func NewVirtualRuntime() *VirtualRuntime {
	return &VirtualRuntime{}
}

// Name returns the runtime name.
func (r *VirtualRuntime) Name() string {
	return string(RuntimeTypeVirtual)
}

// Available returns whether this runtime is available.
func (r *VirtualRuntime) Available() bool {
	// Virtual runtime is always available as it's built-in
	return true
}

// Execute runs the command in a fresh interpreter. The interpreter lives in
// this process, so Execute always waits regardless of ctx.Wait.
func (r *VirtualRuntime) Execute(ctx *ExecutionContext) *Result {
	script, err := commandLine(ctx.Command, ctx.Args)
	if err != nil {
		return NewErrorResult(ExitFailure, startError(ctx.Command, err))
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(script), ctx.Command)
	if err != nil {
		return NewErrorResult(ExitFailure, startError(ctx.Command, fmt.Errorf("failed to parse command line: %w", err)))
	}

	runner, err := interp.New(
		interp.Env(expand.ListEnviron(ctx.MergedEnv()...)),
		interp.StdIO(ctx.Stdin, ctx.Stdout, ctx.Stderr),
		interp.ExecHandlers(r.execHandler),
	)
	if err != nil {
		return NewErrorResult(ExitFailure, fmt.Errorf("failed to create interpreter: %w", err))
	}

	err = runner.Run(ctx.goContext(), prog)
	if errors.Is(err, ErrCommandNotFound) {
		return NewErrorResult(ExitFailure, startError(ctx.Command, err))
	}
	code, ok := exitCodeOf(err)
	if !ok {
		return &Result{ExitCode: code, WaitError: err}
	}
	return NewExitCodeResult(code)
}

// execHandler fails fast on commands missing from the merged PATH instead
// of letting the interpreter print "command not found" and exit 127.
func (r *VirtualRuntime) execHandler(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		hc := interp.HandlerCtx(ctx)
		if _, err := interp.LookPathDir(hc.Dir, hc.Env, args[0]); err != nil {
			return fmt.Errorf("%w: %w", ErrCommandNotFound, err)
		}
		return next(ctx, args)
	}
}

// commandLine quotes command and args into a single shell command so that
// no word is subject to expansion.
func commandLine(command string, args []string) (string, error) {
	words := make([]string, 0, len(args)+1)
	for _, w := range append([]string{command}, args...) {
		quoted, err := syntax.Quote(w, syntax.LangBash)
		if err != nil {
			return "", fmt.Errorf("cannot quote %q: %w", w, err)
		}
		words = append(words, quoted)
	}
	return strings.Join(words, " "), nil
}
