// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
)

// Runtime type constants for the supported execution environments.
const (
	RuntimeTypeNative  RuntimeType = "native"
	RuntimeTypeVirtual RuntimeType = "virtual"
)

var (
	// ErrCommandNotFound is wrapped by start errors for commands that do not
	// resolve to an executable file.
	ErrCommandNotFound = errors.New("command not found")

	// ErrRuntimeNotRegistered is returned by Registry.Get for unknown types.
	ErrRuntimeNotRegistered = errors.New("runtime not registered")
)

type (
	// ExecutionContext contains all information needed to launch a command.
	ExecutionContext struct {
		// Context is the Go context for cancellation.
		Context context.Context
		// Command is the program name or path.
		Command string
		// Args are passed to the program untouched.
		Args []string
		// Env holds the env file entries merged over BaseEnv.
		Env map[string]string
		// BaseEnv is the inherited environment in KEY=VALUE form.
		BaseEnv []string
		// Stdin is where to read standard input.
		Stdin io.Reader
		// Stdout is where to write standard output.
		Stdout io.Writer
		// Stderr is where to write standard error.
		Stderr io.Writer
		// Wait blocks Execute until the command exits.
		Wait bool
	}

	// Runtime defines the interface for command execution.
	Runtime interface {
		// Name returns the runtime name.
		Name() string
		// Available returns whether this runtime can run on the current system.
		Available() bool
		// Execute launches the command described by ctx.
		Execute(ctx *ExecutionContext) *Result
	}

	// RuntimeType identifies the type of runtime.
	//
	//nolint:revive // RuntimeType is more descriptive than Type for external callers
	RuntimeType string

	// Registry holds the available runtimes.
	Registry struct {
		runtimes map[RuntimeType]Runtime
	}
)

// NewExecutionContext creates an execution context that inherits the parent
// process environment and standard streams and waits for the command.
func NewExecutionContext(ctx context.Context, command string, args []string, env map[string]string) *ExecutionContext {
	return &ExecutionContext{
		Context: ctx,
		Command: command,
		Args:    args,
		Env:     env,
		BaseEnv: os.Environ(),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Wait:    true,
	}
}

// goContext returns the cancellation context, defaulting to Background.
func (c *ExecutionContext) goContext() context.Context {
	if c.Context == nil {
		return context.Background()
	}
	return c.Context
}

// MergedEnv returns BaseEnv with the env file entries applied.
func (c *ExecutionContext) MergedEnv() []string {
	return MergeEnv(c.BaseEnv, c.Env)
}

// String returns the runtime type name.
func (t RuntimeType) String() string { return string(t) }

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		runtimes: make(map[RuntimeType]Runtime),
	}
}

// BuildRegistry returns a registry with the native and virtual runtimes.
func BuildRegistry() *Registry {
	r := NewRegistry()
	r.Register(RuntimeTypeNative, NewNativeRuntime())
	r.Register(RuntimeTypeVirtual, NewVirtualRuntime())
	return r
}

// Register adds a runtime to the registry.
func (r *Registry) Register(typ RuntimeType, rt Runtime) {
	r.runtimes[typ] = rt
}

// Get returns a runtime by type.
func (r *Registry) Get(typ RuntimeType) (Runtime, error) {
	rt, ok := r.runtimes[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRuntimeNotRegistered, typ)
	}
	return rt, nil
}

// Available returns the registered runtimes that can run here, sorted by name.
func (r *Registry) Available() []RuntimeType {
	var types []RuntimeType
	for typ, rt := range r.runtimes {
		if rt.Available() {
			types = append(types, typ)
		}
	}
	slices.Sort(types)
	return types
}

// Execute launches ctx with the runtime registered under typ.
func (r *Registry) Execute(typ RuntimeType, ctx *ExecutionContext) *Result {
	rt, err := r.Get(typ)
	if err != nil {
		return NewErrorResult(ExitFailure, err)
	}
	if !rt.Available() {
		return NewErrorResult(ExitFailure, fmt.Errorf("runtime %q is not available on this system", typ))
	}
	return rt.Execute(ctx)
}
