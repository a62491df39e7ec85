// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/enver/enver/internal/config"
	"github.com/enver/enver/internal/envfile"
	"github.com/enver/enver/internal/issue"
	"github.com/enver/enver/internal/runtime"
)

// runRequest captures the resolved inputs of "enver run".
type runRequest struct {
	EnvFile string
	Command string
	Args    []string
	Runtime config.RuntimeMode
	Wait    bool
}

func newRunCommand(app *App) *cobra.Command {
	var (
		runtimeFlag string
		detach      bool
	)

	cmd := &cobra.Command{
		Use:   "run <env-file> <command> [args...]",
		Short: "Run a command with the variables from an env file",
		Long: `Run a command with the variables from an env file added to its environment.

Variables from the file override inherited ones with the same name; all
other inherited variables are kept. The command shares enver's terminal.
enver exits 0 once the command has run, whatever its exit status; it only
fails when the env file cannot be read or the command cannot be started.

Flags for enver go before the env file. Everything after the command is
passed to it untouched.`,
		Example: `  enver run .env printenv DATABASE_URL
  enver run --runtime virtual .env make test
  enver run --detach .env ./server --port 8080`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceErrors = true

			mode := app.cfg.DefaultRuntime
			if runtimeFlag != "" {
				mode = config.RuntimeMode(runtimeFlag)
			}

			req := runRequest{
				EnvFile: args[0],
				Command: args[1],
				Args:    args[2:],
				Runtime: mode,
				Wait:    app.cfg.Run.Wait && !detach,
			}
			if err := app.runCommand(cmd.Context(), req); err != nil {
				return app.renderError(err)
			}
			return nil
		},
	}

	// Stop flag parsing at the first positional so the command's own flags
	// reach it untouched.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&runtimeFlag, "runtime", "", "runtime to launch the command with (native, virtual)")
	cmd.Flags().BoolVar(&detach, "detach", false, "start the command and return without waiting for it")
	_ = cmd.RegisterFlagCompletionFunc("runtime", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return app.runtimeCompletions(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runCommand loads the env file and launches the command with it.
func (a *App) runCommand(ctx context.Context, req runRequest) error {
	if valid, errs := req.Runtime.IsValid(); !valid {
		return issue.NewErrorContext().
			WithOperation("select runtime").
			WithResource(string(req.Runtime)).
			WithIssue(issue.InvalidRuntimeModeId).
			WithSuggestion("Use --runtime native or --runtime virtual").
			Wrap(errs[0]).
			BuildError()
	}

	env, err := envfile.LoadMap(req.EnvFile)
	if err != nil {
		return err
	}
	a.logger.Debug("env file loaded", "path", req.EnvFile, "variables", len(env))

	execCtx := runtime.NewExecutionContext(ctx, req.Command, req.Args, env)
	execCtx.BaseEnv = a.environ()
	execCtx.Stdin = a.stdin
	execCtx.Stdout = a.stdout
	execCtx.Stderr = a.stderr
	execCtx.Wait = req.Wait

	if !req.Wait && req.Runtime == config.RuntimeVirtual {
		a.logger.Warn("the virtual runtime always waits for the command; ignoring --detach")
	}

	a.logger.Debug("starting command", "command", req.Command, "args", req.Args, "runtime", req.Runtime)
	result := a.Runtimes.Execute(runtime.RuntimeType(req.Runtime), execCtx)
	if !result.Started() {
		return result.Error
	}

	switch {
	case result.Detached:
		a.logger.Debug("command detached", "command", req.Command, "pid", result.PID)
	case result.WaitError != nil:
		a.logger.Warn("waiting for command failed", "command", req.Command, "error", result.WaitError)
	default:
		a.logger.Debug("command finished", "command", req.Command, "exit_code", result.ExitCode)
	}
	return nil
}

// runtimeDescriptions annotates --runtime completions.
var runtimeDescriptions = map[runtime.RuntimeType]string{
	runtime.RuntimeTypeNative:  "spawn the command directly",
	runtime.RuntimeTypeVirtual: "run through the built-in shell interpreter",
}

// runtimeCompletions lists the runtimes usable on this system.
func (a *App) runtimeCompletions() []string {
	available := a.Runtimes.Available()
	out := make([]string, 0, len(available))
	for _, typ := range available {
		if desc, ok := runtimeDescriptions[typ]; ok {
			out = append(out, string(typ)+"\t"+desc)
			continue
		}
		out = append(out, string(typ))
	}
	return out
}
