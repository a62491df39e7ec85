// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enver/enver/internal/config"
	"github.com/enver/enver/internal/envfile"
	"github.com/enver/enver/internal/issue"
	"github.com/enver/enver/internal/tui"
)

// listRequest captures the resolved inputs of "enver list".
type listRequest struct {
	EnvFile string
	Output  config.OutputFormat
	Border  tui.BorderStyle
}

func newListCommand(app *App) *cobra.Command {
	var (
		output string
		border string
	)

	cmd := &cobra.Command{
		Use:   "list <env-file>",
		Short: "Print the variables defined in an env file",
		Long: `Print the variables defined in an env file, in file order.

Every valid NAME=VALUE line is shown, including repeated names; "enver run"
uses the last value of a repeated name.`,
		Example: `  enver list .env
  enver list --border .env
  enver list --border=double .env
  enver list --output toml .env`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceErrors = true

			req := listRequest{
				EnvFile: args[0],
				Output:  app.cfg.List.Output,
				Border:  tui.BorderStyle(app.cfg.List.Border),
			}
			if cmd.Flags().Changed("output") {
				req.Output = config.OutputFormat(output)
			}
			if cmd.Flags().Changed("border") {
				req.Border = tui.BorderStyle(border)
			}

			if err := app.listEntries(req); err != nil {
				return app.renderError(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(config.OutputTable), "output format (table, toml)")
	cmd.Flags().StringVar(&border, "border", string(tui.BorderNone), "table border style (none, normal, rounded, thick, double)")
	cmd.Flags().Lookup("border").NoOptDefVal = string(tui.BorderRounded)
	_ = cmd.RegisterFlagCompletionFunc("border", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		styles := tui.BorderStyles()
		names := make([]string, len(styles))
		for i, b := range styles {
			names[i] = b.String()
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(
		[]string{string(config.OutputTable), string(config.OutputTOML)},
		cobra.ShellCompDirectiveNoFileComp,
	))

	return cmd
}

// listEntries prints the entries of req.EnvFile in the requested format.
func (a *App) listEntries(req listRequest) error {
	if valid, errs := req.Output.IsValid(); !valid {
		return issue.NewErrorContext().
			WithOperation("select output format").
			WithResource(string(req.Output)).
			WithSuggestion("Use --output table or --output toml").
			Wrap(errs[0]).
			BuildError()
	}

	if err := req.Border.Validate(); err != nil {
		return issue.NewErrorContext().
			WithOperation("select border style").
			WithResource(string(req.Border)).
			WithSuggestion("Use --border with none, normal, rounded, thick or double").
			Wrap(err).
			BuildError()
	}

	entries, err := envfile.LoadEntries(req.EnvFile)
	if err != nil {
		return err
	}
	a.logger.Debug("env file loaded", "path", req.EnvFile, "entries", len(entries))

	if req.Output == config.OutputTOML {
		out, err := tui.EntriesTOML(entries)
		if err != nil {
			return err
		}
		fmt.Fprint(a.stdout, out)
		return nil
	}

	fmt.Fprintln(a.stdout, tui.EntriesTable(entries, tui.TableOptions{
		Border:      req.Border,
		HeaderStyle: tableHeaderStyle,
		BorderColor: tableBorderStyle,
	}))
	return nil
}
