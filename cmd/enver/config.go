// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/enver/enver/internal/config"
)

// newConfigCommand creates the `enver config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage enver configuration",
		Long: `Manage enver configuration.

Configuration is stored in:
  - Linux: ~/.config/enver/config.cue
  - macOS: ~/Library/Application Support/enver/config.cue
  - Windows: %APPDATA%\enver\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceErrors = true
			if err := app.showConfig(cmd.Context()); err != nil {
				return app.renderError(err)
			}
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showConfigPath()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.initConfig()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(app.stdout, config.GenerateCUE(app.cfg))
			return nil
		},
	})

	return cfgCmd
}

func (a *App) showConfig(ctx context.Context) error {
	opts := config.LoadOptions{ConfigFilePath: a.configPath}
	cfg, err := a.Config.Load(ctx, opts)
	if err != nil {
		return err
	}

	source := SubtitleStyle.Render("(using defaults)")
	if resolver, ok := a.Config.(config.PathResolver); ok {
		if path, err := resolver.ResolvePath(ctx, opts); err == nil && path != "" {
			source = path
		}
	}

	w := a.stdout
	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Config file"), source)
	fmt.Fprintln(w)

	printValue(w, "default_runtime", cfg.DefaultRuntime)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", CmdStyle.Render("run"))
	printValue(w, "  wait", cfg.Run.Wait)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", CmdStyle.Render("list"))
	printValue(w, "  output", cfg.List.Output)
	printValue(w, "  border", cfg.List.Border)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", CmdStyle.Render("ui"))
	printValue(w, "  color_scheme", cfg.UI.ColorScheme)
	printValue(w, "  verbose", cfg.UI.Verbose)

	return nil
}

func printValue(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render(key), SuccessStyle.Render(fmt.Sprint(value)))
}

func (a *App) showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(a.stdout, "Config file: %s\n", config.ConfigFilePath(cfgDir))
	if a.configPath != "" {
		fmt.Fprintf(a.stdout, "Config override (--config): %s\n", a.configPath)
	}
	return nil
}

func (a *App) initConfig() error {
	path, created, err := config.CreateDefaultConfig("")
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	if !created {
		fmt.Fprintf(a.stdout, "%s Configuration already exists at %s\n", WarningStyle.Render("!"), path)
		return nil
	}
	fmt.Fprintf(a.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}
