package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/ttrk/internal/config"
	"github.com/faizmokh/ttrk/internal/files"
	"github.com/faizmokh/ttrk/internal/logging"
	"github.com/faizmokh/ttrk/internal/timelog"
	"github.com/faizmokh/ttrk/internal/ui"
	"github.com/faizmokh/ttrk/internal/version"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and
// the dashboard. Empty fields of env are filled from the configuration.
func NewRootCommand(ctx context.Context, env *Env) *cobra.Command {
	if env == nil {
		env = &Env{}
	}

	cmd := &cobra.Command{
		Use:     "ttrk",
		Short:   "Track time spent in work sessions from your terminal.",
		Version: version.Info(),
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return prepare(cmd, env)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if env.diagnostics == nil {
				return nil
			}
			return env.diagnostics.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := env.Store.Load(ctx)
			if err != nil {
				return err
			}
			final, err := tea.NewProgram(ui.NewModel(log, env.Clock)).Run()
			if err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			if m, ok := final.(ui.Model); ok && m.Changed() {
				return env.Store.Save(ctx, m.Log())
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.StringP(config.FlagLogFile, "l", "", "Log file location (default ~/.ttrk.json)")
	flags.String(config.FlagLogLevel, "", "Diagnostics level: debug, info, warn or error")
	flags.String(config.FlagConfig, "", "Config file (default $XDG_CONFIG_HOME/ttrk/config.yaml)")

	cmd.AddCommand(
		newBeginCommand(ctx, env),
		newEndCommand(ctx, env),
		newCancelCommand(ctx, env),
		newStatusCommand(ctx, env),
		newListCommand(ctx, env),
		newFixupCommand(ctx, env),
		newCSVCommand(ctx, env),
	)

	return cmd
}

func prepare(cmd *cobra.Command, env *Env) error {
	cfg, err := config.Load(cmd.Flags(), "")
	if err != nil {
		return err
	}

	_, closer, err := logging.Setup(logging.Options{
		Level:  cfg.LogLevel,
		File:   cfg.Diagnostics,
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	env.diagnostics = closer

	if env.Store == nil {
		manager, err := files.NewManager(cfg.LogFile)
		if err != nil {
			return err
		}
		env.Store = timelog.NewStore(manager)
	}
	if env.Clock == nil {
		env.Clock = timelog.SystemClock
	}
	if env.Editor == "" {
		env.Editor = cfg.Editor
	}
	return nil
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	return NewRootCommand(ctx, &Env{}).ExecuteContext(ctx)
}

// Main is a helper used by cmd/ttrk/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
