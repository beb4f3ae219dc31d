package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/ttrk/internal/timelog"
	"github.com/faizmokh/ttrk/internal/ui"
)

func newBeginCommand(ctx context.Context, env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "begin",
		Short: "Start a new session.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.update(ctx, func(log *timelog.Log) error {
				existing, err := log.Begin(env.Clock())
				if errors.Is(err, timelog.ErrSessionInProgress) {
					warn(ctx, cmd, ui.AlreadyStartedMessage(existing))
					return errUnchanged
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Started a session.")
				return nil
			})
		},
	}
}

func newEndCommand(ctx context.Context, env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "end <message>",
		Short: "End the current session with a one-line message.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args, " ")
			return env.update(ctx, func(log *timelog.Log) error {
				session, err := log.End(env.Clock(), message)
				if errors.Is(err, timelog.ErrNoCurrentSession) {
					warn(ctx, cmd, "There is no current session.")
					return errUnchanged
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.EndedMessage(session))
				return nil
			})
		},
	}
}

func newCancelCommand(ctx context.Context, env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "Discard the current session without recording it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.update(ctx, func(log *timelog.Log) error {
				session, err := log.Cancel()
				if errors.Is(err, timelog.ErrNoCurrentSession) {
					warn(ctx, cmd, "There is no current session.")
					return errUnchanged
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.CanceledMessage(session))
				return nil
			})
		},
	}
}
