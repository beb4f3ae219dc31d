package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/ttrk/internal/timelog"
	"github.com/faizmokh/ttrk/internal/ui"
)

func newStatusCommand(ctx context.Context, env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Summarize logged time and the current session.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := env.Store.Load(ctx)
			if err != nil {
				return err
			}
			now := env.Clock()
			printStatus(cmd.OutOrStdout(), timelog.Summarize(log, now), now)
			return nil
		},
	}
}

func printStatus(out io.Writer, summary timelog.Summary, now time.Time) {
	fmt.Fprintln(out, ui.Header("Status"))
	fmt.Fprintf(out, "- Logged %d completed session%s.\n", summary.Completed, plural(summary.Completed))
	fmt.Fprintf(out, "- Total elapsed time (completed only): %s\n", timelog.FormatDuration(summary.Total))
	fmt.Fprintf(out, "- Total elapsed time today (completed only): %s\n", timelog.FormatDuration(summary.Today))
	fmt.Fprintf(out, "- Total elapsed time this week (completed only): %s\n", timelog.FormatDuration(summary.ThisWeek))

	if last := summary.LastCompleted; last != nil && last.End != nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Header("Most recent completed session"))
		fmt.Fprintf(out, "- Began %s\n", last.Start.Prose())
		fmt.Fprintf(out, "- Ended %s\n", last.End.Prose())
		fmt.Fprintf(out, "- Time elapsed: %s\n", timelog.FormatDuration(last.Elapsed(now)))
		fmt.Fprintf(out, "- Message: \"%s\"\n", last.Text())
	}

	if current := summary.Current; current != nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Header("Current session"))
		fmt.Fprintf(out, "- Began %s\n", current.Start.Prose())
		fmt.Fprintf(out, "- Time elapsed: %s\n", timelog.FormatDuration(current.Elapsed(now)))
	}
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

func newListCommand(ctx context.Context, env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the log in the fixup format.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := env.Store.Load(ctx)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), timelog.Format(log, env.Clock()))
			return err
		},
	}
}

func newCSVCommand(ctx context.Context, env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "csv",
		Short: "Export completed sessions as CSV.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := env.Store.Load(ctx)
			if err != nil {
				return err
			}
			if err := timelog.WriteCSV(cmd.OutOrStdout(), log); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
			return nil
		},
	}
}
