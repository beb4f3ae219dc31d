package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/ttrk/internal/editor"
	"github.com/faizmokh/ttrk/internal/timelog"
)

const fixupHeader = `# Edit the log below. One session per line.
#
# Blank lines and lines starting with ` + "`#`" + ` are ignored.
#
# The duration in parentheses is recalculated, so it can be left as-is or
# emptied (keep the parentheses).
#
# The current session ends in ` + "`[now]`" + ` and must not have a message. The
# spacing after ` + "`[now]`" + ` does not matter.
#
# Completed session:
# 06-24-2022 16:55:46 (UTC-05:00) -> 06-24-2022 16:55:49 (UTC-05:00) (3 seconds): Message here
#
# Current session:
# 06-24-2022 17:21:10 (UTC-05:00) -> [now]                           (35 minutes, 47 seconds)
`

func newFixupCommand(ctx context.Context, env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "fixup",
		Short: "Edit the whole log in your editor.",
		Long: "Open the log in the editor named by TTRK_EDITOR, the editor config key or EDITOR.\n" +
			"The edited text replaces the whole log once the editor exits successfully.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := editor.New(env.Editor)
			if err != nil {
				return err
			}
			ed.Stdin = cmd.InOrStdin()
			ed.Stdout = cmd.OutOrStdout()
			ed.Stderr = cmd.ErrOrStderr()

			log, err := env.Store.Load(ctx)
			if err != nil {
				return err
			}

			edited, err := ed.Edit(ctx, fixupHeader+timelog.Format(log, env.Clock()))
			if err != nil {
				return err
			}

			fixed, err := timelog.Parse(strings.NewReader(edited))
			if err != nil {
				return fmt.Errorf("parse edited log: %w", err)
			}
			if err := env.Store.Save(ctx, fixed); err != nil {
				return err
			}

			slog.DebugContext(ctx, "replaced log from fixup",
				"completed", len(fixed.Completed),
				"current", fixed.Current != nil,
			)
			fmt.Fprintln(cmd.OutOrStdout(), "Successfully edited the log.")
			return nil
		},
	}
}
