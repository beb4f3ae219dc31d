package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/faizmokh/ttrk/internal/timelog"
	"github.com/faizmokh/ttrk/internal/ui"
)

// Env is what every command needs: where the log lives, what time it is and
// which editor fixup should launch. Fields left nil are filled from the
// configuration before a command runs.
type Env struct {
	Store  *timelog.Store
	Clock  timelog.Clock
	Editor string

	diagnostics io.Closer
}

// errUnchanged aborts an update without writing the log file.
var errUnchanged = errors.New("log unchanged")

// update loads the log, applies fn and saves it, unless fn returned
// errUnchanged.
func (e *Env) update(ctx context.Context, fn func(*timelog.Log) error) error {
	err := e.Store.Update(ctx, fn)
	if errors.Is(err, errUnchanged) {
		return nil
	}
	return err
}

// warn reports a precondition that stops the command without failing it.
func warn(ctx context.Context, cmd *cobra.Command, message string) {
	slog.DebugContext(ctx, "precondition not met", "command", cmd.Name(), "reason", message)
	fmt.Fprintln(cmd.ErrOrStderr(), ui.Warning(message))
}
