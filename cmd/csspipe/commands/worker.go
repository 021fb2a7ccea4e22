package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/zerr"
)

// ErrWorkerExit is returned when the worker subcommand fails. The diagnostic has
// already been written to stderr for the parent process, so callers should not log it.
var ErrWorkerExit = zerr.New("worker exited with failure")

func (c *CLI) newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:    domain.WorkerCommand,
		Short:  "Serve one transform request on stdin and stdout",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if code := c.app.ServeWorker(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()); code != 0 {
				return ErrWorkerExit
			}
			return nil
		},
	}
}
