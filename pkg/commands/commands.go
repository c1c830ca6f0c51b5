package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tally/pkg/session"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tally",
		Short: base.Wrap80("Keep score for a table of players, from the terminal or over MCP."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addList(topLevel)
	addAdd(topLevel)
	addAdjust(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addMCP(topLevel)
}

// withSession opens the configured board, runs fn and closes the board.
// quiet keeps console logs off the terminal.
func withSession(cmd *cobra.Command, quiet bool, fn func(ctx context.Context, s *session.Session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := session.Open(ctx, session.Options{
		Stderr: cmd.ErrOrStderr(),
		Quiet:  quiet,
	})
	if err != nil {
		return err
	}
	err = fn(ctx, s)
	if cerr := s.Close(); err == nil {
		err = cerr
	}
	return err
}
