package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tally/pkg/commands/options"
	"tableflip.dev/tally/pkg/runner/list"
	"tableflip.dev/tally/pkg/session"
)

func addList(topLevel *cobra.Command) {
	oo := options.OutputOptions{}
	ido := options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List the counters on the board.",
		Example: `
tally ls
tally ls --show-id
tally ls --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			err := withSession(cmd, oo.JSON, func(ctx context.Context, s *session.Session) error {
				l := list.List{
					Board:  s.Board,
					ShowID: ido.ShowID,
					JSON:   oo.JSON,
					Out:    cmd.OutOrStdout(),
				}
				return l.Do(ctx)
			})
			return oo.HandleErrorTo(cmd.OutOrStdout(), err)
		},
	}

	options.AddOutputArg(cmd, &oo)
	options.AddShowIDArgs(cmd, &ido)
	topLevel.AddCommand(cmd)
}
