package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tally/pkg/commands/options"
	"tableflip.dev/tally/pkg/runner/remove"
	"tableflip.dev/tally/pkg/session"
)

func addRemove(topLevel *cobra.Command) {
	oo := options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a counter.",
		Example: `
tally rm 3f2a
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			err := withSession(cmd, oo.JSON, func(ctx context.Context, s *session.Session) error {
				r := remove.Remove{
					Board: s.Board,
					Ref:   args[0],
					JSON:  oo.JSON,
					Out:   cmd.OutOrStdout(),
				}
				return r.Do(ctx)
			})
			return oo.HandleErrorTo(cmd.OutOrStdout(), err)
		},
	}

	options.AddOutputArg(cmd, &oo)
	topLevel.AddCommand(cmd)
}
