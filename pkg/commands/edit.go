package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tally/pkg/commands/options"
	"tableflip.dev/tally/pkg/runner/edit"
	"tableflip.dev/tally/pkg/session"
)

func addEdit(topLevel *cobra.Command) {
	oo := options.OutputOptions{}
	co := options.CounterOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Rename, rescore or recolour a counter.",
		Example: `
tally edit 3f2a --name "Ann B."
tally edit 3f2a --score 0 --color "#047857"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			name, score, color := co.Changed(cmd)
			err := withSession(cmd, oo.JSON, func(ctx context.Context, s *session.Session) error {
				e := edit.Edit{
					Board: s.Board,
					Ref:   args[0],
					Name:  name,
					Score: score,
					Color: color,
					JSON:  oo.JSON,
					Out:   cmd.OutOrStdout(),
				}
				return e.Do(ctx)
			})
			return oo.HandleErrorTo(cmd.OutOrStdout(), err)
		},
	}

	options.AddOutputArg(cmd, &oo)
	options.AddCounterEditArgs(cmd, &co)
	topLevel.AddCommand(cmd)
}
