package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tally/pkg/commands/options"
	"tableflip.dev/tally/pkg/runner/add"
	"tableflip.dev/tally/pkg/session"
)

func addAdd(topLevel *cobra.Command) {
	oo := options.OutputOptions{}
	co := options.CounterOptions{}

	cmd := &cobra.Command{
		Use:   "add [name...]",
		Short: "Add a counter.",
		Long: base.Wrap80(`Add a counter to the board. Without a name it is called "Player N"
after its position, and without --color it takes the next palette colour.`),
		Example: `
tally add Ann
tally add Bo --score 10 --color "#ea580c"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			err := withSession(cmd, oo.JSON, func(ctx context.Context, s *session.Session) error {
				a := add.Add{
					Board: s.Board,
					Name:  strings.Join(args, " "),
					Score: co.Score,
					Color: co.Color,
					JSON:  oo.JSON,
					Out:   cmd.OutOrStdout(),
				}
				return a.Do(ctx)
			})
			return oo.HandleErrorTo(cmd.OutOrStdout(), err)
		},
	}

	options.AddOutputArg(cmd, &oo)
	options.AddCounterArgs(cmd, &co)
	topLevel.AddCommand(cmd)
}
