package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/tally/pkg/commands/options"
	"tableflip.dev/tally/pkg/runner/adjust"
	"tableflip.dev/tally/pkg/session"
)

func addAdjust(topLevel *cobra.Command) {
	oo := options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "adjust <id> <delta>",
		Short: "Add to or subtract from a score.",
		Example: `
tally adjust 3f2a 5
tally adjust 3f2a -- -1
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return oo.HandleErrorTo(cmd.OutOrStdout(), fmt.Errorf("delta %q is not a whole number", args[1]))
			}
			err = withSession(cmd, oo.JSON, func(ctx context.Context, s *session.Session) error {
				a := adjust.Adjust{
					Board: s.Board,
					Ref:   args[0],
					Delta: delta,
					JSON:  oo.JSON,
					Out:   cmd.OutOrStdout(),
				}
				return a.Do(ctx)
			})
			return oo.HandleErrorTo(cmd.OutOrStdout(), err)
		},
	}

	options.AddOutputArg(cmd, &oo)
	topLevel.AddCommand(cmd)
}
