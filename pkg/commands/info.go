package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tally/pkg/runner/info"
	"tableflip.dev/tally/pkg/session"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the board and where it is stored.",
		Example: `
tally info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return withSession(cmd, false, func(ctx context.Context, s *session.Session) error {
				i := info.Info{
					Config: s.Config,
					Slot:   s.Slot,
					Board:  s.Board,
					Out:    cmd.OutOrStdout(),
				}
				return i.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
