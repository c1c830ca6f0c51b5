package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tally/pkg/runner/ui"
	"tableflip.dev/tally/pkg/session"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the score board full screen",
		Example: `
tally ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withSession(cmd, true, func(ctx context.Context, s *session.Session) error {
				i := ui.UI{
					Session:      s,
					MinRowHeight: s.Config.Settings().UI.MinRowHeight,
				}
				return i.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
