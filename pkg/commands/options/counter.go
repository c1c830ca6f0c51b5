package options

import (
	"github.com/spf13/cobra"
)

// CounterOptions are the fields a counter can be created or edited with.
type CounterOptions struct {
	Name  string
	Score int
	Color string
}

func AddCounterArgs(cmd *cobra.Command, o *CounterOptions) {
	cmd.Flags().IntVar(&o.Score, "score", 0,
		"Score of the counter.")
	cmd.Flags().StringVar(&o.Color, "color", "",
		`Background colour as hex, example: --color="#ea580c". Defaults to the next palette colour.`)
}

func AddCounterEditArgs(cmd *cobra.Command, o *CounterOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"New name.")
	cmd.Flags().IntVar(&o.Score, "score", 0,
		"New score.")
	cmd.Flags().StringVar(&o.Color, "color", "",
		"New background colour as hex.")
}

// Changed returns pointers to the fields whose flags were set.
func (o *CounterOptions) Changed(cmd *cobra.Command) (name *string, score *int, color *string) {
	if cmd.Flags().Changed("name") {
		name = &o.Name
	}
	if cmd.Flags().Changed("score") {
		score = &o.Score
	}
	if cmd.Flags().Changed("color") {
		color = &o.Color
	}
	return name, score, color
}
