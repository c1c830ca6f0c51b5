// Package list prints the board.
package list

import (
	"context"
	"io"

	"tableflip.dev/tally/pkg/app"
	"tableflip.dev/tally/pkg/printers"
)

type List struct {
	Board  *app.Board
	ShowID bool
	JSON   bool
	Out    io.Writer
}

func (n *List) Do(_ context.Context) error {
	counters := n.Board.Snapshot().Counters
	if n.JSON {
		return printers.JSON(n.Out, counters)
	}

	pp := printers.NewPrettyPrint(n.ShowID)
	pp.Out = printers.Output(n.Out)
	pp.TitleWithCount("Scores", len(counters))
	pp.Board(counters...)
	return nil
}
