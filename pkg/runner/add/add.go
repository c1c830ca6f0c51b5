// Package add creates a counter from the command line.
package add

import (
	"context"
	"io"

	"tableflip.dev/tally/pkg/app"
	"tableflip.dev/tally/pkg/printers"
)

type Add struct {
	Board *app.Board

	Name  string
	Score int
	Color string

	JSON bool
	Out  io.Writer
}

func (n *Add) Do(_ context.Context) error {
	c, err := n.Board.Add(n.Name, n.Score, n.Color)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, c)
	}

	pp := printers.NewPrettyPrint(true)
	pp.Out = printers.Output(n.Out)
	pp.Counter(c)
	return nil
}
