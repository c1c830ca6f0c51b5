// Package adjust nudges a score from the command line.
package adjust

import (
	"context"
	"io"

	"tableflip.dev/tally/pkg/app"
	"tableflip.dev/tally/pkg/printers"
)

type Adjust struct {
	Board *app.Board

	// Ref is a counter id or a unique prefix of one.
	Ref   string
	Delta int

	JSON bool
	Out  io.Writer
}

func (n *Adjust) Do(_ context.Context) error {
	id, err := n.Board.Resolve(n.Ref)
	if err != nil {
		return err
	}
	c, err := n.Board.Adjust(id, n.Delta)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, c)
	}

	pp := printers.NewPrettyPrint(false)
	pp.Out = printers.Output(n.Out)
	pp.Counter(c)
	return nil
}
