// Package edit changes a counter's name, score or colour from the command
// line.
package edit

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/tally/pkg/app"
	"tableflip.dev/tally/pkg/printers"
)

type Edit struct {
	Board *app.Board

	Ref   string
	Name  *string
	Score *int
	Color *string

	JSON bool
	Out  io.Writer
}

func (n *Edit) Do(_ context.Context) error {
	if n.Name == nil && n.Score == nil && n.Color == nil {
		return errors.New("nothing to change, set --name, --score or --color")
	}
	id, err := n.Board.Resolve(n.Ref)
	if err != nil {
		return err
	}
	c, err := n.Board.Update(id, n.Name, n.Score, n.Color)
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
