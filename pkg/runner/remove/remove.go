// Package remove deletes a counter from the command line.
package remove

import (
	"context"
	"fmt"
	"io"

	"tableflip.dev/tally/pkg/app"
	"tableflip.dev/tally/pkg/printers"
)

type Remove struct {
	Board *app.Board
	Ref   string

	JSON bool
	Out  io.Writer
}

func (n *Remove) Do(_ context.Context) error {
	id, err := n.Board.Resolve(n.Ref)
	if err != nil {
		return err
	}
	c, _ := n.Board.Snapshot().Find(id)
	if err := n.Board.Remove(id); err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, map[string]string{"removed": id})
	}
	_, err = fmt.Fprintf(printers.Output(n.Out), "removed %s (%s)\n", c.Label(), id)
	return err
}
