package ui

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"tableflip.dev/tally/pkg/session"
	"tableflip.dev/tally/pkg/tui"
)

// ErrNotTerminal is returned when the board cannot be drawn.
var ErrNotTerminal = errors.New("ui: stdout is not a terminal, use `tally ls` instead")

// UI opens the board full screen and keeps it in sync with the slot.
type UI struct {
	Session *session.Session

	// MinRowHeight is the smallest row height in lines.
	MinRowHeight int
	Input        io.Reader
	Output       io.Writer
}

func (d *UI) Do(ctx context.Context) error {
	if d.Output == nil {
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return ErrNotTerminal
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := d.Session.Follow(ctx); err != nil {
			d.Session.Log.Warn().Err(err).Msg("not following external changes")
		}
	}()

	return tui.Run(ctx, d.Session.Board, tui.Options{
		MinRowHeight: d.MinRowHeight,
		Input:        d.Input,
		Output:       d.Output,
	})
}
