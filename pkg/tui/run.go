package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/tally/pkg/app"
)

// Options tune the terminal program.
type Options struct {
	// MinRowHeight is the smallest row height in terminal lines.
	MinRowHeight int
	Input        io.Reader
	Output       io.Writer
	// NoAltScreen draws inline instead of taking over the terminal.
	NoAltScreen bool
}

// Run draws board until the user quits or ctx is cancelled.
func Run(ctx context.Context, board *app.Board, opts Options) error {
	updates := make(chan app.Snapshot, 1)
	unsubscribe := board.Subscribe(latest(updates))
	defer unsubscribe()

	model := New(board, opts.MinRowHeight).WithUpdates(updates)

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithMouseCellMotion(),
	}
	if !opts.NoAltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	_, err := tea.NewProgram(model, programOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// latest forwards snapshots into ch, replacing one the program has not read
// yet. It never blocks the publisher.
func latest(ch chan app.Snapshot) func(app.Snapshot) {
	return func(snap app.Snapshot) {
		for {
			select {
			case ch <- snap:
				return
			default:
			}
			select {
			case <-ch:
			default:
			}
		}
	}
}
