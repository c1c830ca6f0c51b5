// Package session opens everything a tally command needs: configuration,
// logger, storage slot, metrics and a hydrated board with autosave attached.
package session

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"tableflip.dev/tally/pkg/app"
	"tableflip.dev/tally/pkg/logging"
	"tableflip.dev/tally/pkg/metrics"
	"tableflip.dev/tally/pkg/palette"
	"tableflip.dev/tally/pkg/store"
)

// Options control how a Session is opened.
type Options struct {
	// Config is loaded with store.LoadConfig when nil.
	Config store.Config
	// Stderr receives console logs.
	Stderr io.Writer
	// Quiet discards console logs unless log.file is configured.
	Quiet bool
	// BoardOptions are appended after the ones derived from config.
	BoardOptions []app.Option
}

// Session is an open board and the resources behind it.
type Session struct {
	Config    store.Config
	Log       zerolog.Logger
	Slot      store.Slot
	Persister *store.Persister
	Board     *app.Board
	Metrics   *metrics.Prometheus

	autosave *app.Autosaver
	closers  []io.Closer
}

// Open loads configuration, opens the configured slot and hydrates a board
// from it.
func Open(ctx context.Context, opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		var err error
		if cfg, err = store.LoadConfig(); err != nil {
			return nil, err
		}
	}
	settings := cfg.Settings()

	stderr := opts.Stderr
	if stderr == nil {
		stderr = io.Discard
	}
	log, logCloser, err := logging.New(logging.Options{
		Level: settings.Log.Level,
		File:  settings.Log.File,
		Quiet: opts.Quiet,
	}, stderr)
	if err != nil {
		return nil, err
	}

	slot, err := store.Open(cfg)
	if err != nil {
		_ = logCloser.Close()
		return nil, err
	}

	rec := metrics.NewPrometheus()
	persister := store.NewPersister(slot,
		store.WithLogger(log.With().Str("component", "store").Logger()),
		store.WithMetrics(rec),
	)

	boardOpts := []app.Option{
		app.WithThreshold(settings.Press.Threshold),
		app.WithPalette(palette.Palette(settings.Palette)),
		app.WithLogger(log.With().Str("component", "board").Logger()),
		app.WithMetrics(rec),
	}
	board := app.NewBoard(append(boardOpts, opts.BoardOptions...)...)

	s := &Session{
		Config:    cfg,
		Log:       log,
		Slot:      slot,
		Persister: persister,
		Board:     board,
		Metrics:   rec,
		closers:   []io.Closer{slot, logCloser},
	}
	s.autosave = app.Start(ctx, board, persister, log.With().Str("component", "autosave").Logger())

	log.Debug().
		Str("backend", settings.Backend).
		Str("path", cfg.BasePath()).
		Int("counters", len(board.Snapshot().Counters)).
		Msg("session opened")
	return s, nil
}

// Follow reloads the board whenever another process writes the slot. Only
// the diskv backend can be watched; for the others Follow returns at once.
// It blocks until ctx is done.
func (s *Session) Follow(ctx context.Context) error {
	watchable, ok := s.Slot.(*store.DiskvSlot)
	if !ok {
		s.Log.Debug().Msg("slot backend cannot be watched")
		return nil
	}
	events, err := watchable.Watch(ctx, s.Persister.Key())
	if err != nil {
		return err
	}
	app.Follow(ctx, s.Board, s.Persister, events, s.Log.With().Str("component", "watch").Logger())
	return nil
}

// Close writes pending changes, stops autosaving and releases the slot and
// log file.
func (s *Session) Close() error {
	if s.autosave != nil {
		s.autosave.Stop()
	}
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
