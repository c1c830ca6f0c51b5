// Package logging builds the zerolog logger shared by tally commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options select where and how verbosely to log.
type Options struct {
	Level string
	// File, when set, receives JSON lines instead of the console writer.
	File string
	// Quiet discards console output; used by the full-screen UI so log lines
	// do not tear the alt screen.
	Quiet bool
}

// New returns a logger and a closer for any file it opened.
func New(opts Options, stderr io.Writer) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if strings.TrimSpace(opts.Level) != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch {
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("logging: ensure dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("logging: open %s: %w", opts.File, err)
		}
		w, closer = f, f
	case opts.Quiet:
		w = io.Discard
	default:
		w = zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
