package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := New(Options{Level: "debug"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	log.Debug().Str("key", "scorecounter:v1").Msg("hydrated")
	assert.Contains(t, buf.String(), "hydrated")
	assert.Contains(t, buf.String(), "scorecounter:v1")
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, _, err := New(Options{Level: "warn"}, &buf)
	require.NoError(t, err)

	log.Info().Msg("quiet")
	assert.Empty(t, buf.String())
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tally.log")
	log, closer, err := New(Options{File: path}, nil)
	require.NoError(t, err)

	log.Warn().Msg("write failed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"write failed"`)
}

func TestQuietDiscards(t *testing.T) {
	var buf bytes.Buffer
	log, _, err := New(Options{Quiet: true}, &buf)
	require.NoError(t, err)

	log.Error().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestBadLevel(t *testing.T) {
	_, _, err := New(Options{Level: "loud"}, nil)
	assert.Error(t, err)
}
