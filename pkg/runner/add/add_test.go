package add

import (
	"bytes"
	"context"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tally/pkg/app"
	"tableflip.dev/tally/pkg/counter"
)

func TestAddDefaults(t *testing.T) {
	b := app.NewBoard()
	b.Hydrate(nil)

	var buf bytes.Buffer
	a := Add{Board: b, JSON: true, Out: &buf}
	require.NoError(t, a.Do(context.Background()))

	var got counter.Counter
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Player 1", got.Name)
	assert.NotEmpty(t, got.ID)
	assert.Len(t, b.Snapshot().Counters, 1)
}

func TestAddRejectsBadColor(t *testing.T) {
	b := app.NewBoard()
	b.Hydrate(nil)

	a := Add{Board: b, Name: "Ann", Color: "nope", Out: &bytes.Buffer{}}
	assert.Error(t, a.Do(context.Background()))
	assert.Empty(t, b.Snapshot().Counters)
}
