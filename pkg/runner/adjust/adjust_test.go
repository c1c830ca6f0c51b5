package adjust

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tally/pkg/app"
	"tableflip.dev/tally/pkg/counter"
)

func TestAdjustByPrefix(t *testing.T) {
	b := app.NewBoard()
	b.Hydrate([]counter.Counter{{ID: "abc123", Name: "Ann", Score: 1, Color: "#0f172a"}})

	var buf bytes.Buffer
	a := Adjust{Board: b, Ref: "abc", Delta: -5, Out: &buf}
	require.NoError(t, a.Do(context.Background()))
	assert.Equal(t, -4, b.Snapshot().Counters[0].Score)
	assert.Contains(t, buf.String(), "-4")
}

func TestAdjustUnknown(t *testing.T) {
	b := app.NewBoard()
	b.Hydrate(nil)

	a := Adjust{Board: b, Ref: "missing", Delta: 1, Out: &bytes.Buffer{}}
	assert.ErrorIs(t, a.Do(context.Background()), app.ErrNotFound)
}
