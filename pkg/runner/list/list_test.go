package list

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tally/pkg/app"
	"tableflip.dev/tally/pkg/counter"
)

func TestListJSON(t *testing.T) {
	b := app.NewBoard()
	b.Hydrate([]counter.Counter{{ID: "a", Name: "Ann", Score: -2, Color: "#0f172a"}})

	var buf bytes.Buffer
	l := List{Board: b, JSON: true, Out: &buf}
	require.NoError(t, l.Do(context.Background()))
	assert.JSONEq(t, `[{"id":"a","name":"Ann","score":-2,"color":"#0f172a"}]`, buf.String())
}

func TestListEmptyJSONIsArray(t *testing.T) {
	b := app.NewBoard()
	b.Hydrate(nil)

	var buf bytes.Buffer
	l := List{Board: b, JSON: true, Out: &buf}
	require.NoError(t, l.Do(context.Background()))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestListPretty(t *testing.T) {
	b := app.NewBoard()
	b.Hydrate([]counter.Counter{{ID: "a", Name: "Ann", Score: 7, Color: "#0f172a"}})

	var buf bytes.Buffer
	l := List{Board: b, ShowID: true, Out: &buf}
	require.NoError(t, l.Do(context.Background()))
	assert.Contains(t, buf.String(), "Ann")
	assert.Contains(t, buf.String(), "1 counter")
}
