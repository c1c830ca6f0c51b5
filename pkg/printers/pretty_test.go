package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tally/pkg/counter"
)

func newTestPrinter(showID bool) (*PrettyPrint, *bytes.Buffer) {
	color.NoColor = true
	var buf bytes.Buffer
	return &PrettyPrint{Out: &buf, ShowID: showID, Profile: termenv.Ascii}, &buf
}

func TestBoardRows(t *testing.T) {
	pp, buf := newTestPrinter(false)
	pp.Board(
		counter.Counter{ID: "a1", Name: "Ann", Score: 12, Color: "#0f172a"},
		counter.Counter{ID: "b2", Name: "Bo", Score: -3, Color: "#1e3a8a"},
	)

	out := buf.String()
	assert.Contains(t, out, "#0f172a")
	assert.Contains(t, out, "Ann")
	assert.Contains(t, out, "-3")
	assert.NotContains(t, out, "a1")
}

func TestBoardShowsIDs(t *testing.T) {
	pp, buf := newTestPrinter(true)
	pp.Board(counter.Counter{ID: "a1", Name: "Ann", Score: 1, Color: "#0f172a"})
	assert.Contains(t, buf.String(), "a1")
}

func TestBoardEmpty(t *testing.T) {
	pp, buf := newTestPrinter(false)
	pp.Board()
	assert.Contains(t, buf.String(), "no counters")
}

func TestTitleWithCount(t *testing.T) {
	pp, buf := newTestPrinter(false)
	pp.TitleWithCount("Scores", 1)
	assert.Contains(t, buf.String(), "Scores - 1 counter")
}

func TestSwatchUsesColorWhenSupported(t *testing.T) {
	pp := &PrettyPrint{Profile: termenv.TrueColor}
	assert.NotEqual(t, "#0f172a", pp.Swatch("#0f172a"))
	assert.True(t, strings.Contains(pp.Swatch("#0f172a"), "  "))
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, []counter.Counter{{ID: "a", Name: "Ann", Score: 2, Color: "#0f172a"}}))
	assert.JSONEq(t, `[{"id":"a","name":"Ann","score":2,"color":"#0f172a"}]`, buf.String())
}
