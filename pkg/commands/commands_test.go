package commands

import (
	"bytes"
	"context"
	"io"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tally/pkg/counter"
)

func setup(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("TALLY_CONFIG_PATH", "")
	t.Setenv("TALLY_PATH", t.TempDir())
	t.Setenv("TALLY_BACKEND", "diskv")
	t.Setenv("TALLY_LOG_LEVEL", "error")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	require.NoError(t, err, "tally %v", args)
	return out
}

func decode[T any](t *testing.T, raw string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(raw), &v), raw)
	return v
}

func TestCounterLifecycle(t *testing.T) {
	setup(t)

	ann := decode[counter.Counter](t, run(t, "add", "Ann", "--score", "3", "--color", "#EA580C", "--json"))
	require.NotEmpty(t, ann.ID)
	assert.Equal(t, "Ann", ann.Name)
	assert.Equal(t, 3, ann.Score)
	assert.Equal(t, "#ea580c", ann.Color)

	second := decode[counter.Counter](t, run(t, "add", "--json"))
	assert.Equal(t, "Player 2", second.Name)

	got := decode[counter.Counter](t, run(t, "adjust", ann.ID, "2", "--json"))
	assert.Equal(t, 5, got.Score)

	got = decode[counter.Counter](t, run(t, "adjust", "--json", ann.ID, "--", "-7"))
	assert.Equal(t, -2, got.Score)

	got = decode[counter.Counter](t, run(t, "edit", ann.ID, "--name", "Ann B.", "--json"))
	assert.Equal(t, "Ann B.", got.Name)
	assert.Equal(t, -2, got.Score)

	list := decode[[]counter.Counter](t, run(t, "ls", "--json"))
	require.Len(t, list, 2)
	assert.Equal(t, ann.ID, list[0].ID)
	assert.Equal(t, "Ann B.", list[0].Name)
	assert.Equal(t, second.ID, list[1].ID)

	removed := decode[map[string]string](t, run(t, "rm", ann.ID, "--json"))
	assert.Equal(t, ann.ID, removed["removed"])

	list = decode[[]counter.Counter](t, run(t, "ls", "--json"))
	assert.Len(t, list, 1)
}

func TestJSONErrors(t *testing.T) {
	setup(t)

	out := decode[map[string]string](t, run(t, "rm", "missing", "--json"))
	assert.Contains(t, out["error"], "not found")

	out = decode[map[string]string](t, run(t, "adjust", "missing", "many", "--json"))
	assert.Contains(t, out["error"], "not a whole number")
}

func TestEditNeedsAChange(t *testing.T) {
	setup(t)
	ann := decode[counter.Counter](t, run(t, "add", "Ann", "--json"))

	_, err := execute(t, "edit", ann.ID)
	assert.ErrorContains(t, err, "nothing to change")
}

func TestListPretty(t *testing.T) {
	setup(t)
	run(t, "add", "Ann", "--score", "12")

	out := run(t, "ls")
	assert.Contains(t, out, "1 counter")
	assert.Contains(t, out, "Ann")
	assert.Contains(t, out, "12")
}

func TestInfo(t *testing.T) {
	setup(t)

	out := run(t, "info")
	assert.Contains(t, out, "diskv")
	assert.Contains(t, out, "scorecounter:v1")
}

func TestVersion(t *testing.T) {
	out := run(t, "version", "--short")
	assert.Contains(t, out, "dev")
}
