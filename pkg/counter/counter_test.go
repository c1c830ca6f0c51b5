package counter

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(id string, score int) Counter {
	return Counter{ID: id, Name: "Player", Score: score, Color: "#ffffff"}
}

func TestAdjustUpdatesValue(t *testing.T) {
	c := NewCollection(sample("a", 0))

	score, ok := c.Adjust("a", 5)
	require.True(t, ok)
	assert.Equal(t, 5, score)

	got, _ := c.Find("a")
	assert.Equal(t, 5, got.Score)
}

func TestAdjustMissingIsSilent(t *testing.T) {
	c := NewCollection(sample("a", 3))

	_, ok := c.Adjust("missing", 1)
	assert.False(t, ok)
	assert.Equal(t, []Counter{sample("a", 3)}, c.Counters())
}

func TestAdjustAllowsNegative(t *testing.T) {
	c := NewCollection(sample("a", 0))

	score, ok := c.Adjust("a", -7)
	require.True(t, ok)
	assert.Equal(t, -7, score)
	got, _ := c.Find("a")
	assert.True(t, got.Negative())
}

func TestRemoveClearsCounter(t *testing.T) {
	c := NewCollection(sample("a", 0), sample("b", 1))

	assert.True(t, c.Remove("a"))
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "b", c.Counters()[0].ID)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	c := NewCollection(sample("a", 0), sample("b", 1))
	before := c.Counters()

	assert.False(t, c.Remove("zzz"))
	assert.Equal(t, before, c.Counters())
}

func TestUpsertReplacesInPlace(t *testing.T) {
	c := NewCollection(sample("a", 0), sample("b", 1), sample("c", 2))

	c.Upsert(Counter{ID: "b", Name: "Bee", Score: 9, Color: "#000000"})

	got := c.Counters()
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, Counter{ID: "b", Name: "Bee", Score: 9, Color: "#000000"}, got[1])
	assert.Equal(t, "c", got[2].ID)
}

func TestUpsertAppendsNew(t *testing.T) {
	c := &Collection{}
	c.Upsert(sample("a", 0))
	c.Upsert(sample("b", 0))

	ids := []string{}
	for _, counter := range c.Counters() {
		ids = append(ids, counter.ID)
	}
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestCountersReturnsCopy(t *testing.T) {
	c := NewCollection(sample("a", 0))
	out := c.Counters()
	out[0].Score = 100

	got, _ := c.Find("a")
	assert.Equal(t, 0, got.Score)
}

func TestLabelFallsBackToID(t *testing.T) {
	assert.Equal(t, "abc", Counter{ID: "abc", Name: "  "}.Label())
	assert.Equal(t, "Ann", Counter{ID: "abc", Name: "Ann"}.Label())
}

func TestNormalizeMintsAndDedupes(t *testing.T) {
	n := 0
	mint := func() string {
		n++
		return "minted-" + strconv.Itoa(n)
	}
	in := []Counter{
		{ID: "a", Name: "first"},
		{ID: "", Name: "blank"},
		{ID: "a", Name: "dupe"},
		{ID: "b", Name: "other"},
	}

	out := Normalize(in, mint)

	require.Len(t, out, 3)
	assert.Equal(t, "first", out[0].Name)
	assert.Equal(t, "minted-1", out[1].ID)
	assert.Equal(t, "b", out[2].ID)
}

func TestRevisionMovesOnlyOnChange(t *testing.T) {
	c := NewCollection(sample("a", 0))
	rev := c.Revision()

	c.Adjust("missing", 1)
	c.Remove("missing")
	c.Find("a")
	assert.Equal(t, rev, c.Revision(), "misses and reads change nothing")

	c.Adjust("a", 1)
	assert.Greater(t, c.Revision(), rev)
	rev = c.Revision()

	c.Upsert(sample("b", 0))
	assert.Greater(t, c.Revision(), rev)
	rev = c.Revision()

	c.Remove("b")
	assert.Greater(t, c.Revision(), rev)
}
