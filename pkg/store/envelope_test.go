package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tally/pkg/counter"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := []counter.Counter{
		{ID: "a", Name: "Ann", Score: 3, Color: "#ef4444"},
		{ID: "b", Name: "Bo", Score: -7, Color: "#3b82f6"},
	}
	raw, err := Encode(in)
	require.NoError(t, err)

	out, version, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, version)
	assert.Equal(t, in, out)
}

func TestEncodeNilIsEmptyList(t *testing.T) {
	raw, err := Encode(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"schema_version":1,"counters":[]}`, string(raw))
}

func TestDecodeVersionMismatchPassesThrough(t *testing.T) {
	raw := []byte(`{"schema_version":7,"counters":[{"id":"x","name":"X","score":2,"color":"#22c55e"}]}`)
	out, version, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), version)
	assert.Equal(t, []counter.Counter{{ID: "x", Name: "X", Score: 2, Color: "#22c55e"}}, out)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := map[string]string{
		"not json":           `{{`,
		"missing version":    `{"counters":[]}`,
		"missing counters":   `{"schema_version":1}`,
		"counter lacks id":   `{"schema_version":1,"counters":[{"name":"a","score":1,"color":"#fff"}]}`,
		"counter lacks name": `{"schema_version":1,"counters":[{"id":"a","score":1,"color":"#fff"}]}`,
		"score is a string":  `{"schema_version":1,"counters":[{"id":"a","name":"a","score":"1","color":"#fff"}]}`,
		"array payload":      `[]`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := Decode([]byte(raw))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}
