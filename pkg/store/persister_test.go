package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tally/pkg/counter"
	"tableflip.dev/tally/pkg/metrics"
)

type brokenSlot struct {
	getErr error
	putErr error
	value  []byte
}

func (b *brokenSlot) Get(context.Context, string) ([]byte, error) {
	if b.getErr != nil {
		return nil, b.getErr
	}
	return b.value, nil
}

func (b *brokenSlot) Put(_ context.Context, _ string, v []byte) error {
	if b.putErr != nil {
		return b.putErr
	}
	b.value = v
	return nil
}

func (b *brokenSlot) Close() error { return nil }

type countingRecorder struct {
	metrics.Noop
	loadFailures int
	writes       int
	writeErrors  int
}

func (c *countingRecorder) IncLoadFailures() { c.loadFailures++ }

func (c *countingRecorder) ObserveWrite(_ time.Duration, err error) {
	c.writes++
	if err != nil {
		c.writeErrors++
	}
}

func TestPersisterRoundTrip(t *testing.T) {
	p := NewPersister(NewDiskvSlot(t.TempDir()))
	ctx := context.Background()

	assert.Nil(t, p.Load(ctx))

	want := []counter.Counter{{ID: "a", Name: "Ann", Score: 4, Color: "#ef4444"}}
	require.NoError(t, p.Save(ctx, want))
	assert.Equal(t, want, p.Load(ctx))
	assert.Equal(t, StorageKey, p.Key())
}

func TestPersisterLoadDegrades(t *testing.T) {
	m := &countingRecorder{}

	tests := map[string]*brokenSlot{
		"read error":  {getErr: errors.New("io")},
		"not json":    {value: []byte("garbage")},
		"wrong shape": {value: []byte(`{"items":[]}`)},
	}
	for name, slot := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewPersister(slot, WithMetrics(m))
			assert.Nil(t, p.Load(context.Background()))
		})
	}

	assert.Equal(t, 3, m.loadFailures)
}

func TestPersisterSaveReportsFailure(t *testing.T) {
	slot := &brokenSlot{putErr: errors.New("disk full")}
	m := &countingRecorder{}
	p := NewPersister(slot, WithKey("custom:v1"), WithMetrics(m))
	err := p.Save(context.Background(), nil)
	assert.Error(t, err)
	assert.Equal(t, 1, m.writes)
	assert.Equal(t, 1, m.writeErrors)
	assert.Equal(t, "custom:v1", p.Key())
}

func TestPersisterAcceptsOtherSchemaVersions(t *testing.T) {
	slot := &brokenSlot{value: []byte(`{"schema_version":2,"counters":[{"id":"z","name":"Z","score":9,"color":"#a855f7"}]}`)}
	p := NewPersister(slot)
	got := p.Load(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, 9, got[0].Score)
}

func TestPersisterReadReportsWhy(t *testing.T) {
	ctx := context.Background()
	m := &countingRecorder{}

	_, err := NewPersister(NewDiskvSlot(t.TempDir()), WithMetrics(m)).Read(ctx)
	assert.ErrorIs(t, err, ErrSlotEmpty)
	assert.Equal(t, 0, m.loadFailures, "an empty slot is not a failure")

	got, err := NewPersister(&brokenSlot{value: []byte("garbage")}, WithMetrics(m)).Read(ctx)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSlotEmpty)
	assert.Nil(t, got)

	_, err = NewPersister(&brokenSlot{getErr: errors.New("connection refused")}, WithMetrics(m)).Read(ctx)
	assert.ErrorContains(t, err, "connection refused")
	assert.Equal(t, 2, m.loadFailures)

	want := []counter.Counter{{ID: "a", Name: "Ann", Score: 1, Color: "#ef4444"}}
	p := NewPersister(&brokenSlot{})
	require.NoError(t, p.Save(ctx, want))
	got, err = p.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
