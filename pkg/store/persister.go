package store

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/tally/pkg/counter"
	"tableflip.dev/tally/pkg/metrics"
)

// Persister reads and writes the board envelope in a Slot. Load never fails:
// anything unusable degrades to an empty board. Read reports why.
type Persister struct {
	slot    Slot
	key     string
	log     zerolog.Logger
	metrics metrics.Recorder
}

// PersisterOption configures a Persister.
type PersisterOption func(*Persister)

// WithLogger sets the logger used for degraded reads.
func WithLogger(log zerolog.Logger) PersisterOption {
	return func(p *Persister) {
		p.log = log
	}
}

// WithMetrics records reads and writes.
func WithMetrics(m metrics.Recorder) PersisterOption {
	return func(p *Persister) {
		if m != nil {
			p.metrics = m
		}
	}
}

// WithKey overrides StorageKey.
func WithKey(key string) PersisterOption {
	return func(p *Persister) {
		if key != "" {
			p.key = key
		}
	}
}

// NewPersister wraps slot.
func NewPersister(slot Slot, opts ...PersisterOption) *Persister {
	p := &Persister{
		slot:    slot,
		key:     StorageKey,
		log:     zerolog.Nop(),
		metrics: metrics.Noop{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Key is the slot key in use.
func (p *Persister) Key() string {
	return p.key
}

// Slot is the underlying storage.
func (p *Persister) Slot() Slot {
	return p.slot
}

// Load returns the stored counters, or nil when there is nothing usable.
func (p *Persister) Load(ctx context.Context) []counter.Counter {
	counters, err := p.Read(ctx)
	if err != nil {
		if !errors.Is(err, ErrSlotEmpty) {
			p.log.Warn().Err(err).Str("key", p.key).Msg("slot unusable, starting empty")
		}
		return nil
	}
	return counters
}

// Read returns the stored counters. It returns ErrSlotEmpty when nothing was
// written yet, and the read or decode error when the slot holds something
// unusable.
func (p *Persister) Read(ctx context.Context) ([]counter.Counter, error) {
	raw, err := p.slot.Get(ctx, p.key)
	if err != nil {
		if !errors.Is(err, ErrSlotEmpty) {
			p.metrics.IncLoadFailures()
		}
		return nil, err
	}

	counters, version, err := Decode(raw)
	if err != nil {
		p.metrics.IncLoadFailures()
		return nil, err
	}
	if version != SchemaVersion {
		p.log.Info().
			Uint32("found", version).
			Uint32("current", SchemaVersion).
			Msg("schema version mismatch, accepting counters as-is")
	}
	p.log.Debug().Int("counters", len(counters)).Str("key", p.key).Msg("loaded board")
	return counters, nil
}

// Save writes counters at the current schema version.
func (p *Persister) Save(ctx context.Context, counters []counter.Counter) error {
	start := time.Now()
	data, err := Encode(counters)
	if err == nil {
		err = p.slot.Put(ctx, p.key, data)
	}
	p.metrics.ObserveWrite(time.Since(start), err)
	return err
}
