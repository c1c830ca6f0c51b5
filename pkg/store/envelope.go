package store

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"tableflip.dev/tally/pkg/counter"
)

const (
	// StorageKey is the slot the board lives in. The suffix changes with each
	// incompatible format generation.
	StorageKey = "scorecounter:v1"

	// SchemaVersion is written into every envelope.
	SchemaVersion uint32 = 1
)

// Envelope is the persisted form of the board.
type Envelope struct {
	SchemaVersion uint32            `json:"schema_version"`
	Counters      []counter.Counter `json:"counters"`
}

// ErrMalformed is returned when a payload does not have the envelope shape.
var ErrMalformed = errors.New("store: malformed envelope")

// migration rewrites counters written under an older or newer schema.
type migration func([]counter.Counter) []counter.Counter

// migrations is keyed by the schema version found on disk. Versions without
// an entry are passed through unchanged; version 1 is the only shape so far.
var migrations = map[uint32]migration{}

// wire types use pointers so a missing field is distinguishable from a zero
// value.
type wireEnvelope struct {
	SchemaVersion *uint32        `json:"schema_version"`
	Counters      *[]wireCounter `json:"counters"`
}

type wireCounter struct {
	ID    *string `json:"id"`
	Name  *string `json:"name"`
	Score *int    `json:"score"`
	Color *string `json:"color"`
}

// Encode serialises counters at the current schema version.
func Encode(counters []counter.Counter) ([]byte, error) {
	if counters == nil {
		counters = []counter.Counter{}
	}
	data, err := json.Marshal(Envelope{SchemaVersion: SchemaVersion, Counters: counters})
	if err != nil {
		return nil, fmt.Errorf("store: encode envelope: %w", err)
	}
	return data, nil
}

// Decode parses a payload into counters, applying the migration for its
// schema version. It also returns the version found.
func Decode(raw []byte) ([]counter.Counter, uint32, error) {
	var w wireEnvelope
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if w.SchemaVersion == nil {
		return nil, 0, fmt.Errorf("%w: missing schema_version", ErrMalformed)
	}
	if w.Counters == nil {
		return nil, 0, fmt.Errorf("%w: missing counters", ErrMalformed)
	}

	counters := make([]counter.Counter, 0, len(*w.Counters))
	for i, wc := range *w.Counters {
		if wc.ID == nil || wc.Name == nil || wc.Score == nil || wc.Color == nil {
			return nil, 0, fmt.Errorf("%w: counter %d is incomplete", ErrMalformed, i)
		}
		counters = append(counters, counter.Counter{
			ID:    *wc.ID,
			Name:  *wc.Name,
			Score: *wc.Score,
			Color: *wc.Color,
		})
	}

	version := *w.SchemaVersion
	if version != SchemaVersion {
		if migrate, ok := migrations[version]; ok {
			counters = migrate(counters)
		}
	}
	return counters, version, nil
}
