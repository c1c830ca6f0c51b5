package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Slot is a single-value key/value store: the only thing the board needs
// from its storage.
type Slot interface {
	// Get returns the value stored at key, or ErrSlotEmpty.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put overwrites the value at key.
	Put(ctx context.Context, key string, value []byte) error
	// Close releases any underlying resources.
	Close() error
}

// ErrSlotEmpty is returned by Get when nothing has been written yet.
var ErrSlotEmpty = errors.New("store: slot empty")

// Backend names a Slot implementation.
type Backend string

const (
	BackendDiskv  Backend = "diskv"
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
)

// Open builds the slot selected by cfg.
func Open(cfg Config) (Slot, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch Backend(strings.ToLower(cfg.Settings().Backend)) {
	case "", BackendDiskv:
		return NewDiskvSlot(cfg.BasePath()), nil
	case BackendSQLite:
		return NewSQLiteSlot(cfg.BasePath())
	case BackendRedis:
		r := cfg.Settings().Redis
		return NewRedisSlot(r.Addr, r.Password, r.DB), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Settings().Backend)
	}
}
