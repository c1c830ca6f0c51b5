package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSlot keeps the board under a single redis key. It is still one board
// for one user; nothing here merges concurrent writers.
type RedisSlot struct {
	client *redis.Client
}

// NewRedisSlot creates a client for addr. No connection is made until the
// first Get or Put.
func NewRedisSlot(addr, password string, db int) *RedisSlot {
	return &RedisSlot{client: redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 2 * time.Second,
		MaxRetries:  -1,
	})}
}

func (s *RedisSlot) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (s *RedisSlot) Put(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (s *RedisSlot) Close() error {
	return s.client.Close()
}

// Addr is the server the slot talks to.
func (s *RedisSlot) Addr() string {
	return s.client.Options().Addr
}
