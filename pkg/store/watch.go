package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Watch when the slot changes on disk.
type Event struct {
	Key string
}

// Watch streams an Event whenever the file behind key is written, whether by
// this process or another tally instance. Bursts are coalesced. The channel
// is closed once ctx is done or the watcher fails.
func (s *DiskvSlot) Watch(ctx context.Context, key string) (<-chan Event, error) {
	target := filepath.Clean(s.PathFor(key))
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure slot directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	sink := newEventSink(8)

	go func() {
		defer sink.close()
		defer func() { _ = watcher.Close() }()

		send := sink.send
		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Unclassifiable; ask for a reload to stay in sync.
				throttle.Enqueue(Event{Key: key}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				throttle.Enqueue(Event{Key: key}, send)
			}
		}
	}()

	return sink.ch, nil
}

// eventSink delivers events without blocking. A throttle flush already in
// flight when the watch loop exits may still send; after close those sends
// are dropped.
type eventSink struct {
	mu     sync.Mutex
	closed bool
	ch     chan Event
}

func newEventSink(size int) *eventSink {
	return &eventSink{ch: make(chan Event, size)}
}

func (s *eventSink) send(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- ev:
	default:
		// A reload is already queued; the consumer reads the latest value
		// anyway.
	}
}

func (s *eventSink) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// eventThrottle coalesces rapid change notifications so a burst of writes
// causes one reload.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[ev.Key] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for key := range pending {
		send(Event{Key: key})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
