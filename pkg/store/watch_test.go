package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/tally/pkg/counter"
)

func TestDiskvWatchEmitsOnWrite(t *testing.T) {
	slot := NewDiskvSlot(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := slot.Watch(ctx, StorageKey)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	p := NewPersister(slot)
	if err := p.Save(ctx, []counter.Counter{{ID: "a", Name: "Ann", Score: 1, Color: "#ef4444"}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case evt := <-ch:
		if evt.Key != StorageKey {
			t.Fatalf("expected key %q, got %q", StorageKey, evt.Key)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for slot change event")
	}
}

func TestDiskvWatchIgnoresOtherKeys(t *testing.T) {
	slot := NewDiskvSlot(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := slot.Watch(ctx, StorageKey)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	if err := slot.Put(ctx, "scorecounter:other", []byte("{}")); err != nil {
		t.Fatalf("put: %v", err)
	}

	select {
	case evt := <-ch:
		t.Fatalf("unexpected event %+v", evt)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestDiskvWatchClosesOnCancel(t *testing.T) {
	slot := NewDiskvSlot(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := slot.Watch(ctx, StorageKey)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// drain a racing event, then expect close
			if _, ok := <-ch; ok {
				t.Fatal("expected channel to close")
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch channel not closed after cancel")
	}
}

func TestThrottledSendAfterCloseIsDropped(t *testing.T) {
	sink := newEventSink(1)
	throttle := newEventThrottle(10 * time.Millisecond)

	throttle.Enqueue(Event{Key: StorageKey}, sink.send)
	sink.close()
	sink.close()
	time.Sleep(50 * time.Millisecond)

	if _, ok := <-sink.ch; ok {
		t.Fatal("expected a closed, empty channel")
	}
}
