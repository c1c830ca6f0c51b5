package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/tally/pkg/counter"
	"tableflip.dev/tally/pkg/store"
)

// saveTimeout bounds a single write so an unreachable backend cannot hold
// the autosave worker forever.
const saveTimeout = 5 * time.Second

// Persister is the storage the board is loaded from and saved to.
type Persister interface {
	Load(ctx context.Context) []counter.Counter
	Save(ctx context.Context, counters []counter.Counter) error
}

// Source reads the slot after it changed. Unlike Persister.Load it reports
// an empty or unusable slot as an error.
type Source interface {
	Read(ctx context.Context) ([]counter.Counter, error)
}

// Start reads the slot, then hydrates the board with autosave attached.
// Nothing is written before the read completes: the board ignores changes
// until hydrated and the hydration itself is never written back. Stop the
// returned Autosaver to write what is pending and detach it.
func Start(ctx context.Context, board *Board, p Persister, log zerolog.Logger) *Autosaver {
	loaded := p.Load(ctx)
	a := NewAutosaver(ctx, p, log, board.MarkSaved)
	a.unsubscribe = board.Subscribe(a.Observe)
	board.Hydrate(loaded)
	return a
}

// Autosaver writes user changes to a Persister from its own goroutine, so a
// slow backend never stalls the board's subscribers. Only the newest waiting
// snapshot is written. Snapshots from an unloaded board, snapshots read from
// storage, and snapshots whose counters match the last write are skipped.
// Write failures are logged; the board stays authoritative.
type Autosaver struct {
	ctx         context.Context
	p           Persister
	log         zerolog.Logger
	onSaved     func(version uint64)
	unsubscribe func()

	mu      sync.Mutex
	cond    *sync.Cond
	pending *Snapshot
	busy    bool
	closed  bool

	stopOnce sync.Once
	done     chan struct{}

	// last is only touched by the worker.
	last *counter.Collection
}

// NewAutosaver starts a worker writing to p. onSaved, when set, is called
// with the version of every snapshot whose counters are known to be stored.
func NewAutosaver(ctx context.Context, p Persister, log zerolog.Logger, onSaved func(version uint64)) *Autosaver {
	if onSaved == nil {
		onSaved = func(uint64) {}
	}
	a := &Autosaver{
		ctx:     ctx,
		p:       p,
		log:     log,
		onSaved: onSaved,
		done:    make(chan struct{}),
		last:    counter.NewCollection(),
	}
	a.cond = sync.NewCond(&a.mu)
	go a.run()
	return a
}

// Observe queues snap for the worker and returns at once. A snapshot older
// than the one already waiting is dropped.
func (a *Autosaver) Observe(snap Snapshot) {
	if !snap.Loaded {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	if a.pending != nil && a.pending.Version >= snap.Version {
		return
	}
	a.pending = &snap
	a.cond.Broadcast()
}

// Flush blocks until every queued snapshot has been handled.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	for a.pending != nil || a.busy {
		a.cond.Wait()
	}
	a.mu.Unlock()
}

// Stop detaches from the board, writes whatever is still queued and waits
// for the worker to exit. It is safe to call more than once.
func (a *Autosaver) Stop() {
	a.stopOnce.Do(func() {
		if a.unsubscribe != nil {
			a.unsubscribe()
		}
		a.mu.Lock()
		a.closed = true
		a.cond.Broadcast()
		a.mu.Unlock()
	})
	<-a.done
}

func (a *Autosaver) run() {
	defer close(a.done)
	for {
		a.mu.Lock()
		for a.pending == nil && !a.closed {
			a.cond.Wait()
		}
		if a.pending == nil {
			a.mu.Unlock()
			return
		}
		snap := *a.pending
		a.pending = nil
		a.busy = true
		a.mu.Unlock()

		a.handle(snap)

		a.mu.Lock()
		a.busy = false
		a.cond.Broadcast()
		a.mu.Unlock()
	}
}

func (a *Autosaver) handle(snap Snapshot) {
	if snap.Origin == OriginStorage {
		a.last.Replace(snap.Counters)
		return
	}
	if a.last.Equal(snap.Counters) {
		a.onSaved(snap.Version)
		return
	}

	// Writes queued at shutdown still land after ctx is cancelled.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(a.ctx), saveTimeout)
	defer cancel()
	if err := a.p.Save(ctx, snap.Counters); err != nil {
		a.log.Warn().Err(err).Uint64("version", snap.Version).Msg("autosave failed")
		return
	}
	a.last.Replace(snap.Counters)
	a.onSaved(snap.Version)
	a.log.Debug().Int("counters", len(snap.Counters)).Uint64("version", snap.Version).Msg("saved board")
}

// Follow reloads the board from src whenever the slot reports a change, until
// ctx is done or events closes. An empty or unreadable slot leaves the board
// as it is.
func Follow(ctx context.Context, board *Board, src Source, events <-chan store.Event, log zerolog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			log.Debug().Str("key", evt.Key).Msg("slot changed, reloading")
			read := board.Version()
			counters, err := src.Read(ctx)
			switch {
			case errors.Is(err, store.ErrSlotEmpty):
				log.Debug().Str("key", evt.Key).Msg("slot empty, keeping board")
			case err != nil:
				log.Warn().Err(err).Str("key", evt.Key).Msg("slot unreadable, keeping board")
			default:
				board.Reload(read, counters)
			}
		}
	}
}
