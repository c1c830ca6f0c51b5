package app

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tableflip.dev/tally/pkg/counter"
	"tableflip.dev/tally/pkg/dialog"
	"tableflip.dev/tally/pkg/metrics"
	"tableflip.dev/tally/pkg/palette"
	"tableflip.dev/tally/pkg/press"
)

var (
	// ErrNotFound is returned to non-interactive callers when no counter
	// matches.
	ErrNotFound = errors.New("app: counter not found")
	// ErrAmbiguous is returned when an id prefix matches several counters.
	ErrAmbiguous = errors.New("app: counter id is ambiguous")
	// ErrNotLoaded is returned when the board is changed before hydration.
	ErrNotLoaded = errors.New("app: board not loaded")
)

// Origin says where the change behind a snapshot came from.
type Origin int

const (
	// OriginUser changes come from gestures, the CLI or MCP, and are saved.
	OriginUser Origin = iota
	// OriginStorage changes were read from the slot and are not written back.
	OriginStorage
)

func (o Origin) String() string {
	if o == OriginStorage {
		return "storage"
	}
	return "user"
}

// Snapshot is an immutable view of the board after a change.
type Snapshot struct {
	Version   uint64
	Loaded    bool
	Origin    Origin
	Counters  []counter.Counter
	Dialog    dialog.Mode
	Draft     dialog.Draft
	Held      []press.Control
	NextColor string
	Swatches  palette.Palette
}

// Rows is the number of counter rows to lay out.
func (s Snapshot) Rows() int {
	return len(s.Counters)
}

// Find returns the counter with the given id.
func (s Snapshot) Find(id string) (counter.Counter, bool) {
	for _, c := range s.Counters {
		if c.ID == id {
			return c, true
		}
	}
	return counter.Counter{}, false
}

// Holding reports whether control is being pressed.
func (s Snapshot) Holding(control press.Control) bool {
	for _, h := range s.Held {
		if h == control {
			return true
		}
	}
	return false
}

// Board owns the counters, the dialog, the press sessions and the palette
// cursor. Every change is published to subscribers as a Snapshot, in version
// order.
type Board struct {
	mu       sync.Mutex
	version  uint64
	loaded   bool
	counters *counter.Collection
	dialog   dialog.Controller
	press    *press.Classifier
	cursor   *palette.Cursor
	mint     func() string
	log      zerolog.Logger
	metrics  metrics.Recorder

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int

	pubMu     sync.Mutex
	published uint64

	// rev is the collection revision at the last commit. unsaved is the
	// version of the newest user change to the counters and saved the
	// newest version confirmed written by MarkSaved.
	rev     uint64
	unsaved uint64
	saved   uint64
}

// Option configures a Board.
type Option func(*boardOptions)

type boardOptions struct {
	threshold time.Duration
	clock     func() time.Time
	palette   palette.Palette
	mint      func() string
	log       zerolog.Logger
	metrics   metrics.Recorder
}

// WithThreshold sets the long-press threshold.
func WithThreshold(d time.Duration) Option {
	return func(o *boardOptions) { o.threshold = d }
}

// WithClock overrides the clock used to time presses.
func WithClock(now func() time.Time) Option {
	return func(o *boardOptions) { o.clock = now }
}

// WithPalette replaces the default palette.
func WithPalette(p palette.Palette) Option {
	return func(o *boardOptions) { o.palette = p }
}

// WithMinter overrides how new ids are generated.
func WithMinter(mint func() string) Option {
	return func(o *boardOptions) {
		if mint != nil {
			o.mint = mint
		}
	}
}

// WithLogger sets the board logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *boardOptions) { o.log = log }
}

// WithMetrics records adjustments and board size.
func WithMetrics(m metrics.Recorder) Option {
	return func(o *boardOptions) {
		if m != nil {
			o.metrics = m
		}
	}
}

// NewBoard creates an empty, unloaded board. Changes are ignored until
// Hydrate is called.
func NewBoard(opts ...Option) *Board {
	o := boardOptions{
		threshold: press.DefaultThreshold,
		mint:      uuid.NewString,
		log:       zerolog.Nop(),
		metrics:   metrics.Noop{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	var pressOpts []press.Option
	if o.clock != nil {
		pressOpts = append(pressOpts, press.WithClock(o.clock))
	}
	return &Board{
		counters: counter.NewCollection(),
		press:    press.New(o.threshold, pressOpts...),
		cursor:   palette.NewCursor(o.palette),
		mint:     o.mint,
		log:      o.log,
		metrics:  o.metrics,
		subs:     make(map[int]func(Snapshot)),
	}
}

// Subscribe registers fn for every future snapshot. Snapshots are delivered
// one at a time, oldest first; a snapshot older than one already delivered is
// skipped. fn must not call back into the board. The returned func
// unsubscribes.
func (b *Board) Subscribe(fn func(Snapshot)) func() {
	b.subMu.Lock()
	id := b.nextSub
	b.nextSub++
	b.subs[id] = fn
	b.subMu.Unlock()

	return func() {
		b.subMu.Lock()
		delete(b.subs, id)
		b.subMu.Unlock()
	}
}

// Snapshot returns the current state.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked(OriginUser)
}

// Loaded reports whether the board has been hydrated.
func (b *Board) Loaded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loaded
}

// Threshold is the long-press duration in use.
func (b *Board) Threshold() time.Duration {
	return b.press.Threshold()
}

// Hydrate replaces the counters with ones read from storage and marks the
// board loaded. Empty ids are minted and duplicate ids dropped.
func (b *Board) Hydrate(counters []counter.Counter) {
	b.mu.Lock()
	b.counters.Replace(counter.Normalize(counters, b.mint))
	b.loaded = true
	snap := b.commitLocked(OriginStorage)
	b.mu.Unlock()

	b.log.Debug().Int("counters", len(snap.Counters)).Msg("hydrated board")
	b.publish(snap)
}

// Version is the number of the latest snapshot. Take it before reading the
// slot and pass it to Reload.
func (b *Board) Version() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.version
}

// MarkSaved records that the counters of snapshot version are in storage.
func (b *Board) MarkSaved(version uint64) {
	b.mu.Lock()
	if version > b.saved {
		b.saved = version
	}
	b.mu.Unlock()
}

// Pending reports whether a change to the counters has not been confirmed
// written yet.
func (b *Board) Pending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.unsaved > b.saved
}

// Reload applies counters read from storage after an external change. read
// is the board Version taken before the slot was read. The counters are
// refused while a local change waits to be written, or when one was made
// after read, since applying them would revert it; the pending write brings
// storage back in line. Press sessions and an edit dialog for counters that
// vanished are dropped. Reload reports whether the board now matches
// counters.
func (b *Board) Reload(read uint64, counters []counter.Counter) bool {
	b.mu.Lock()
	if !b.loaded {
		b.mu.Unlock()
		b.Hydrate(counters)
		return true
	}
	if b.unsaved > b.saved || b.unsaved > read {
		unsaved, saved := b.unsaved, b.saved
		b.mu.Unlock()
		b.log.Debug().
			Uint64("read", read).
			Uint64("unsaved", unsaved).
			Uint64("saved", saved).
			Msg("local changes pending, ignoring reload")
		return false
	}
	next := counter.Normalize(counters, b.mint)
	if b.counters.Equal(next) {
		b.mu.Unlock()
		return true
	}
	b.counters.Replace(next)
	for _, held := range b.press.Held() {
		if _, ok := b.counters.Find(held.CounterID); !ok {
			b.press.Forget(held.CounterID)
		}
	}
	if draft, open := b.dialog.Draft(); open && b.dialog.Mode() == dialog.Editing {
		if _, ok := b.counters.Find(draft.ID); !ok {
			b.dialog.Close()
		}
	}
	snap := b.commitLocked(OriginStorage)
	b.mu.Unlock()

	b.log.Debug().Int("counters", len(snap.Counters)).Msg("reloaded board from storage")
	b.publish(snap)
	return true
}

// OpenAdd opens the dialog with a new-counter draft named after the next
// row and coloured with the next palette entry.
func (b *Board) OpenAdd() {
	b.mutate(func() bool {
		b.dialog.OpenAdd(b.counters.Len(), b.cursor.Next())
		return true
	})
}

// OpenEdit opens the dialog on a copy of the counter. Unknown ids are ignored.
func (b *Board) OpenEdit(id string) {
	b.mutate(func() bool {
		c, ok := b.counters.Find(id)
		if !ok {
			return false
		}
		b.dialog.OpenEdit(c)
		return true
	})
}

// CloseDialog discards the draft without touching the counters.
func (b *Board) CloseDialog() {
	b.mutate(func() bool {
		if !b.dialog.Open() {
			return false
		}
		b.dialog.Close()
		return true
	})
}

// DraftFieldChanged applies an in-dialog edit. Unusable input is ignored.
func (b *Board) DraftFieldChanged(field dialog.Field, value string) {
	b.mutate(func() bool {
		return b.dialog.Change(field, value)
	})
}

// SaveDraft commits the draft. A new counter advances the palette.
func (b *Board) SaveDraft() {
	b.mutate(func() bool {
		saved, created, ok := b.dialog.Save(b.mint)
		if !ok {
			return false
		}
		b.counters.Upsert(saved)
		if created {
			b.cursor.Advance()
		}
		return true
	})
}

// DeleteDraft removes the counter being edited. It does nothing while adding.
func (b *Board) DeleteDraft() {
	b.mutate(func() bool {
		id, ok := b.dialog.Delete()
		if !ok {
			return false
		}
		b.removeLocked(id)
		return true
	})
}

// DeleteCounter removes a counter from its row and closes any open dialog.
func (b *Board) DeleteCounter(id string) {
	b.mutate(func() bool {
		removed := b.removeLocked(id)
		if b.dialog.Open() {
			b.dialog.Close()
			return true
		}
		return removed
	})
}

// AdjustCounter adds delta to a score. ok is false for an unknown id or an
// unloaded board.
func (b *Board) AdjustCounter(id string, delta int) (score int, ok bool) {
	b.mutate(func() bool {
		score, ok = b.adjustLocked(id, delta)
		return ok
	})
	return score, ok
}

// PointerDown starts a press on a +/- control.
func (b *Board) PointerDown(control press.Control) {
	b.mutate(func() bool {
		if _, ok := b.counters.Find(control.CounterID); !ok {
			return false
		}
		b.press.Down(control)
		return true
	})
}

// PointerUp ends a press and applies the resulting delta.
func (b *Board) PointerUp(control press.Control) {
	b.mutate(func() bool {
		delta, ok := b.press.Up(control)
		if !ok {
			return false
		}
		b.adjustLocked(delta.CounterID, delta.Amount)
		return true
	})
}

// PointerLeaveOrCancel abandons a press without adjusting.
func (b *Board) PointerLeaveOrCancel(control press.Control) {
	b.mutate(func() bool {
		if !b.press.Pressing(control) {
			return false
		}
		b.press.Cancel(control)
		return true
	})
}

// Add creates a counter outside the dialog, following the same rules as an
// add-save: an empty name becomes "Player N", an empty color takes the next
// palette entry, and the palette cursor advances either way.
func (b *Board) Add(name string, score int, color string) (counter.Counter, error) {
	var added counter.Counter
	err := b.mutateErr(func() error {
		draft := dialog.NewDraft(b.counters.Len(), b.cursor.Next())
		if name != "" {
			draft.Name = name
		}
		draft.Score = score
		if color != "" {
			parsed, ok := dialog.ParseColor(color)
			if !ok {
				return fmt.Errorf("app: invalid color %q", color)
			}
			draft.Color = parsed
		}
		added = draft.Materialize(b.mint)
		b.counters.Upsert(added)
		b.cursor.Advance()
		return nil
	})
	return added, err
}

// Update is an edit-save without the dialog. Nil fields are left unchanged.
func (b *Board) Update(id string, name *string, score *int, color *string) (counter.Counter, error) {
	var updated counter.Counter
	err := b.mutateErr(func() error {
		existing, ok := b.counters.Find(id)
		if !ok {
			return ErrNotFound
		}
		draft := dialog.DraftFrom(existing)
		if name != nil {
			draft.Name = *name
		}
		if score != nil {
			draft.Score = *score
		}
		if color != nil {
			parsed, ok := dialog.ParseColor(*color)
			if !ok {
				return fmt.Errorf("app: invalid color %q", *color)
			}
			draft.Color = parsed
		}
		updated = draft.Materialize(b.mint)
		b.counters.Upsert(updated)
		return nil
	})
	return updated, err
}

// Remove deletes a counter, reporting ErrNotFound when it is absent.
func (b *Board) Remove(id string) error {
	return b.mutateErr(func() error {
		if !b.removeLocked(id) {
			return ErrNotFound
		}
		if draft, open := b.dialog.Draft(); open && draft.ID == id {
			b.dialog.Close()
		}
		return nil
	})
}

// Adjust is AdjustCounter for callers that need an error.
func (b *Board) Adjust(id string, delta int) (counter.Counter, error) {
	var adjusted counter.Counter
	err := b.mutateErr(func() error {
		if _, ok := b.adjustLocked(id, delta); !ok {
			return ErrNotFound
		}
		adjusted, _ = b.counters.Find(id)
		return nil
	})
	return adjusted, err
}

// Resolve maps an exact id or a unique id prefix to a counter id.
func (b *Board) Resolve(ref string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrNotFound
	}
	if _, ok := b.counters.Find(ref); ok {
		return ref, nil
	}
	match := ""
	for _, c := range b.counters.Counters() {
		if strings.HasPrefix(c.ID, ref) {
			if match != "" {
				return "", fmt.Errorf("%w: %q", ErrAmbiguous, ref)
			}
			match = c.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	return match, nil
}

func (b *Board) adjustLocked(id string, delta int) (int, bool) {
	score, ok := b.counters.Adjust(id, delta)
	if !ok {
		return 0, false
	}
	switch {
	case delta > 0:
		b.metrics.IncAdjustments("up")
	case delta < 0:
		b.metrics.IncAdjustments("down")
	}
	return score, true
}

func (b *Board) removeLocked(id string) bool {
	if !b.counters.Remove(id) {
		return false
	}
	b.press.Forget(id)
	return true
}

// mutate runs fn on a loaded board and publishes when fn reports a change.
func (b *Board) mutate(fn func() bool) {
	b.mu.Lock()
	if !b.loaded || !fn() {
		b.mu.Unlock()
		return
	}
	snap := b.commitLocked(OriginUser)
	b.mu.Unlock()
	b.publish(snap)
}

func (b *Board) mutateErr(fn func() error) error {
	b.mu.Lock()
	if !b.loaded {
		b.mu.Unlock()
		return ErrNotLoaded
	}
	if err := fn(); err != nil {
		b.mu.Unlock()
		return err
	}
	snap := b.commitLocked(OriginUser)
	b.mu.Unlock()
	b.publish(snap)
	return nil
}

func (b *Board) commitLocked(origin Origin) Snapshot {
	b.version++
	if rev := b.counters.Revision(); rev != b.rev {
		b.rev = rev
		if origin == OriginUser {
			b.unsaved = b.version
		}
	}
	b.metrics.SetCounters(b.counters.Len())
	return b.snapshotLocked(origin)
}

func (b *Board) snapshotLocked(origin Origin) Snapshot {
	snap := Snapshot{
		Version:   b.version,
		Loaded:    b.loaded,
		Origin:    origin,
		Counters:  b.counters.Counters(),
		Dialog:    b.dialog.Mode(),
		Held:      b.press.Held(),
		NextColor: b.cursor.Next(),
		Swatches:  b.cursor.Swatches(),
	}
	if draft, ok := b.dialog.Draft(); ok {
		snap.Draft = draft
	}
	return snap
}

func (b *Board) publish(snap Snapshot) {
	b.pubMu.Lock()
	defer b.pubMu.Unlock()
	if snap.Version <= b.published {
		return
	}
	b.published = snap.Version

	b.subMu.Lock()
	subs := make([]func(Snapshot), 0, len(b.subs))
	for _, fn := range b.subs {
		subs = append(subs, fn)
	}
	b.subMu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}
