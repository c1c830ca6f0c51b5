// Package press classifies pointer presses on the +/- controls into a short
// tap or a long press.
package press

import (
	"fmt"
	"sort"
	"time"
)

const (
	// DefaultThreshold is how long a control must be held to count as a long
	// press.
	DefaultThreshold = 520 * time.Millisecond

	// TapMagnitude is emitted for a press shorter than the threshold.
	TapMagnitude = 1
	// LongMagnitude is emitted for a press of at least the threshold.
	LongMagnitude = 5
)

// Sign is the direction a control moves a score.
type Sign int

const (
	Minus Sign = -1
	Plus  Sign = 1
)

func (s Sign) String() string {
	if s == Minus {
		return "-"
	}
	return "+"
}

// Control identifies one interactive button: the counter it belongs to and
// which way it adjusts.
type Control struct {
	CounterID string
	Sign      Sign
}

func (c Control) String() string {
	return fmt.Sprintf("%s%s", c.CounterID, c.Sign)
}

// Delta is what a completed press produces.
type Delta struct {
	CounterID string
	Amount    int
}

// Classifier tracks a press session per control. Sessions are independent;
// holding one control never affects another.
type Classifier struct {
	threshold time.Duration
	now       func() time.Time
	sessions  map[Control]time.Time
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Classifier) {
		c.now = now
	}
}

// New creates a classifier. A non-positive threshold uses DefaultThreshold.
func New(threshold time.Duration, opts ...Option) *Classifier {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	c := &Classifier{
		threshold: threshold,
		now:       time.Now,
		sessions:  make(map[Control]time.Time),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Threshold returns the long-press duration.
func (c *Classifier) Threshold() time.Duration {
	return c.threshold
}

// Down starts (or restarts) a press on the control.
func (c *Classifier) Down(control Control) {
	c.sessions[control] = c.now()
}

// Up ends a press and returns the signed delta. ok is false when the control
// was not being pressed.
func (c *Classifier) Up(control Control) (Delta, bool) {
	start, pressing := c.sessions[control]
	if !pressing {
		return Delta{}, false
	}
	delete(c.sessions, control)
	return Delta{
		CounterID: control.CounterID,
		Amount:    int(control.Sign) * Magnitude(c.now().Sub(start), c.threshold),
	}, true
}

// Cancel drops a pending press without emitting anything. Used for both
// pointer-leave and pointer-cancel.
func (c *Classifier) Cancel(control Control) {
	delete(c.sessions, control)
}

// Pressing reports whether the control currently has a session.
func (c *Classifier) Pressing(control Control) bool {
	_, ok := c.sessions[control]
	return ok
}

// Held lists the controls with an active session, ordered by counter id with
// minus before plus.
func (c *Classifier) Held() []Control {
	held := make([]Control, 0, len(c.sessions))
	for control := range c.sessions {
		held = append(held, control)
	}
	sort.Slice(held, func(i, j int) bool {
		if held[i].CounterID != held[j].CounterID {
			return held[i].CounterID < held[j].CounterID
		}
		return held[i].Sign < held[j].Sign
	})
	return held
}

// Forget drops every session belonging to a counter, e.g. after it is
// deleted.
func (c *Classifier) Forget(counterID string) {
	for control := range c.sessions {
		if control.CounterID == counterID {
			delete(c.sessions, control)
		}
	}
}

// Magnitude maps a hold duration to the unsigned step size.
func Magnitude(elapsed, threshold time.Duration) int {
	if elapsed >= threshold {
		return LongMagnitude
	}
	return TapMagnitude
}
