// Package counter holds the tally domain model: a named, coloured counter and
// the ordered collection that owns them.
package counter

import "strings"

// Counter is a single scored row on the board.
type Counter struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Color string `json:"color"`
}

// Negative reports whether the score should be flagged as below zero.
func (c Counter) Negative() bool {
	return c.Score < 0
}

// Label returns the display name, falling back to the id for unnamed rows.
func (c Counter) Label() string {
	if strings.TrimSpace(c.Name) != "" {
		return c.Name
	}
	return c.ID
}

// Collection is an ordered set of counters with unique ids. The zero value is
// an empty, usable collection. It performs no I/O; callers that need
// persistence observe changes through the board that owns it.
type Collection struct {
	counters []Counter
	rev      uint64
}

// NewCollection builds a collection from the provided counters. The slice is
// copied.
func NewCollection(counters ...Counter) *Collection {
	c := &Collection{}
	c.Replace(counters)
	return c
}

// Len returns the number of counters.
func (c *Collection) Len() int {
	return len(c.counters)
}

// Revision increases with every change to the collection.
func (c *Collection) Revision() uint64 {
	return c.rev
}

// Counters returns a copy of the counters in insertion order.
func (c *Collection) Counters() []Counter {
	out := make([]Counter, len(c.counters))
	copy(out, c.counters)
	return out
}

// Find returns the counter with the given id.
func (c *Collection) Find(id string) (Counter, bool) {
	if i := c.index(id); i >= 0 {
		return c.counters[i], true
	}
	return Counter{}, false
}

// Upsert replaces the counter with the same id in place, or appends it.
func (c *Collection) Upsert(counter Counter) {
	c.rev++
	if i := c.index(counter.ID); i >= 0 {
		c.counters[i] = counter
		return
	}
	c.counters = append(c.counters, counter)
}

// Remove deletes the counter with the given id. A missing id is a no-op and
// reports false.
func (c *Collection) Remove(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.counters = append(c.counters[:i], c.counters[i+1:]...)
	c.rev++
	return true
}

// Adjust adds delta to the counter's score and returns the new score. ok is
// false when no counter has that id, in which case nothing changes.
func (c *Collection) Adjust(id string, delta int) (score int, ok bool) {
	i := c.index(id)
	if i < 0 {
		return 0, false
	}
	c.counters[i].Score += delta
	c.rev++
	return c.counters[i].Score, true
}

// Replace overwrites the whole collection, keeping the order given.
func (c *Collection) Replace(counters []Counter) {
	c.counters = make([]Counter, len(counters))
	copy(c.counters, counters)
	c.rev++
}

// Equal reports whether both collections hold the same counters in the same
// order.
func (c *Collection) Equal(other []Counter) bool {
	if len(c.counters) != len(other) {
		return false
	}
	for i := range c.counters {
		if c.counters[i] != other[i] {
			return false
		}
	}
	return true
}

func (c *Collection) index(id string) int {
	for i := range c.counters {
		if c.counters[i].ID == id {
			return i
		}
	}
	return -1
}

// Normalize makes ids unique in externally supplied data:
// counters with an empty id are given one from mint, and later duplicates of
// an id already seen are dropped.
func Normalize(counters []Counter, mint func() string) []Counter {
	seen := make(map[string]struct{}, len(counters))
	out := make([]Counter, 0, len(counters))
	for _, c := range counters {
		if c.ID == "" {
			c.ID = mint()
		}
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out
}
