// Package dialog implements the add/edit modal lifecycle. The dialog works on
// a detached Draft; nothing reaches the committed collection until Save.
package dialog

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/tally/pkg/counter"
)

// Mode is the dialog state.
type Mode int

const (
	Closed Mode = iota
	Adding
	Editing
)

func (m Mode) String() string {
	switch m {
	case Adding:
		return "adding"
	case Editing:
		return "editing"
	default:
		return "closed"
	}
}

// Field names an editable draft field.
type Field string

const (
	FieldName  Field = "name"
	FieldScore Field = "score"
	FieldColor Field = "color"
)

// Draft is an uncommitted copy of a counter. An empty ID means the draft
// describes a counter that does not exist yet.
type Draft struct {
	ID    string
	Name  string
	Score int
	Color string
}

// IsNew reports whether saving the draft creates a counter.
func (d Draft) IsNew() bool {
	return d.ID == ""
}

// NewDraft is the draft offered when adding to a board of existing counters.
func NewDraft(existing int, color string) Draft {
	return Draft{
		Name:  fmt.Sprintf("Player %d", existing+1),
		Score: 0,
		Color: color,
	}
}

// DraftFrom copies a committed counter into a draft.
func DraftFrom(c counter.Counter) Draft {
	return Draft{ID: c.ID, Name: c.Name, Score: c.Score, Color: c.Color}
}

// Materialize turns the draft into a counter, minting an id for new drafts
// and trimming the name.
func (d Draft) Materialize(mint func() string) counter.Counter {
	id := d.ID
	if id == "" {
		id = mint()
	}
	return counter.Counter{
		ID:    id,
		Name:  strings.TrimSpace(d.Name),
		Score: d.Score,
		Color: d.Color,
	}
}

// Controller is the Closed / Adding / Editing state machine.
type Controller struct {
	mode  Mode
	draft Draft
}

// Mode returns the current state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Open reports whether a dialog is showing.
func (c *Controller) Open() bool {
	return c.mode != Closed
}

// Draft returns a copy of the working draft. ok is false when closed.
func (c *Controller) Draft() (Draft, bool) {
	if c.mode == Closed {
		return Draft{}, false
	}
	return c.draft, true
}

// OpenAdd starts a new-counter draft. Opening over an open dialog replaces
// its draft.
func (c *Controller) OpenAdd(existing int, color string) {
	c.mode = Adding
	c.draft = NewDraft(existing, color)
}

// OpenEdit starts editing a copy of the counter.
func (c *Controller) OpenEdit(existing counter.Counter) {
	c.mode = Editing
	c.draft = DraftFrom(existing)
}

// Close discards the draft.
func (c *Controller) Close() {
	c.mode = Closed
	c.draft = Draft{}
}

// Change applies an in-dialog edit to the draft. Input that cannot be used
// (a non-integer score, an unparseable colour) is ignored and the previous
// value kept. It reports whether the draft changed.
func (c *Controller) Change(field Field, value string) bool {
	if c.mode == Closed {
		return false
	}
	switch field {
	case FieldName:
		if c.draft.Name == value {
			return false
		}
		c.draft.Name = value
	case FieldScore:
		score, err := strconv.Atoi(value)
		if err != nil || score == c.draft.Score {
			return false
		}
		c.draft.Score = score
	case FieldColor:
		color, ok := ParseColor(value)
		if !ok || color == c.draft.Color {
			return false
		}
		c.draft.Color = color
	default:
		return false
	}
	return true
}

// Save materialises the draft and closes the dialog. created reports whether
// the counter is new. ok is false when no dialog was open.
func (c *Controller) Save(mint func() string) (saved counter.Counter, created bool, ok bool) {
	if c.mode == Closed {
		return counter.Counter{}, false, false
	}
	created = c.draft.IsNew()
	saved = c.draft.Materialize(mint)
	c.Close()
	return saved, created, true
}

// Delete closes an editing dialog and returns the id to remove. It is not
// available while adding.
func (c *Controller) Delete() (string, bool) {
	if c.mode != Editing || c.draft.ID == "" {
		return "", false
	}
	id := c.draft.ID
	c.Close()
	return id, true
}

// ParseColor normalises a hex colour ("#abc" or "#aabbcc").
func ParseColor(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value != "" && !strings.HasPrefix(value, "#") {
		value = "#" + value
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}
