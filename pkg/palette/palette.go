// Package palette assigns default colours to new counters.
package palette

// Palette is an ordered list of preset colours.
type Palette []string

// Default is the preset palette offered in the dialog.
var Default = Palette{
	"#0f172a",
	"#1e3a8a",
	"#047857",
	"#9d174d",
	"#7c3aed",
	"#ea580c",
	"#2563eb",
	"#0f766e",
}

// Cursor rotates through a palette. It only moves when a new counter is
// saved, so edits, deletes and cancels never change the next default colour.
type Cursor struct {
	palette Palette
	index   int
}

// NewCursor starts a cursor at the first entry. An empty palette falls back
// to Default.
func NewCursor(p Palette) *Cursor {
	if len(p) == 0 {
		p = Default
	}
	return &Cursor{palette: p}
}

// Next returns the colour the next new counter should get.
func (c *Cursor) Next() string {
	return c.palette[c.index%len(c.palette)]
}

// Advance moves the cursor by one entry.
func (c *Cursor) Advance() {
	c.index = (c.index + 1) % len(c.palette)
}

// Index is the current cursor position.
func (c *Cursor) Index() int {
	return c.index
}

// Swatches returns a copy of the palette.
func (c *Cursor) Swatches() Palette {
	out := make(Palette, len(c.palette))
	copy(out, c.palette)
	return out
}
