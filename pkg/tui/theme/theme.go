package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	Row    RowTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// HeaderTheme styles the title bar.
type HeaderTheme struct {
	Bar     lipgloss.Style
	Title   lipgloss.Style
	Summary lipgloss.Style
	Hint    lipgloss.Style
	Add     lipgloss.Style
}

// RowTheme styles counter rows. Colours are applied per row from the
// counter, these are the shared attributes.
type RowTheme struct {
	Base     lipgloss.Style
	Selected lipgloss.Style
	Button   lipgloss.Style
	Held     lipgloss.Style
	Score    lipgloss.Style
	Negative lipgloss.Style
	Empty    lipgloss.Style
}

// FooterTheme groups styles used by the bottom help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// ModalTheme styles the add/edit dialog.
type ModalTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Swatch   lipgloss.Style
	Selected lipgloss.Style
	Danger   lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header: HeaderTheme{
			Bar:     lipgloss.NewStyle().Padding(0, 1),
			Title:   lipgloss.NewStyle().Bold(true),
			Summary: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
			Add:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Row: RowTheme{
			Base:     lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Bold(true),
			Button:   lipgloss.NewStyle().Bold(true),
			Held:     lipgloss.NewStyle().Bold(true).Reverse(true),
			Score:    lipgloss.NewStyle().Bold(true),
			Negative: lipgloss.NewStyle().Bold(true).Underline(true),
			Empty: lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")).
				Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title:    lipgloss.NewStyle().Bold(true),
			Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Swatch:   lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Bold(true),
			Danger:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		},
	}
}

// Fill returns a style painting background hex with a readable foreground.
func Fill(base lipgloss.Style, hex string) lipgloss.Style {
	return base.
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(Contrast(hex)))
}

// Contrast picks a light or dark text colour for a background. Unparseable
// colours get light text.
func Contrast(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#f8fafc"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#0f172a"
	}
	return "#f8fafc"
}
