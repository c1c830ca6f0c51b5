package tui

import "github.com/charmbracelet/bubbles/key"

type boardKeys struct {
	Up        key.Binding
	Down      key.Binding
	Plus      key.Binding
	Minus     key.Binding
	PlusLong  key.Binding
	MinusLong key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Quit      key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Plus, k.Minus, k.PlusLong, k.MinusLong, k.Add, k.Edit, k.Delete, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Plus, k.Minus, k.PlusLong, k.MinusLong},
		{k.Add, k.Edit, k.Delete, k.Quit},
	}
}

type dialogKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Left   key.Binding
	Right  key.Binding
	Save   key.Binding
	Cancel key.Binding
	Delete key.Binding
}

func (k dialogKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Save, k.Cancel, k.Delete}
}

func (k dialogKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Left, k.Right}, {k.Save, k.Cancel, k.Delete}}
}

func defaultBoardKeys() boardKeys {
	return boardKeys{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Plus:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "+1")),
		Minus:     key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "-1")),
		PlusLong:  key.NewBinding(key.WithKeys("]", "}"), key.WithHelp("]", "+5")),
		MinusLong: key.NewBinding(key.WithKeys("[", "{"), key.WithHelp("[", "-5")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func defaultDialogKeys() dialogKeys {
	return dialogKeys{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous swatch")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next swatch")),
		Save:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Delete: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
	}
}
