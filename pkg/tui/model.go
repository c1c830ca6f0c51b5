// Package tui is the full-screen terminal renderer for the board. It draws
// snapshots and forwards gestures to the board as discrete events.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/tally/pkg/app"
	"tableflip.dev/tally/pkg/dialog"
	"tableflip.dev/tally/pkg/press"
	"tableflip.dev/tally/pkg/tui/theme"
)

// snapshotMsg carries a snapshot published by another goroutine, e.g. a
// reload after another process wrote the slot.
type snapshotMsg app.Snapshot

// Model is the Bubble Tea model for the board.
type Model struct {
	board   *app.Board
	snap    app.Snapshot
	updates <-chan app.Snapshot

	width    int
	height   int
	minRow   int
	selected int

	// pressing is the control under an active mouse press.
	pressing *press.Control

	form  form
	theme theme.Theme
	keys  boardKeys
	help  help.Model
}

// New builds a model over board. minRow is the smallest row height in lines.
func New(board *app.Board, minRow int) Model {
	if minRow < 1 {
		minRow = 1
	}
	return Model{
		board:  board,
		snap:   board.Snapshot(),
		minRow: minRow,
		width:  80,
		height: 24,
		form:   newForm(),
		theme:  theme.Default(),
		keys:   defaultBoardKeys(),
		help:   help.New(),
	}
}

// WithUpdates makes the model redraw whenever a snapshot arrives on ch.
func (m Model) WithUpdates(ch <-chan app.Snapshot) Model {
	m.updates = ch
	return m
}

// Snapshot is the state the model last drew.
func (m Model) Snapshot() app.Snapshot {
	return m.snap
}

func (m Model) Init() tea.Cmd {
	return waitForSnapshot(m.updates)
}

func waitForSnapshot(ch <-chan app.Snapshot) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg(snap)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case snapshotMsg:
		m.apply(app.Snapshot(msg))
		return m, waitForSnapshot(m.updates)

	case tea.MouseMsg:
		if m.snap.Dialog != dialog.Closed {
			return m.updateDialogMouse(msg)
		}
		return m.updateBoardMouse(msg)

	case tea.KeyMsg:
		if m.snap.Dialog != dialog.Closed {
			return m.updateDialogKey(msg)
		}
		return m.updateBoardKey(msg)
	}
	return m, nil
}

// refresh pulls the board state after a local event.
func (m *Model) refresh() {
	m.apply(m.board.Snapshot())
}

func (m *Model) apply(snap app.Snapshot) {
	if snap.Version < m.snap.Version {
		return
	}
	wasOpen := m.snap.Dialog != dialog.Closed
	m.snap = snap
	if !wasOpen && snap.Dialog != dialog.Closed {
		m.form.load(snap.Draft, snap.Swatches)
	}
	if snap.Dialog == dialog.Closed {
		m.form.blur()
	}
	if m.selected >= len(snap.Counters) {
		m.selected = len(snap.Counters) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	if m.pressing != nil && !snap.Holding(*m.pressing) {
		m.pressing = nil
	}
}

func (m Model) selectedID() (string, bool) {
	if m.selected < 0 || m.selected >= len(m.snap.Counters) {
		return "", false
	}
	return m.snap.Counters[m.selected].ID, true
}

func (m Model) layout() layout {
	return newLayout(m.width, m.height, len(m.snap.Counters), m.minRow, m.selected)
}

func (m Model) updateBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id, hasRow := m.selectedID()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.snap.Counters)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Add):
		m.board.OpenAdd()
	case key.Matches(msg, m.keys.Edit) && hasRow:
		m.board.OpenEdit(id)
	case key.Matches(msg, m.keys.Delete) && hasRow:
		m.board.DeleteCounter(id)
	case key.Matches(msg, m.keys.Plus) && hasRow:
		m.board.AdjustCounter(id, press.TapMagnitude)
	case key.Matches(msg, m.keys.Minus) && hasRow:
		m.board.AdjustCounter(id, -press.TapMagnitude)
	case key.Matches(msg, m.keys.PlusLong) && hasRow:
		m.board.AdjustCounter(id, press.LongMagnitude)
	case key.Matches(msg, m.keys.MinusLong) && hasRow:
		m.board.AdjustCounter(id, -press.LongMagnitude)
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

func (m Model) updateBoardMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	l := m.layout()
	h := l.at(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch h.zone {
		case zoneAdd:
			m.board.OpenAdd()
		case zoneMinus, zonePlus:
			m.selected = h.row
			control := m.controlFor(h)
			m.board.PointerDown(control)
			m.pressing = &control
		case zoneDelete:
			m.board.DeleteCounter(m.snap.Counters[h.row].ID)
		case zoneName:
			m.selected = h.row
			m.board.OpenEdit(m.snap.Counters[h.row].ID)
		default:
			return m, nil
		}

	case tea.MouseActionMotion:
		if m.pressing == nil {
			return m, nil
		}
		if m.controlFor(h) != *m.pressing {
			m.board.PointerLeaveOrCancel(*m.pressing)
			m.pressing = nil
		}

	case tea.MouseActionRelease:
		if m.pressing == nil {
			return m, nil
		}
		if m.controlFor(h) == *m.pressing {
			m.board.PointerUp(*m.pressing)
		} else {
			m.board.PointerLeaveOrCancel(*m.pressing)
		}
		m.pressing = nil

	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

func (m Model) controlFor(h hit) press.Control {
	if h.row < 0 || h.row >= len(m.snap.Counters) {
		return press.Control{}
	}
	id := m.snap.Counters[h.row].ID
	switch h.zone {
	case zoneMinus:
		return press.Control{CounterID: id, Sign: press.Minus}
	case zonePlus:
		return press.Control{CounterID: id, Sign: press.Plus}
	default:
		return press.Control{}
	}
}

func (m Model) View() string {
	if m.snap.Dialog != dialog.Closed {
		return m.viewDialog()
	}
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewRows())
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) viewHeader() string {
	t := m.theme.Header
	left := t.Title.Render("tally") + " " +
		t.Summary.Render(app.Summary(len(m.snap.Counters))) + "  " +
		t.Hint.Render(fmt.Sprintf("hold %s for ±%d", m.board.Threshold(), press.LongMagnitude))
	right := t.Add.Render(addLabel)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		left = truncate.String(left, uint(max(0, m.width-lipgloss.Width(right)-2)))
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) viewRows() string {
	l := m.layout()
	area := m.height - headerHeight - footerHeight
	if area < 1 {
		area = 1
	}
	if len(m.snap.Counters) == 0 {
		return lipgloss.Place(m.width, area, lipgloss.Center, lipgloss.Center,
			m.theme.Row.Empty.Render("No counters yet. Press a or click [ + add ] to start."))
	}

	lines := make([]string, 0, area)
	end := l.offset + l.visible
	if end > len(m.snap.Counters) {
		end = len(m.snap.Counters)
	}
	for i := l.offset; i < end; i++ {
		lines = append(lines, m.viewRow(l, i)...)
	}
	for len(lines) < area {
		lines = append(lines, "")
	}
	return strings.Join(lines[:area], "\n")
}

func (m Model) viewRow(l layout, i int) []string {
	c := m.snap.Counters[i]
	t := m.theme.Row
	fill := theme.Fill(t.Base, c.Color)

	minus := press.Control{CounterID: c.ID, Sign: press.Minus}
	plus := press.Control{CounterID: c.ID, Sign: press.Plus}

	button := func(label string, control press.Control) string {
		style := theme.Fill(t.Button, c.Color)
		if m.snap.Holding(control) {
			style = theme.Fill(t.Held, c.Color)
		}
		return style.Width(l.zoneWidth).Align(lipgloss.Center).Render(label)
	}

	score := strconv.Itoa(c.Score)
	scoreStyle := theme.Fill(t.Score, c.Color)
	if c.Negative() {
		scoreStyle = theme.Fill(t.Negative, c.Color)
	}

	middle := l.width - 2*l.zoneWidth - deleteWidth
	nameWidth := middle - len(score) - 2
	if nameWidth < 0 {
		nameWidth = 0
	}
	marker := "  "
	nameStyle := fill
	if i == m.selected {
		marker = "› "
		nameStyle = theme.Fill(t.Selected, c.Color)
	}
	name := truncate.StringWithTail(marker+c.Name, uint(nameWidth), "…")

	content := button("−", minus) +
		fill.Width(deleteWidth).Render(" ✕") +
		nameStyle.Width(nameWidth).Render(name) +
		fill.Render(" ") + scoreStyle.Render(score) + fill.Render(" ") +
		button("+", plus)

	blank := fill.Width(l.width).Render("")
	lines := make([]string, l.rowHeight)
	for j := range lines {
		lines[j] = blank
	}
	lines[l.rowHeight/2] = content
	return lines
}

// form holds the dialog's text inputs. The board owns the draft; the inputs
// only hold what the user is typing.
type form struct {
	inputs   []textinput.Model
	focus    int
	swatch   int
	swatches []string
	keys     dialogKeys
}

const (
	focusName = iota
	focusScore
	focusColor
	focusSwatches
	focusCount
)

var formFields = []dialog.Field{dialog.FieldName, dialog.FieldScore, dialog.FieldColor}

func newForm() form {
	inputs := make([]textinput.Model, len(formFields))
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = 24
		ti.CharLimit = 64
		inputs[i] = ti
	}
	inputs[focusScore].CharLimit = 12
	inputs[focusColor].CharLimit = 7
	inputs[focusColor].Placeholder = "#rrggbb"
	return form{inputs: inputs, keys: defaultDialogKeys()}
}

func (f *form) load(d dialog.Draft, swatches []string) {
	f.inputs[focusName].SetValue(d.Name)
	f.inputs[focusScore].SetValue(strconv.Itoa(d.Score))
	f.inputs[focusColor].SetValue(d.Color)
	for i := range f.inputs {
		f.inputs[i].CursorEnd()
	}
	f.swatches = swatches
	f.swatch = -1
	for i, s := range swatches {
		if strings.EqualFold(s, d.Color) {
			f.swatch = i
		}
	}
	f.setFocus(focusName)
}

func (f *form) setFocus(i int) {
	f.focus = (i + focusCount) % focusCount
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (f *form) blur() {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
}
