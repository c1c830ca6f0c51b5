package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/tally/pkg/dialog"
	"tableflip.dev/tally/pkg/tui/theme"
)

// Modal geometry. The modal is centred above the help line. The frame has a
// one cell border and 1x2 padding, so content line i sits at top+2+i and
// content column c at left+3+c.
const (
	modalContentWidth = 36
	modalLabelWidth   = 7
	swatchWidth       = 3
	swatchGap         = 1

	lineTitle    = 0
	lineName     = 2
	lineScore    = 3
	lineColor    = 4
	lineSwatches = 6
	lineButtons  = 8
	modalLines   = 9

	saveLabel   = "[ Save ]"
	cancelLabel = "[ Cancel ]"
	deleteLabel = "[ Delete ]"
	buttonGap   = 2
)

type modalAction int

const (
	actionNone modalAction = iota
	actionBackdrop
	actionFocus
	actionSwatch
	actionSave
	actionCancel
	actionDelete
)

type modalHit struct {
	action modalAction
	index  int
}

func modalBox() (int, int) {
	return modalContentWidth + 6, modalLines + 4
}

// modalAt maps a screen cell to the dialog control under it.
func modalAt(width, height, x, y int, editing bool) modalHit {
	boxW, boxH := modalBox()
	left := max(0, (width-boxW)/2)
	top := max(0, (height-footerHeight-boxH)/2)
	if x < left || x >= left+boxW || y < top || y >= top+boxH {
		return modalHit{action: actionBackdrop}
	}
	line := y - top - 2
	col := x - left - 3
	if line < 0 || line >= modalLines || col < 0 || col >= modalContentWidth {
		return modalHit{}
	}
	switch line {
	case lineName:
		return modalHit{action: actionFocus, index: focusName}
	case lineScore:
		return modalHit{action: actionFocus, index: focusScore}
	case lineColor:
		return modalHit{action: actionFocus, index: focusColor}
	case lineSwatches:
		if col%(swatchWidth+swatchGap) < swatchWidth {
			return modalHit{action: actionSwatch, index: col / (swatchWidth + swatchGap)}
		}
	case lineButtons:
		save := len(saveLabel)
		cancelStart := save + buttonGap
		cancelEnd := cancelStart + len(cancelLabel)
		deleteStart := cancelEnd + buttonGap
		switch {
		case col < save:
			return modalHit{action: actionSave}
		case col >= cancelStart && col < cancelEnd:
			return modalHit{action: actionCancel}
		case editing && col >= deleteStart && col < deleteStart+len(deleteLabel):
			return modalHit{action: actionDelete}
		}
	}
	return modalHit{}
}

func (m Model) updateDialogMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	h := modalAt(m.width, m.height, msg.X, msg.Y, m.snap.Dialog == dialog.Editing)
	switch h.action {
	case actionBackdrop, actionCancel:
		m.board.CloseDialog()
	case actionSave:
		m.board.SaveDraft()
	case actionDelete:
		m.board.DeleteDraft()
	case actionFocus:
		m.form.setFocus(h.index)
		return m, nil
	case actionSwatch:
		if h.index >= len(m.form.swatches) {
			return m, nil
		}
		m.form.setFocus(focusSwatches)
		m.pickSwatch(h.index)
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

func (m Model) updateDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.form.keys
	switch {
	case key.Matches(msg, k.Cancel):
		m.board.CloseDialog()
	case key.Matches(msg, k.Save):
		m.board.SaveDraft()
	case key.Matches(msg, k.Delete):
		m.board.DeleteDraft()
	case key.Matches(msg, k.Next):
		m.form.setFocus(m.form.focus + 1)
		return m, nil
	case key.Matches(msg, k.Prev):
		m.form.setFocus(m.form.focus - 1)
		return m, nil
	case m.form.focus == focusSwatches && key.Matches(msg, k.Left):
		m.pickSwatch(m.form.swatch - 1)
	case m.form.focus == focusSwatches && key.Matches(msg, k.Right):
		m.pickSwatch(m.form.swatch + 1)
	case m.form.focus == focusSwatches:
		return m, nil
	default:
		input := &m.form.inputs[m.form.focus]
		before := input.Value()
		var cmd tea.Cmd
		*input, cmd = input.Update(msg)
		if input.Value() == before {
			return m, cmd
		}
		m.board.DraftFieldChanged(formFields[m.form.focus], input.Value())
		if m.form.focus == focusColor {
			m.form.matchSwatch(input.Value())
		}
		m.refresh()
		return m, cmd
	}
	m.refresh()
	return m, nil
}

// pickSwatch selects palette entry i, wrapping at either end.
func (m *Model) pickSwatch(i int) {
	n := len(m.form.swatches)
	if n == 0 {
		return
	}
	i = (i%n + n) % n
	m.form.swatch = i
	m.form.inputs[focusColor].SetValue(m.form.swatches[i])
	m.form.inputs[focusColor].CursorEnd()
	m.board.DraftFieldChanged(dialog.FieldColor, m.form.swatches[i])
}

func (f *form) matchSwatch(value string) {
	color, ok := dialog.ParseColor(value)
	if !ok {
		return
	}
	f.swatch = -1
	for i, s := range f.swatches {
		if strings.EqualFold(s, color) {
			f.swatch = i
		}
	}
}

func (m Model) viewDialog() string {
	t := m.theme.Modal
	editing := m.snap.Dialog == dialog.Editing

	lines := make([]string, modalLines)
	title := "Add counter"
	if editing {
		title = "Edit counter"
	}
	lines[lineTitle] = t.Title.Render(title)

	labels := []string{"Name", "Score", "Color"}
	for i, label := range labels {
		style := t.Label
		if m.form.focus == i {
			style = t.Focused
		}
		lines[lineName+i] = style.Width(modalLabelWidth).Render(label) + m.form.inputs[i].View()
	}

	var swatches strings.Builder
	for i, hex := range m.form.swatches {
		if i > 0 {
			swatches.WriteString(strings.Repeat(" ", swatchGap))
		}
		mark := "   "
		style := theme.Fill(t.Swatch, hex)
		if i == m.form.swatch {
			mark = " ✓ "
			style = theme.Fill(t.Selected, hex)
		}
		swatches.WriteString(style.Render(mark))
	}
	if m.form.focus == focusSwatches {
		lines[lineSwatches] = swatches.String() + " " + t.Focused.Render("‹›")
	} else {
		lines[lineSwatches] = swatches.String()
	}

	gap := strings.Repeat(" ", buttonGap)
	buttons := t.Focused.Render(saveLabel) + gap + t.Label.Render(cancelLabel)
	if editing {
		buttons += gap + t.Danger.Render(deleteLabel)
	}
	lines[lineButtons] = buttons

	boxW, boxH := modalBox()
	box := t.Frame.Width(boxW - 2).Render(strings.Join(lines, "\n"))
	area := max(boxH, m.height-footerHeight)
	return lipgloss.Place(m.width, area, lipgloss.Center, lipgloss.Center, box) + "\n" +
		m.theme.Footer.Help.Render(m.help.View(m.form.keys))
}
