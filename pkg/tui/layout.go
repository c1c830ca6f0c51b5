package tui

import "tableflip.dev/tally/pkg/app"

const (
	headerHeight = 1
	footerHeight = 1
	// deleteWidth is the "✕ " target at the start of a row's name area.
	deleteWidth = 3
	addLabel    = "[ + add ]"
)

type zone int

const (
	zoneNone zone = iota
	zoneMinus
	zonePlus
	zoneDelete
	zoneName
	zoneAdd
)

// hit is what a screen cell maps to.
type hit struct {
	zone zone
	row  int
}

// layout is the board geometry for one frame.
type layout struct {
	width     int
	height    int
	rows      int
	rowHeight int
	visible   int
	offset    int
	zoneWidth int
}

func newLayout(width, height, rows, minRow, selected int) layout {
	area := height - headerHeight - footerHeight
	if area < 1 {
		area = 1
	}
	if minRow < 1 {
		minRow = 1
	}
	l := layout{
		width:     width,
		height:    height,
		rows:      rows,
		rowHeight: app.RowHeight(rows, area, minRow),
	}
	l.visible = area / l.rowHeight
	if l.visible < 1 {
		l.visible = 1
	}
	if selected >= l.visible {
		l.offset = selected - l.visible + 1
	}
	l.zoneWidth = 7
	if width < 30 {
		l.zoneWidth = width / 5
		if l.zoneWidth < 3 {
			l.zoneWidth = 3
		}
	}
	return l
}

// at maps a cell to the control under it.
func (l layout) at(x, y int) hit {
	if y < headerHeight {
		if x >= l.width-len(addLabel)-1 {
			return hit{zone: zoneAdd, row: -1}
		}
		return hit{zone: zoneNone, row: -1}
	}
	y -= headerHeight
	slot := y / l.rowHeight
	if slot >= l.visible {
		return hit{zone: zoneNone, row: -1}
	}
	row := l.offset + slot
	if row >= l.rows {
		return hit{zone: zoneNone, row: -1}
	}
	switch {
	case x < l.zoneWidth:
		return hit{zone: zoneMinus, row: row}
	case x >= l.width-l.zoneWidth:
		return hit{zone: zonePlus, row: row}
	case x < l.zoneWidth+deleteWidth:
		return hit{zone: zoneDelete, row: row}
	default:
		return hit{zone: zoneName, row: row}
	}
}
