package app

import "fmt"

// MinRowHeightPx is the smallest row the web layout allows.
const MinRowHeightPx = 96

// RowHeight splits available lines between rows, never going below minimum.
// An empty board gets the full height for its placeholder.
func RowHeight(rows, available, minimum int) int {
	if rows <= 0 {
		return available
	}
	h := available / rows
	if h < minimum {
		return minimum
	}
	return h
}

// RowHeightCSS is the same rule expressed for a browser viewport.
func RowHeightCSS(rows int) string {
	if rows <= 0 {
		return "100vh"
	}
	return fmt.Sprintf("max(%.3fvh, %dpx)", 100/float64(rows), MinRowHeightPx)
}

// Summary is the header line, e.g. "3 counters".
func Summary(rows int) string {
	if rows == 1 {
		return "1 counter"
	}
	return fmt.Sprintf("%d counters", rows)
}
