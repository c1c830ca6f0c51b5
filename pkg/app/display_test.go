package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowHeight(t *testing.T) {
	tests := map[string]struct {
		rows, available, minimum int
		want                     int
	}{
		"empty board":   {rows: 0, available: 40, minimum: 3, want: 40},
		"one row":       {rows: 1, available: 40, minimum: 3, want: 40},
		"split evenly":  {rows: 4, available: 40, minimum: 3, want: 10},
		"rounds down":   {rows: 3, available: 40, minimum: 3, want: 13},
		"minimum floor": {rows: 20, available: 40, minimum: 3, want: 3},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, RowHeight(tc.rows, tc.available, tc.minimum))
		})
	}
}

func TestRowHeightCSS(t *testing.T) {
	assert.Equal(t, "100vh", RowHeightCSS(0))
	assert.Equal(t, "max(100.000vh, 96px)", RowHeightCSS(1))
	assert.Equal(t, "max(33.333vh, 96px)", RowHeightCSS(3))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "0 counters", Summary(0))
	assert.Equal(t, "1 counter", Summary(1))
	assert.Equal(t, "5 counters", Summary(5))
}
