package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContrast(t *testing.T) {
	assert.Equal(t, "#f8fafc", Contrast("#0f172a"), "dark background gets light text")
	assert.Equal(t, "#0f172a", Contrast("#fde68a"), "light background gets dark text")
	assert.Equal(t, "#f8fafc", Contrast("not-a-colour"))
}
