package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorize(t *testing.T) {
	SetColorMode(ColorNever)
	assert.Equal(t, "plain", Colorize("plain", ColorRed))
	assert.False(t, ColorEnabled())

	SetColorMode(ColorAlways)
	defer SetColorMode(ColorNever)
	assert.Equal(t, ColorRed+"red"+ColorReset, Colorize("red", ColorRed))
	assert.Equal(t, "", Colorize("", ColorRed))
}

func TestTruncateDisplay(t *testing.T) {
	assert.Equal(t, "short", TruncateDisplay("short", 10))
	assert.Equal(t, "unlimited text", TruncateDisplay("unlimited text", 0))
	assert.Equal(t, 6, GetDisplayWidth(TruncateDisplay("a rather long summary", 6)))
	// Wide runes take two cells each.
	assert.Equal(t, 4, GetDisplayWidth("日本"))
	assert.LessOrEqual(t, GetDisplayWidth(TruncateDisplay("日本語のテキスト", 5)), 5)
}
