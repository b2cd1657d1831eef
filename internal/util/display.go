package util

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

// Terminal color sequences
const (
	ColorReset   = "\033[0m"
	ColorBlue    = "\033[34m"
	ColorCyan    = "\033[36m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorRed     = "\033[31m"
	ColorMagenta = "\033[35m"
	ColorBold    = "\033[1m"
	ColorDim     = "\033[2m"
)

// Color modes accepted by the "color" setting
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// SetColorMode switches colored output on or off. "auto" colors only when
// stdout is a terminal.
func SetColorMode(mode string) {
	switch mode {
	case ColorAlways:
		colorEnabled = true
	case ColorNever:
		colorEnabled = false
	default:
		colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

// ColorEnabled reports whether Colorize emits escape sequences.
func ColorEnabled() bool {
	return colorEnabled
}

// Colorize wraps text in the given color when color output is enabled
func Colorize(text, color string) string {
	if !colorEnabled || text == "" {
		return text
	}
	return fmt.Sprintf("%s%s%s", color, text, ColorReset)
}

// GetDisplayWidth calculates the actual display width of a string, accounting for wide runes
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateDisplay shortens text to at most width display cells, marking
// the cut with an ellipsis.
func TruncateDisplay(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}
