package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-marks/internal/util"
	"golang.org/x/term"
)

const (
	// DefaultWidth is used when stdout is not a terminal.
	DefaultWidth = 100
	// MinFlexWidth is the narrowest a flexible column is squeezed to.
	MinFlexWidth = 16
	minTermWidth = 40
)

// Sizer measures the terminal for table layout.
type Sizer struct {
	// Width overrides the detected terminal width when positive.
	Width int
}

// NewSizer returns a Sizer fixed at width, or one that asks the terminal
// when width is zero.
func NewSizer(width int) *Sizer {
	if width < 0 {
		width = 0
	}
	return &Sizer{Width: width}
}

// displayWidth calculates the actual display width of a string containing emojis and Unicode characters
func (s Sizer) displayWidth(str string) int {
	return runewidth.StringWidth(str)
}

// PadString pads a string to a specific display width, handling wide runes correctly
func (s Sizer) PadString(str string, width int, leftAlign bool) string {
	actualWidth := s.displayWidth(str)
	if actualWidth >= width {
		return str
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return str + padding
	}
	return padding + str
}

// TerminalWidth returns the usable output width.
func (s Sizer) TerminalWidth() int {
	if s.Width > 0 {
		return s.Width
	}

	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth < minTermWidth {
		termWidth = DefaultWidth
	}

	util.LogDebugf("TerminalWidth %d", termWidth)
	return termWidth
}

// FlexWidth returns the room left for one flexible column once fixed
// cells of the row are laid out.
func (s Sizer) FlexWidth(fixed int) int {
	w := s.TerminalWidth() - fixed
	if w < MinFlexWidth {
		return MinFlexWidth
	}
	return w
}
