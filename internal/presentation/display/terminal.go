// Package display drives the full-screen view of `marks list --watch`.
package display

import (
	"fmt"
	"io"
	"time"

	"github.com/penwyp/go-marks/internal/util"
)

// Terminal control sequences
const (
	enterAltScreen = "\033[?1049h"
	exitAltScreen  = "\033[?1049l"
	clearScreen    = "\033[2J"
	moveHome       = "\033[H"
	hideCursor     = "\033[?25l"
	showCursor     = "\033[?25h"
)

// TerminalDisplay redraws a view in place. With Interactive unset it only
// separates successive renders, so piped output stays readable.
type TerminalDisplay struct {
	out         io.Writer
	interactive bool
	title       string

	inAlternateScreen bool
	renders           int
}

func NewTerminalDisplay(out io.Writer, title string, interactive bool) *TerminalDisplay {
	return &TerminalDisplay{
		out:         out,
		interactive: interactive,
		title:       title,
	}
}

// EnterAlternateScreen switches to alternate screen buffer
func (td *TerminalDisplay) EnterAlternateScreen() {
	if !td.interactive || td.inAlternateScreen {
		return
	}
	fmt.Fprint(td.out, enterAltScreen+clearScreen+moveHome+hideCursor)
	td.inAlternateScreen = true
}

// ExitAlternateScreen returns to normal screen buffer
func (td *TerminalDisplay) ExitAlternateScreen() {
	if !td.inAlternateScreen {
		return
	}
	fmt.Fprint(td.out, clearScreen+moveHome+showCursor+exitAltScreen)
	td.inAlternateScreen = false
}

// Render draws the header followed by the output of render. A render
// error is shown as a status line instead of ending the view.
func (td *TerminalDisplay) Render(at time.Time, render func(io.Writer) error) {
	if td.inAlternateScreen {
		fmt.Fprint(td.out, clearScreen+moveHome)
	} else if td.renders > 0 {
		fmt.Fprintln(td.out)
	}
	td.renders++

	header := fmt.Sprintf("%s · updated %s · Ctrl+C to quit", td.title, at.Format("15:04:05"))
	fmt.Fprintln(td.out, util.Colorize(header, util.ColorDim))

	if err := render(td.out); err != nil {
		td.renderStatusMessage(err.Error())
	}
}

// Renders reports how many times the view was drawn.
func (td *TerminalDisplay) Renders() int {
	return td.renders
}

func (td *TerminalDisplay) renderStatusMessage(message string) {
	fmt.Fprintf(td.out, "%s %s\n", util.Colorize("Status:", util.ColorRed), message)
}
