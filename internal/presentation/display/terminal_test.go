package display

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/penwyp/go-marks/internal/util"
	"github.com/stretchr/testify/assert"
)

var at = time.Date(2024, 1, 15, 9, 30, 5, 0, time.UTC)

func TestRenderPlain(t *testing.T) {
	util.SetColorMode(util.ColorNever)
	var buf bytes.Buffer
	td := NewTerminalDisplay(&buf, "marks.json", false)

	td.EnterAlternateScreen()
	td.Render(at, func(w io.Writer) error {
		_, err := io.WriteString(w, "first\n")
		return err
	})
	td.Render(at, func(w io.Writer) error {
		return errors.New("parse marks.json: bad time")
	})
	td.ExitAlternateScreen()

	out := buf.String()
	assert.NotContains(t, out, "\033[")
	assert.Equal(t, 2, strings.Count(out, "marks.json · updated 09:30:05 · Ctrl+C to quit"))
	assert.Contains(t, out, "first\n\n")
	assert.Contains(t, out, "Status: parse marks.json: bad time")
	assert.Equal(t, 2, td.Renders())
}

func TestRenderInteractive(t *testing.T) {
	util.SetColorMode(util.ColorNever)
	var buf bytes.Buffer
	td := NewTerminalDisplay(&buf, "marks.json", true)

	td.EnterAlternateScreen()
	td.EnterAlternateScreen()
	td.Render(at, func(w io.Writer) error { return nil })
	td.ExitAlternateScreen()
	td.ExitAlternateScreen()

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, enterAltScreen))
	assert.Equal(t, 1, strings.Count(out, exitAltScreen))
	assert.True(t, strings.HasSuffix(out, exitAltScreen))
	assert.Contains(t, out, clearScreen+moveHome+"marks.json")
}
