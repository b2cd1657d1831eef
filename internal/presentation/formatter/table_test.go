package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/penwyp/go-marks/internal/presentation/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFormatter(t *testing.T) {
	tl := sampleTimeline()
	rows := BuildRows(tl, []int{0, 1, 2, 3}, at(200))

	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(layout.NewSizer(120)).Format(&buf, rows))
	out := buf.String()

	assert.Contains(t, out, "aaaaaaaa")
	assert.Contains(t, out, "2024-01-15 09:00")
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "1h 30m")
	assert.Contains(t, out, "STOP")
	assert.Contains(t, out, "+code +review")
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "2h 20m")
	assert.NotContains(t, out, "\033[")
}

func TestTableFormatterTruncatesSummary(t *testing.T) {
	tl := sampleTimeline()
	tl.Marks[0].Summary = strings.Repeat("long summary text ", 10)
	rows := BuildRows(tl, []int{0}, at(200))

	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(layout.NewSizer(60)).Format(&buf, rows))

	assert.Contains(t, buf.String(), "…")
	assert.NotContains(t, buf.String(), strings.TrimSpace(tl.Marks[0].Summary))
}

func TestTableFormatterShowsFirstLineOnly(t *testing.T) {
	tl := sampleTimeline()
	tl.Marks[0].Summary = "headline\nsecond line"
	rows := BuildRows(tl, []int{0}, at(200))

	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(layout.NewSizer(120)).Format(&buf, rows))

	assert.Contains(t, buf.String(), "headline")
	assert.NotContains(t, buf.String(), "second line")
}

func TestTableFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(nil).Format(&buf, nil))
	assert.Equal(t, "No marks selected.\n", buf.String())
}
