package formatter

import (
	"bytes"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-marks/internal/core/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter(t *testing.T) {
	tl := sampleTimeline()
	rows := BuildRows(tl, []int{1, 2, 3}, at(200))

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(&buf, rows))

	var got []map[string]interface{}
	require.NoError(t, sonic.ConfigStd.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)

	assert.Equal(t, "bbbbbbbb-2222", got[0]["id"])
	assert.Equal(t, "2024-01-15T10:30:00", got[0]["time"])
	assert.Equal(t, "2024-01-15T11:00:00", got[0]["end"])
	assert.Equal(t, float64(1800), got[0]["duration_seconds"])
	assert.Equal(t, "30m 0s", got[0]["duration"])
	assert.Equal(t, "first pass", got[0]["notes"])
	assert.Equal(t, []interface{}{"code", "review"}, got[0]["tags"])

	assert.Equal(t, "STOP", got[1]["summary"])
	assert.Equal(t, []interface{}{}, got[1]["tags"])
	assert.NotContains(t, got[1], "end")

	assert.Equal(t, true, got[2]["open"])
}

func TestJSONFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestJSONFormatterSummary(t *testing.T) {
	tl := sampleTimeline()
	intervals := timeline.ComputeIntervals(tl, []int{0, 1, 3}, at(200))

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().FormatSummary(&buf, NewSummaryReport(tl.Name, intervals)))

	var got struct {
		Name            string `json:"name"`
		From            string `json:"from"`
		To              string `json:"to"`
		Count           int    `json:"count"`
		DurationSeconds int64  `json:"duration_seconds"`
		BySummary       []struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		} `json:"by_summary"`
	}
	require.NoError(t, sonic.ConfigStd.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "work", got.Name)
	assert.Equal(t, "2024-01-15T09:00:00", got.From)
	assert.Equal(t, "2024-01-15T12:20:00", got.To)
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, int64(140*60), got.DurationSeconds)
	require.Len(t, got.BySummary, 2)
	assert.Equal(t, "Write report", got.BySummary[0].Name)
	assert.Equal(t, 2, got.BySummary[0].Count)
}
