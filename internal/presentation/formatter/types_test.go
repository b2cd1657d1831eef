package formatter

import (
	"testing"
	"time"

	"github.com/penwyp/go-marks/internal/presentation/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRows(t *testing.T) {
	tl := sampleTimeline()
	now := at(200)

	rows := BuildRows(tl, []int{0, 1, 2, 3, 9}, now)
	require.Len(t, rows, 4)

	assert.Equal(t, 90*time.Minute, rows[0].Duration)
	assert.Equal(t, at(90), rows[0].End)
	assert.False(t, rows[0].Open)

	assert.Equal(t, 30*time.Minute, rows[1].Duration)

	assert.True(t, rows[2].Mark.IsBoundary())
	assert.Zero(t, rows[2].Duration)

	assert.Equal(t, 20*time.Minute, rows[3].Duration)
	assert.True(t, rows[3].Open)

	assert.Equal(t, 140*time.Minute, Total(rows))
}

func TestNewFormatter(t *testing.T) {
	sizer := layout.NewSizer(80)

	tests := []struct {
		output string
		want   interface{}
	}{
		{output: "table", want: &TableFormatter{}},
		{output: "", want: &TableFormatter{}},
		{output: "json", want: &JSONFormatter{}},
		{output: "csv", want: &CSVFormatter{}},
	}
	for _, tt := range tests {
		f, err := NewFormatter(tt.output, sizer)
		require.NoError(t, err)
		assert.IsType(t, tt.want, f)
	}

	_, err := NewFormatter("xml", sizer)
	assert.Error(t, err)
}
