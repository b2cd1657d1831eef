package formatter

import (
	"fmt"
	"io"
	"time"

	"github.com/penwyp/go-marks/internal/core/model"
	"github.com/penwyp/go-marks/internal/core/timeline"
	"github.com/penwyp/go-marks/internal/presentation/layout"
)

// MarkRow is one selected mark with its interval.
type MarkRow struct {
	Index    int
	Mark     model.Mark
	End      time.Time
	Duration time.Duration
	Open     bool
}

// Formatter renders selected marks.
type Formatter interface {
	Format(w io.Writer, rows []MarkRow) error
}

// NewFormatter returns the renderer for output ("table", "json" or "csv").
func NewFormatter(output string, sizer *layout.Sizer) (Formatter, error) {
	switch output {
	case model.OutputTable, "":
		return NewTableFormatter(sizer), nil
	case model.OutputJSON:
		return NewJSONFormatter(), nil
	case model.OutputCSV:
		return NewCSVFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", output)
	}
}

// BuildRows pairs every index with its interval. Boundary marks get a row
// without duration.
func BuildRows(tl *model.Timeline, indices []int, now time.Time) []MarkRow {
	intervals := make(map[int]timeline.Interval, len(indices))
	for _, iv := range timeline.ComputeIntervals(tl, indices, now) {
		intervals[iv.Index] = iv
	}

	rows := make([]MarkRow, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= tl.Len() {
			continue
		}
		row := MarkRow{Index: i, Mark: tl.Marks[i]}
		if iv, ok := intervals[i]; ok {
			row.End = iv.End
			row.Duration = iv.Duration
			row.Open = iv.Open
		}
		rows = append(rows, row)
	}
	return rows
}

// Total sums the durations of rows.
func Total(rows []MarkRow) time.Duration {
	var total time.Duration
	for _, r := range rows {
		total += r.Duration
	}
	return total
}
