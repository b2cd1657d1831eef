package timeline

import (
	"time"

	"github.com/penwyp/go-marks/internal/core/model"
)

// Interval is the span a task mark covers.
type Interval struct {
	Index    int
	Mark     model.Mark
	Start    time.Time
	End      time.Time
	Duration time.Duration
	// Open is set when the mark is the last one and ends at "now".
	Open bool
}

// ComputeIntervals returns the interval of each selected task mark. A mark
// ends where the next mark starts, or at now for the last mark. Boundary
// indices and indices out of range are skipped.
func ComputeIntervals(tl *model.Timeline, indices []int, now time.Time) []Interval {
	intervals := make([]Interval, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(tl.Marks) || tl.Marks[i].IsBoundary() {
			continue
		}
		m := tl.Marks[i]
		iv := Interval{Index: i, Mark: m, Start: m.Time}
		if i+1 < len(tl.Marks) {
			iv.End = tl.Marks[i+1].Time
		} else {
			iv.End = now
			iv.Open = true
		}
		iv.Duration = iv.End.Sub(iv.Start)
		intervals = append(intervals, iv)
	}
	return intervals
}

// TotalDuration sums the durations of intervals.
func TotalDuration(intervals []Interval) time.Duration {
	var total time.Duration
	for _, iv := range intervals {
		total += iv.Duration
	}
	return total
}
