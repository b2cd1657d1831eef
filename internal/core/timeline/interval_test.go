package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeIntervals(t *testing.T) {
	tl := newTimeline(
		task("a", clock(9, 0), "A"),
		task("b", clock(9, 45), "B"),
		boundary("s", clock(10, 30)),
		task("c", clock(13, 0), "C"),
	)
	now := clock(14, 15)

	intervals := ComputeIntervals(tl, []int{0, 1, 2, 3}, now)
	require.Len(t, intervals, 3)

	assert.Equal(t, 0, intervals[0].Index)
	assert.Equal(t, 45*time.Minute, intervals[0].Duration)
	assert.False(t, intervals[0].Open)

	// A boundary still ends the preceding task.
	assert.Equal(t, 1, intervals[1].Index)
	assert.Equal(t, clock(10, 30), intervals[1].End)
	assert.Equal(t, 45*time.Minute, intervals[1].Duration)

	assert.Equal(t, 3, intervals[2].Index)
	assert.True(t, intervals[2].Open)
	assert.Equal(t, now, intervals[2].End)
	assert.Equal(t, 75*time.Minute, intervals[2].Duration)

	assert.Equal(t, 165*time.Minute, TotalDuration(intervals))
}

func TestComputeIntervalsSkipsOutOfRange(t *testing.T) {
	tl := newTimeline(task("a", clock(9, 0), "A"))

	intervals := ComputeIntervals(tl, []int{-1, 0, 5}, clock(9, 30))
	require.Len(t, intervals, 1)
	assert.Equal(t, 30*time.Minute, intervals[0].Duration)
}

func TestComputeIntervalsOutOfOrderTimesGoNegative(t *testing.T) {
	tl := newTimeline(task("a", clock(10, 0), "A"), task("b", clock(9, 0), "B"))

	intervals := ComputeIntervals(tl, []int{0}, clock(11, 0))
	require.Len(t, intervals, 1)
	assert.Equal(t, -time.Hour, intervals[0].Duration)
}
