package formatter

import (
	"os"
	"testing"
	"time"

	"github.com/penwyp/go-marks/internal/core/model"
	"github.com/penwyp/go-marks/internal/util"
)

func TestMain(m *testing.M) {
	util.SetColorMode(util.ColorNever)
	os.Exit(m.Run())
}

var base = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

func at(minutes int) time.Time {
	return base.Add(time.Duration(minutes) * time.Minute)
}

// sampleTimeline: two tasks, a stop, then an open task.
func sampleTimeline() *model.Timeline {
	return &model.Timeline{
		Name: "work",
		Marks: []model.Mark{
			{ID: "aaaaaaaa-1111", Time: at(0), Summary: "Write report", Tags: []string{"docs"}},
			{ID: "bbbbbbbb-2222", Time: at(90), Summary: "Review, \"PR\"", Notes: "first pass", Tags: []string{"code", "review"}},
			{ID: "cccccccc-3333", Time: at(120), Kind: model.KindBoundary},
			{ID: "dddddddd-4444", Time: at(180), Summary: "Write report"},
		},
	}
}
