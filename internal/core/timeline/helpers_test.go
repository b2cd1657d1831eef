package timeline

import (
	"fmt"
	"time"

	"github.com/penwyp/go-marks/internal/core/model"
)

func clock(hour, minute int) time.Time {
	return time.Date(2024, 3, 4, hour, minute, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// sequentialIDs returns an id source yielding id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func task(id string, at time.Time, summary string, tags ...string) model.Mark {
	return model.Mark{ID: id, Time: at, Kind: model.KindTask, Summary: summary, Tags: tags}
}

func boundary(id string, at time.Time) model.Mark {
	return model.Mark{ID: id, Time: at, Kind: model.KindBoundary}
}

func newTimeline(marks ...model.Mark) *model.Timeline {
	return &model.Timeline{Name: "test", Marks: marks}
}
