package selection

import (
	"fmt"
	"testing"
	"time"

	"github.com/penwyp/go-marks/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now is Thursday 2024-03-07 14:00.
var now = time.Date(2024, 3, 7, 14, 0, 0, 0, time.UTC)

func day(d, hour int) time.Time {
	return time.Date(2024, 3, d, hour, 0, 0, 0, time.UTC)
}

func fixture() *model.Timeline {
	fixtures := []struct {
		at      time.Time
		summary string
		tags    []string
	}{
		{time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC), "Old report", []string{"work"}},
		{time.Date(2024, 2, 29, 11, 0, 0, 0, time.UTC), "", nil},
		{day(4, 9), "Plan sprint", []string{"work"}},
		{day(4, 12), "", nil},
		{day(6, 10), "Code review", []string{"work", "review"}},
		{day(6, 18), "Gym", []string{"personal"}},
		{day(6, 19), "", nil},
		{day(7, 9), "Write docs", []string{"work", "docs"}},
		{day(7, 11), "Lunch", nil},
		{day(7, 12), "", nil},
	}

	tl := model.NewTimeline("fixture")
	for i, s := range fixtures {
		m := model.Mark{ID: fmt.Sprintf("m%d", i), Time: s.at, Summary: s.summary, Tags: s.tags}
		if s.summary == "" {
			m.Kind = model.KindBoundary
		}
		tl.Marks = append(tl.Marks, m)
	}
	return tl
}

func ts(t time.Time) *time.Time { return &t }

func TestSelectIntersection(t *testing.T) {
	tl := fixture()

	tests := []struct {
		name     string
		criteria Criteria
		expected []int
	}{
		{name: "no criteria selects every task", criteria: Criteria{}, expected: []int{0, 2, 4, 5, 7, 8}},
		{name: "today", criteria: Criteria{Today: true}, expected: []int{7, 8}},
		{name: "yesterday", criteria: Criteria{Yesterday: true}, expected: []int{4, 5}},
		{name: "this week", criteria: Criteria{ThisWeek: true}, expected: []int{2, 4, 5, 7, 8}},
		{name: "last week", criteria: Criteria{LastWeek: true}, expected: []int{0}},
		{name: "after is inclusive", criteria: Criteria{After: ts(day(6, 10))}, expected: []int{4, 5, 7, 8}},
		{name: "before is exclusive", criteria: Criteria{Before: ts(day(6, 10))}, expected: []int{0, 2}},
		{name: "all of one tag", criteria: Criteria{TagsAllOf: []string{"work"}}, expected: []int{0, 2, 4, 7}},
		{name: "all of two tags", criteria: Criteria{TagsAllOf: []string{"work", "review"}}, expected: []int{4}},
		{name: "none of tags", criteria: Criteria{TagsNoneOf: []string{"work"}}, expected: []int{5, 8}},
		{name: "text is case insensitive", criteria: Criteria{Text: "DOC"}, expected: []int{7}},
		{name: "text is a regular expression", criteria: Criteria{Text: "^(gym|lunch)$"}, expected: []int{5, 8}},
		{name: "id range", criteria: Criteria{FromID: "m2", ToID: "m5"}, expected: []int{2, 4, 5}},
		{name: "reversed id range", criteria: Criteria{FromID: "m5", ToID: "m2"}, expected: []int{2, 4, 5}},
		{name: "open upper bound", criteria: Criteria{FromID: "m7"}, expected: []int{7, 8}},
		{name: "open lower bound", criteria: Criteria{ToID: "m2"}, expected: []int{0, 2}},
		{name: "combined", criteria: Criteria{ThisWeek: true, TagsAllOf: []string{"work"}}, expected: []int{2, 4, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tl, tt.criteria, now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSelectUnion(t *testing.T) {
	tl := fixture()

	tests := []struct {
		name     string
		criteria Criteria
		expected []int
	}{
		{name: "no criteria selects every task", criteria: Criteria{Union: true}, expected: []int{0, 2, 4, 5, 7, 8}},
		{name: "today or review", criteria: Criteria{Union: true, Today: true, TagsAllOf: []string{"review"}}, expected: []int{4, 7, 8}},
		{name: "id range or today", criteria: Criteria{Union: true, FromID: "m0", ToID: "m2", Today: true}, expected: []int{0, 2, 7, 8}},
		{name: "last week or text", criteria: Criteria{Union: true, LastWeek: true, Text: "gym"}, expected: []int{0, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tl, tt.criteria, now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSelectMonotonic(t *testing.T) {
	tl := fixture()

	steps := []func(c *Criteria){
		func(c *Criteria) { c.ThisWeek = true },
		func(c *Criteria) { c.TagsAllOf = []string{"work"} },
		func(c *Criteria) { c.Text = "review" },
		func(c *Criteria) { c.TagsNoneOf = []string{"review"} },
	}

	t.Run("intersection never grows", func(t *testing.T) {
		c := Criteria{}
		prev, err := Select(tl, c, now)
		require.NoError(t, err)
		for _, step := range steps {
			step(&c)
			got, err := Select(tl, c, now)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(got), len(prev))
			prev = got
		}
		assert.Empty(t, prev)
	})

	t.Run("union never shrinks", func(t *testing.T) {
		c := Criteria{Union: true, LastWeek: true}
		prev, err := Select(tl, c, now)
		require.NoError(t, err)
		for _, step := range steps {
			step(&c)
			got, err := Select(tl, c, now)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(got), len(prev))
			prev = got
		}
	})
}

func TestSelectWeekStart(t *testing.T) {
	tl := fixture()

	got, err := NewSelector(time.Sunday).Select(tl, Criteria{ThisWeek: true}, now)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 5, 7, 8}, got)

	got, err = NewSelector(time.Thursday).Select(tl, Criteria{ThisWeek: true}, now)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8}, got)

	got, err = NewSelector(time.Thursday).Select(tl, Criteria{LastWeek: true}, now)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 5}, got)
}

func TestSelectErrors(t *testing.T) {
	tl := fixture()

	_, err := Select(tl, Criteria{Text: "("}, now)
	var ve *model.ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = Select(tl, Criteria{FromID: "zz"}, now)
	var nf *model.NotFoundError
	assert.ErrorAs(t, err, &nf)

	_, err = Select(tl, Criteria{ToID: "m"}, now)
	var amb *model.AmbiguousIDError
	assert.ErrorAs(t, err, &amb)
}

func TestSelectEmptyTimeline(t *testing.T) {
	got, err := Select(model.NewTimeline("empty"), Criteria{Today: true}, now)
	require.NoError(t, err)
	assert.Empty(t, got)
}
