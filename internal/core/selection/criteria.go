package selection

import (
	"time"

	"github.com/penwyp/go-marks/internal/core/model"
	"github.com/penwyp/go-marks/internal/core/timeline"
	"github.com/penwyp/go-marks/internal/util"
)

// Criteria is the flat filter record the CLI builds from its flags.
type Criteria struct {
	// FromID and ToID are id prefixes bounding the selection by position.
	FromID string
	ToID   string

	After  *time.Time
	Before *time.Time

	Today     bool
	Yesterday bool
	ThisWeek  bool
	LastWeek  bool

	TagsAllOf  []string
	TagsNoneOf []string

	// Text is a case-insensitive regular expression matched against summaries.
	Text string

	// Union selects marks matching any criterion instead of all of them.
	// The id range is one of the alternatives when set.
	Union bool
}

// Build turns the criteria into a predicate tree. Id bounds are resolved
// against marks; a missing lower or upper bound defaults to the first or
// last mark, and reversed bounds are swapped.
func (c Criteria) Build(marks []model.Mark) (Predicate, error) {
	var rng Predicate
	if c.FromID != "" || c.ToID != "" {
		r, err := resolveRange(marks, c.FromID, c.ToID)
		if err != nil {
			return nil, err
		}
		rng = r
	}

	var parts []Predicate
	if c.After != nil {
		parts = append(parts, After{T: *c.After})
	}
	if c.Before != nil {
		parts = append(parts, Before{T: *c.Before})
	}
	for period, on := range []bool{c.Today, c.Yesterday, c.ThisWeek, c.LastWeek} {
		if on {
			parts = append(parts, Window{Period: Period(period)})
		}
	}
	if tags := model.NormalizeTags(c.TagsAllOf); len(tags) > 0 {
		parts = append(parts, HasAllTags(tags))
	}
	if tags := model.NormalizeTags(c.TagsNoneOf); len(tags) > 0 {
		parts = append(parts, HasNoTags(tags))
	}
	if c.Text != "" {
		tm, err := NewTextMatch(c.Text)
		if err != nil {
			return nil, err
		}
		parts = append(parts, tm)
	}

	if !c.Union {
		tree := And{IsTask{}}
		if rng != nil {
			tree = append(tree, rng)
		}
		return append(tree, parts...), nil
	}

	var alternatives Or
	if rng != nil {
		alternatives = append(alternatives, rng)
	}
	alternatives = append(alternatives, parts...)
	if len(alternatives) == 0 {
		return And{IsTask{}}, nil
	}
	return And{IsTask{}, alternatives}, nil
}

func resolveRange(marks []model.Mark, from, to string) (IndexRange, error) {
	r := IndexRange{Lo: 0, Hi: len(marks) - 1}
	if from != "" {
		idx, err := timeline.ResolveID(marks, from)
		if err != nil {
			return r, err
		}
		r.Lo = idx
	}
	if to != "" {
		idx, err := timeline.ResolveID(marks, to)
		if err != nil {
			return r, err
		}
		r.Hi = idx
	}
	if r.Lo > r.Hi {
		r.Lo, r.Hi = r.Hi, r.Lo
	}
	return r, nil
}

// Selector evaluates predicates over a timeline.
type Selector struct {
	WeekStart time.Weekday
}

// NewSelector creates a selector whose weeks begin on weekStart.
func NewSelector(weekStart time.Weekday) *Selector {
	return &Selector{WeekStart: weekStart}
}

// Select returns the ascending indices of the marks matching c.
func (s *Selector) Select(tl *model.Timeline, c Criteria, now time.Time) ([]int, error) {
	pred, err := c.Build(tl.Marks)
	if err != nil {
		return nil, err
	}
	return s.Evaluate(tl, pred, now), nil
}

// Evaluate returns the ascending indices of the marks matching pred.
func (s *Selector) Evaluate(tl *model.Timeline, pred Predicate, now time.Time) []int {
	env := &Env{Marks: tl.Marks, Now: now, WeekStart: s.WeekStart}
	selected := make([]int, 0, len(tl.Marks))
	for i := range tl.Marks {
		if pred.Match(env, i) {
			selected = append(selected, i)
		}
	}
	util.LogDebug("selection evaluated",
		util.F("predicate", pred.String()), util.F("selected", len(selected)), util.F("total", len(tl.Marks)))
	return selected
}

// Select evaluates c with weeks starting on Monday.
func Select(tl *model.Timeline, c Criteria, now time.Time) ([]int, error) {
	return NewSelector(time.Monday).Select(tl, c, now)
}
