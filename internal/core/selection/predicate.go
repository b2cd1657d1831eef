// Package selection narrows a timeline to the marks a listing or report
// should cover. Filters are expressed as a tree of predicates combined with
// And, Or and Not, evaluated independently for every mark index.
package selection

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/penwyp/go-marks/internal/core/model"
	"github.com/penwyp/go-marks/internal/util"
)

// Env is what predicates are evaluated against.
type Env struct {
	Marks     []model.Mark
	Now       time.Time
	WeekStart time.Weekday
}

// Predicate decides whether the mark at index i is selected.
type Predicate interface {
	Match(env *Env, i int) bool
	String() string
}

// And matches when every child matches. An empty And matches everything.
type And []Predicate

func (p And) Match(env *Env, i int) bool {
	for _, child := range p {
		if !child.Match(env, i) {
			return false
		}
	}
	return true
}

func (p And) String() string { return joinNames("and", p) }

// Or matches when any child matches. An empty Or matches nothing.
type Or []Predicate

func (p Or) Match(env *Env, i int) bool {
	for _, child := range p {
		if child.Match(env, i) {
			return true
		}
	}
	return false
}

func (p Or) String() string { return joinNames("or", p) }

// Not inverts its child.
type Not struct{ P Predicate }

func (p Not) Match(env *Env, i int) bool { return !p.P.Match(env, i) }
func (p Not) String() string             { return "not(" + p.P.String() + ")" }

func joinNames(op string, children []Predicate) string {
	names := make([]string, len(children))
	for i, c := range children {
		names[i] = c.String()
	}
	return op + "(" + strings.Join(names, ", ") + ")"
}

// IsTask matches task marks and rejects boundaries.
type IsTask struct{}

func (IsTask) Match(env *Env, i int) bool { return !env.Marks[i].IsBoundary() }
func (IsTask) String() string             { return "task" }

// IndexRange matches indices between Lo and Hi, inclusive.
type IndexRange struct{ Lo, Hi int }

func (p IndexRange) Match(_ *Env, i int) bool { return i >= p.Lo && i <= p.Hi }
func (p IndexRange) String() string           { return fmt.Sprintf("index[%d..%d]", p.Lo, p.Hi) }

// After matches marks at or after T.
type After struct{ T time.Time }

func (p After) Match(env *Env, i int) bool { return !env.Marks[i].Time.Before(p.T) }
func (p After) String() string             { return "after(" + p.T.Format(model.TimeLayout) + ")" }

// Before matches marks strictly before T.
type Before struct{ T time.Time }

func (p Before) Match(env *Env, i int) bool { return env.Marks[i].Time.Before(p.T) }
func (p Before) String() string             { return "before(" + p.T.Format(model.TimeLayout) + ")" }

// Period names a calendar window relative to the current time.
type Period int

const (
	PeriodToday Period = iota
	PeriodYesterday
	PeriodThisWeek
	PeriodLastWeek
)

var periodNames = map[Period]string{
	PeriodToday:     "today",
	PeriodYesterday: "yesterday",
	PeriodThisWeek:  "this-week",
	PeriodLastWeek:  "last-week",
}

// Window matches marks inside a calendar period around env.Now.
type Window struct{ Period Period }

// Bounds returns the half-open [start, end) range of the period.
func (p Window) Bounds(env *Env) (time.Time, time.Time) {
	day := util.StartOfDay(env.Now)
	week := util.StartOfWeek(env.Now, env.WeekStart)
	switch p.Period {
	case PeriodYesterday:
		return day.AddDate(0, 0, -1), day
	case PeriodThisWeek:
		return week, week.AddDate(0, 0, 7)
	case PeriodLastWeek:
		return week.AddDate(0, 0, -7), week
	default:
		return day, day.AddDate(0, 0, 1)
	}
}

func (p Window) Match(env *Env, i int) bool {
	start, end := p.Bounds(env)
	t := env.Marks[i].Time
	return !t.Before(start) && t.Before(end)
}

func (p Window) String() string { return periodNames[p.Period] }

// HasAllTags matches marks carrying every listed tag.
type HasAllTags []string

func (p HasAllTags) Match(env *Env, i int) bool {
	for _, tag := range p {
		if !env.Marks[i].HasTag(tag) {
			return false
		}
	}
	return true
}

func (p HasAllTags) String() string { return "tags(" + strings.Join(p, ",") + ")" }

// HasNoTags matches marks carrying none of the listed tags.
type HasNoTags []string

func (p HasNoTags) Match(env *Env, i int) bool {
	return !slices.ContainsFunc(p, env.Marks[i].HasTag)
}

func (p HasNoTags) String() string { return "without-tags(" + strings.Join(p, ",") + ")" }

// TextMatch matches summaries against a case-insensitive regular expression.
type TextMatch struct {
	pattern string
	re      *regexp.Regexp
}

// NewTextMatch compiles pattern.
func NewTextMatch(pattern string) (TextMatch, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return TextMatch{}, &model.ValidationError{Field: "text", Reason: err.Error()}
	}
	return TextMatch{pattern: pattern, re: re}, nil
}

func (p TextMatch) Match(env *Env, i int) bool { return p.re.MatchString(env.Marks[i].Summary) }
func (p TextMatch) String() string             { return fmt.Sprintf("text(%q)", p.pattern) }
