package timeline

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/penwyp/go-marks/internal/core/model"
	"github.com/penwyp/go-marks/internal/util"
)

// Result describes what a lifecycle operation changed.
type Result struct {
	Kind CommandKind
	// Touched holds the indices of the affected marks after the operation.
	// For delete it holds the index the mark had before removal.
	Touched []int
	// Marks holds copies of the affected marks, aligned with Touched.
	Marks []model.Mark
	// Noop is set when the operation was not permitted in the current state
	// and left the timeline untouched.
	Noop    bool
	Message string
}

// AddParams starts a new task.
type AddParams struct {
	At      *time.Time
	Summary string
	Notes   string
	Tags    []string
}

// StopParams closes the active task.
type StopParams struct {
	At    *time.Time
	Notes string
	Tags  []string
}

// ContinueParams restarts the task that was last stopped.
type ContinueParams struct {
	At *time.Time
}

// ResumeParams restarts an earlier task, the last one when ID is empty.
type ResumeParams struct {
	ID string
	At *time.Time
}

// AmendParams edits a mark in place. Nil fields are left unchanged.
type AmendParams struct {
	ID         string
	Summary    *string
	At         *time.Time
	Notes      *string
	AddTags    []string
	RemoveTags []string
}

// DeleteParams removes a mark.
type DeleteParams struct {
	ID string
}

// Engine applies lifecycle transitions to a Timeline.
type Engine struct {
	newID func() string
}

// NewEngine creates an engine that assigns random UUIDs to new marks.
func NewEngine() *Engine {
	return &Engine{newID: uuid.NewString}
}

// NewEngineWithIDs creates an engine with a custom id source. Used by tests.
func NewEngineWithIDs(newID func() string) *Engine {
	return &Engine{newID: newID}
}

// Init creates an empty named timeline.
func Init(name string) (*model.Timeline, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &model.ValidationError{Field: "name", Reason: "required"}
	}
	return model.NewTimeline(name), nil
}

func markTime(at *time.Time, now time.Time) time.Time {
	if at != nil {
		return at.Truncate(time.Second)
	}
	return now.Truncate(time.Second)
}

func touched(kind CommandKind, tl *model.Timeline, idx int, msg string) Result {
	return Result{
		Kind:    kind,
		Touched: []int{idx},
		Marks:   []model.Mark{tl.Marks[idx].Clone()},
		Message: msg,
	}
}

func noop(kind CommandKind, msg string) Result {
	return Result{Kind: kind, Noop: true, Message: msg}
}

// Add appends a new task mark. It is permitted in any state.
func (e *Engine) Add(tl *model.Timeline, p AddParams, now time.Time) (Result, error) {
	summary := strings.TrimSpace(p.Summary)
	if summary == "" {
		return Result{}, &model.ValidationError{Field: "summary", Reason: "required"}
	}
	if summary == model.BoundarySummary {
		return Result{}, &model.ValidationError{Field: "summary", Reason: "reserved"}
	}

	m := model.Mark{
		ID:      e.newID(),
		Time:    markTime(p.At, now),
		Kind:    model.KindTask,
		Summary: summary,
		Notes:   p.Notes,
		Tags:    model.NormalizeTags(p.Tags),
	}
	idx := tl.Insert(m)
	util.LogDebug("mark added", util.F("id", m.ID), util.F("index", idx))
	return touched(CommandAdd, tl, idx, fmt.Sprintf("started %q", summary)), nil
}

// Stop appends a boundary closing the active task. Without an active task
// it does nothing and reports so.
func (e *Engine) Stop(tl *model.Timeline, p StopParams, now time.Time) (Result, error) {
	active, ok := tl.Last()
	if !ok || active.IsBoundary() {
		return noop(CommandStop, "nothing to stop"), nil
	}

	at := markTime(p.At, now)
	if at.Before(active.Time) {
		return Result{}, &model.ValidationError{
			Field:  "time",
			Reason: fmt.Sprintf("stop time %s precedes start of active task at %s", at.Format(model.TimeLayout), active.Time.Format(model.TimeLayout)),
		}
	}

	m := model.Mark{
		ID:    e.newID(),
		Time:  at,
		Kind:  model.KindBoundary,
		Notes: p.Notes,
		Tags:  model.NormalizeTags(p.Tags),
	}
	idx := tl.Insert(m)
	util.LogDebug("task stopped", util.F("id", m.ID), util.F("task", active.ID))
	return touched(CommandStop, tl, idx, fmt.Sprintf("stopped %q after %s", active.Summary, util.FormatDuration(at.Sub(active.Time)))), nil
}

// Continue restarts the task preceding the trailing boundary. With a task
// already active it does nothing and reports the task in progress.
func (e *Engine) Continue(tl *model.Timeline, p ContinueParams, now time.Time) (Result, error) {
	last, ok := tl.Last()
	if ok && !last.IsBoundary() {
		r := touched(CommandContinue, tl, tl.Len()-1, fmt.Sprintf("task in progress: %q", last.Summary))
		r.Noop = true
		return r, nil
	}

	src, err := LastActiveIndex(tl.Marks)
	if err != nil {
		return noop(CommandContinue, "nothing to continue"), nil
	}

	at := markTime(p.At, now)
	if at.Before(last.Time) {
		return Result{}, &model.ValidationError{Field: "time", Reason: "continue time precedes the last stop"}
	}

	idx := tl.Insert(e.copyOf(tl.Marks[src], at))
	return touched(CommandContinue, tl, idx, fmt.Sprintf("continued %q", tl.Marks[idx].Summary)), nil
}

// Resume appends a copy of the target mark, the most recent task when no id
// is given. It does not check for a currently active task.
func (e *Engine) Resume(tl *model.Timeline, p ResumeParams, now time.Time) (Result, error) {
	src, err := resolveTarget(tl.Marks, p.ID)
	if err != nil {
		return Result{}, err
	}
	if tl.Marks[src].IsBoundary() {
		return Result{}, &model.ValidationError{Field: "id", Reason: "cannot resume a stop mark"}
	}

	idx := tl.Insert(e.copyOf(tl.Marks[src], markTime(p.At, now)))
	return touched(CommandResume, tl, idx, fmt.Sprintf("resumed %q", tl.Marks[idx].Summary)), nil
}

// Amend edits the target mark, the most recent task when no id is given.
// Tags are added without duplicates and removed by exact match. A time
// change moves the mark to its sorted position.
func (e *Engine) Amend(tl *model.Timeline, p AmendParams, now time.Time) (Result, error) {
	idx, err := resolveTarget(tl.Marks, p.ID)
	if err != nil {
		return Result{}, err
	}

	m := tl.Marks[idx].Clone()
	if p.Summary != nil {
		summary := strings.TrimSpace(*p.Summary)
		switch {
		case m.IsBoundary():
			return Result{}, &model.ValidationError{Field: "summary", Reason: "stop marks have no summary"}
		case summary == "":
			return Result{}, &model.ValidationError{Field: "summary", Reason: "must not be empty"}
		case summary == model.BoundarySummary:
			return Result{}, &model.ValidationError{Field: "summary", Reason: "reserved"}
		}
		m.Summary = summary
	}
	if p.Notes != nil {
		m.Notes = *p.Notes
	}
	if len(p.AddTags) > 0 {
		m.Tags = model.NormalizeTags(append(m.Tags, p.AddTags...))
	}
	if len(p.RemoveTags) > 0 {
		m.Tags = slices.DeleteFunc(m.Tags, func(tag string) bool {
			return slices.Contains(p.RemoveTags, tag)
		})
		if len(m.Tags) == 0 {
			m.Tags = nil
		}
	}

	if p.At != nil && !p.At.Truncate(time.Second).Equal(m.Time) {
		m.Time = p.At.Truncate(time.Second)
		tl.Remove(idx)
		idx = tl.Insert(m)
	} else {
		tl.Marks[idx] = m
	}

	util.LogDebug("mark amended", util.F("id", m.ID), util.F("index", idx))
	return touched(CommandAmend, tl, idx, fmt.Sprintf("amended %s", m.ShortID())), nil
}

// Delete removes the mark resolved from id.
func (e *Engine) Delete(tl *model.Timeline, p DeleteParams, now time.Time) (Result, error) {
	if strings.TrimSpace(p.ID) == "" {
		return Result{}, &model.ValidationError{Field: "id", Reason: "required"}
	}
	idx, err := ResolveID(tl.Marks, p.ID)
	if err != nil {
		return Result{}, err
	}

	removed := tl.Remove(idx)
	util.LogDebug("mark deleted", util.F("id", removed.ID), util.F("index", idx))
	return Result{
		Kind:    CommandDelete,
		Touched: []int{idx},
		Marks:   []model.Mark{removed},
		Message: fmt.Sprintf("deleted %s %q", removed.ShortID(), removed.Label()),
	}, nil
}

// copyOf duplicates the task fields of src under a fresh id and time.
func (e *Engine) copyOf(src model.Mark, at time.Time) model.Mark {
	return model.Mark{
		ID:      e.newID(),
		Time:    at,
		Kind:    model.KindTask,
		Summary: src.Summary,
		Notes:   src.Notes,
		Tags:    slices.Clone(src.Tags),
	}
}
