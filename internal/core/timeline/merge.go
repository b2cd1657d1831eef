package timeline

import (
	"fmt"
	"slices"
	"strings"

	"github.com/penwyp/go-marks/internal/core/model"
	"github.com/penwyp/go-marks/internal/util"
)

const (
	// NameSeparator joins the distinct input names of a merge.
	NameSeparator = " + "
	// SummarySeparator joins conflicting summaries.
	SummarySeparator = " | "
	// NotesDivider joins conflicting notes.
	NotesDivider = "\n--------\n"
)

// Conflict field names
const (
	FieldSummary = "summary"
	FieldNotes   = "notes"
	FieldTime    = "time"
	FieldKind    = "kind"
)

// Policy decides how a field that differs between marks sharing an id is
// resolved.
type Policy string

const (
	// PolicyConcatenate joins differing summaries and notes and keeps the
	// first time. A boundary sharing its id with a task joins as "STOP | X"
	// and the result is a task.
	PolicyConcatenate Policy = "concat"
	// PolicyKeepFirst keeps the mark as first seen.
	PolicyKeepFirst Policy = "first"
	// PolicyKeepLast takes every field from the last input holding the id.
	PolicyKeepLast Policy = "last"
)

// ParsePolicy validates a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyConcatenate, nil
	case PolicyConcatenate, PolicyKeepFirst, PolicyKeepLast:
		return p, nil
	}
	return "", &model.ValidationError{Field: "policy", Reason: fmt.Sprintf("unknown merge policy %q (concat, first, last)", s)}
}

// Conflict records the distinct values seen for one field of one id, in
// input order.
type Conflict struct {
	ID     string
	Field  string
	Values []string
}

type mergeState struct {
	index  int
	values map[string][]string
	last   model.Mark
}

// Merge combines timelines into one. Marks are taken in input order; a mark
// whose id was already seen is reconciled with the earlier one according to
// policy and its tags are unioned in. The result is sorted by time.
func Merge(timelines []*model.Timeline, policy Policy) (*model.Timeline, []Conflict) {
	if policy == "" {
		policy = PolicyConcatenate
	}

	var names []string
	out := &model.Timeline{Marks: make([]model.Mark, 0)}
	states := make(map[string]*mergeState)
	var order []string

	for _, tl := range timelines {
		if tl == nil {
			continue
		}
		if !slices.Contains(names, tl.Name) {
			names = append(names, tl.Name)
		}

		for _, m := range tl.Marks {
			st, seen := states[m.ID]
			if !seen {
				st = &mergeState{index: len(out.Marks), values: make(map[string][]string)}
				states[m.ID] = st
				order = append(order, m.ID)
				out.Marks = append(out.Marks, m.Clone())
			} else {
				merged := &out.Marks[st.index]
				merged.Tags = model.NormalizeTags(append(merged.Tags, m.Tags...))
			}
			st.last = m
			recordValue(st, FieldSummary, m.Label())
			recordValue(st, FieldNotes, m.Notes)
			recordValue(st, FieldTime, m.Time.Format(model.TimeLayout))
			recordValue(st, FieldKind, m.Kind.String())
		}
	}
	out.Name = strings.Join(names, NameSeparator)

	var conflicts []Conflict
	for _, id := range order {
		st := states[id]
		merged := &out.Marks[st.index]
		for _, field := range []string{FieldSummary, FieldNotes, FieldTime, FieldKind} {
			values := st.values[field]
			if len(values) < 2 {
				continue
			}
			conflicts = append(conflicts, Conflict{ID: id, Field: field, Values: slices.Clone(values)})
		}
		if policy == PolicyKeepLast {
			tags := merged.Tags
			*merged = st.last.Clone()
			merged.Tags = tags
		} else if policy == PolicyConcatenate {
			if v := st.values[FieldSummary]; len(v) > 1 {
				merged.Kind = model.KindTask
				merged.Summary = strings.Join(v, SummarySeparator)
			}
			if v := st.values[FieldNotes]; len(v) > 1 {
				merged.Notes = strings.Join(v, NotesDivider)
			}
		}
	}

	out.Sort()
	util.LogDebug("timelines merged",
		util.F("inputs", len(timelines)), util.F("marks", len(out.Marks)), util.F("conflicts", len(conflicts)))
	return out, conflicts
}

// recordValue notes a field value unless it is empty or already known. An
// empty value is no conflict, so notes "n" and "" merge to "n".
func recordValue(st *mergeState, field, value string) {
	if value == "" || slices.Contains(st.values[field], value) {
		return
	}
	st.values[field] = append(st.values[field], value)
}
