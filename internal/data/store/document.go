package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/penwyp/go-marks/internal/core/model"
	"github.com/penwyp/go-marks/internal/util"
)

// document is the persisted shape as read. Pointer fields tell an absent
// field from an empty one.
type document struct {
	Name  *string      `json:"name" yaml:"name"`
	Marks []markRecord `json:"marks" yaml:"marks"`
}

type markRecord struct {
	ID      *string  `json:"id" yaml:"id"`
	Time    *string  `json:"time" yaml:"time"`
	Summary *string  `json:"summary" yaml:"summary"`
	Notes   string   `json:"notes" yaml:"notes"`
	Tags    []string `json:"tags" yaml:"tags"`
}

// outDocument is the persisted shape as written. Field order is the key
// order in the output.
type outDocument struct {
	Name  string    `json:"name" yaml:"name"`
	Marks []outMark `json:"marks" yaml:"marks"`
}

type outMark struct {
	ID      string   `json:"id" yaml:"id"`
	Time    string   `json:"time" yaml:"time"`
	Summary string   `json:"summary" yaml:"summary"`
	Notes   string   `json:"notes" yaml:"notes"`
	Tags    []string `json:"tags" yaml:"tags"`
}

// toTimeline validates doc and converts it, sorting marks by time.
func (doc *document) toTimeline(source string, loc *time.Location) (*model.Timeline, error) {
	if doc.Name == nil {
		return nil, &model.ParseError{Source: source, Reason: "missing field \"name\""}
	}

	tl := &model.Timeline{Name: *doc.Name, Marks: make([]model.Mark, 0, len(doc.Marks))}
	seen := make(map[string]int, len(doc.Marks))
	for i, rec := range doc.Marks {
		switch {
		case rec.ID == nil || strings.TrimSpace(*rec.ID) == "":
			return nil, &model.ParseError{Source: source, Reason: fmt.Sprintf("mark %d: missing field \"id\"", i)}
		case rec.Time == nil:
			return nil, &model.ParseError{Source: source, Reason: fmt.Sprintf("mark %d: missing field \"time\"", i)}
		case rec.Summary == nil:
			return nil, &model.ParseError{Source: source, Reason: fmt.Sprintf("mark %d: missing field \"summary\"", i)}
		}

		if prev, dup := seen[*rec.ID]; dup {
			return nil, &model.ParseError{Source: source, Reason: fmt.Sprintf("mark %d: duplicate id %q (first at mark %d)", i, *rec.ID, prev)}
		}
		seen[*rec.ID] = i

		at, err := util.ParseMarkTime(*rec.Time, loc)
		if err != nil {
			return nil, &model.ParseError{Source: source, Reason: fmt.Sprintf("mark %d: invalid time %q", i, *rec.Time), Err: err}
		}

		m := model.Mark{
			ID:    *rec.ID,
			Time:  at,
			Notes: rec.Notes,
			Tags:  model.NormalizeTags(rec.Tags),
		}
		if *rec.Summary == model.BoundarySummary {
			m.Kind = model.KindBoundary
		} else {
			m.Kind = model.KindTask
			m.Summary = *rec.Summary
		}
		tl.Marks = append(tl.Marks, m)
	}

	tl.Sort()
	return tl, nil
}

// fromTimeline builds the output document in canonical time format. A task
// stored under the boundary summary would load back as a boundary, so it is
// refused.
func fromTimeline(tl *model.Timeline, loc *time.Location) (outDocument, error) {
	doc := outDocument{Name: tl.Name, Marks: make([]outMark, 0, len(tl.Marks))}
	for _, m := range tl.Marks {
		if !m.IsBoundary() && m.Summary == model.BoundarySummary {
			return outDocument{}, &model.ValidationError{Field: "summary", Reason: fmt.Sprintf("mark %s: %q is reserved", m.ID, model.BoundarySummary)}
		}
		tags := m.Tags
		if tags == nil {
			tags = []string{}
		}
		doc.Marks = append(doc.Marks, outMark{
			ID:      m.ID,
			Time:    m.Time.In(loc).Format(model.TimeLayout),
			Summary: m.Label(),
			Notes:   m.Notes,
			Tags:    tags,
		})
	}
	return doc, nil
}
