package model

import (
	"slices"
	"strings"
	"time"
)

// Kind distinguishes a task mark from a task boundary.
type Kind int

const (
	KindTask Kind = iota
	KindBoundary
)

func (k Kind) String() string {
	if k == KindBoundary {
		return "boundary"
	}
	return "task"
}

// Mark is one point-in-time record in a Timeline.
//
// A boundary mark means "no active task from here on". It never has a
// summary, but may carry the notes and tags given when the task was stopped.
type Mark struct {
	ID      string
	Time    time.Time
	Kind    Kind
	Summary string
	Notes   string
	Tags    []string
}

// IsBoundary reports whether the mark closes the preceding task.
func (m Mark) IsBoundary() bool {
	return m.Kind == KindBoundary
}

// Label returns the text shown for the mark in listings.
func (m Mark) Label() string {
	if m.IsBoundary() {
		return BoundarySummary
	}
	return m.Summary
}

// ShortID returns the first eight characters of the id.
func (m Mark) ShortID() string {
	if len(m.ID) <= 8 {
		return m.ID
	}
	return m.ID[:8]
}

// HasTag reports whether tag is present on the mark.
func (m Mark) HasTag(tag string) bool {
	return slices.Contains(m.Tags, tag)
}

// Clone returns a deep copy of the mark.
func (m Mark) Clone() Mark {
	c := m
	c.Tags = slices.Clone(m.Tags)
	return c
}

// NormalizeTags trims tags, drops empty ones and removes duplicates while
// keeping first-seen order.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(out, tag) {
			continue
		}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
