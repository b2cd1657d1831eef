package model

import (
	"slices"
	"sort"
	"time"
)

// Timeline is a named, time-ordered sequence of marks.
type Timeline struct {
	Name  string
	Marks []Mark
}

// NewTimeline creates an empty timeline.
func NewTimeline(name string) *Timeline {
	return &Timeline{Name: name, Marks: make([]Mark, 0)}
}

// Len returns the number of marks.
func (t *Timeline) Len() int {
	return len(t.Marks)
}

// Last returns the chronologically last mark.
func (t *Timeline) Last() (Mark, bool) {
	if len(t.Marks) == 0 {
		return Mark{}, false
	}
	return t.Marks[len(t.Marks)-1], true
}

// HasActiveTask reports whether the last mark is an open task.
func (t *Timeline) HasActiveTask() bool {
	last, ok := t.Last()
	return ok && !last.IsBoundary()
}

// Sort orders the marks ascending by time. Marks with equal times keep
// their relative order.
func (t *Timeline) Sort() {
	sort.SliceStable(t.Marks, func(i, j int) bool {
		return t.Marks[i].Time.Before(t.Marks[j].Time)
	})
}

// IsSorted reports whether the marks are in ascending time order.
func (t *Timeline) IsSorted() bool {
	return sort.SliceIsSorted(t.Marks, func(i, j int) bool {
		return t.Marks[i].Time.Before(t.Marks[j].Time)
	})
}

// Insert places m after every mark that is not later than it and returns
// the index it landed on.
func (t *Timeline) Insert(m Mark) int {
	idx := sort.Search(len(t.Marks), func(i int) bool {
		return t.Marks[i].Time.After(m.Time)
	})
	t.Marks = slices.Insert(t.Marks, idx, m)
	return idx
}

// Remove deletes the mark at index i and returns it.
func (t *Timeline) Remove(i int) Mark {
	m := t.Marks[i]
	t.Marks = slices.Delete(t.Marks, i, i+1)
	return m
}

// IndexOf returns the position of the mark with the exact id, or -1.
func (t *Timeline) IndexOf(id string) int {
	for i := range t.Marks {
		if t.Marks[i].ID == id {
			return i
		}
	}
	return -1
}

// Span returns the times of the first and last mark.
func (t *Timeline) Span() (time.Time, time.Time, bool) {
	if len(t.Marks) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return t.Marks[0].Time, t.Marks[len(t.Marks)-1].Time, true
}

// Clone returns a deep copy of the timeline.
func (t *Timeline) Clone() *Timeline {
	c := &Timeline{Name: t.Name, Marks: make([]Mark, len(t.Marks))}
	for i, m := range t.Marks {
		c.Marks[i] = m.Clone()
	}
	return c
}
