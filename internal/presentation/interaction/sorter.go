package interaction

import (
	"fmt"
	"sort"
	"strings"

	"github.com/penwyp/go-marks/internal/presentation/formatter"
)

// SortField represents the field to sort listed marks by
type SortField int

const (
	SortByTime SortField = iota
	SortByDuration
	SortBySummary
)

// SortOrder represents the sort order
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

var sortFieldNames = map[string]SortField{
	"time":     SortByTime,
	"duration": SortByDuration,
	"summary":  SortBySummary,
}

// ParseSortField maps a --sort value to its field.
func ParseSortField(s string) (SortField, error) {
	field, ok := sortFieldNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return SortByTime, fmt.Errorf("invalid sort field '%s' (time, duration, summary)", s)
	}
	return field, nil
}

// RowSorter handles sorting of listed marks
type RowSorter struct {
	field SortField
	order SortOrder
}

// NewRowSorter creates a sorter keeping timeline order
func NewRowSorter() *RowSorter {
	return &RowSorter{
		field: SortByTime,
		order: SortAscending,
	}
}

// SetField changes the sort field
func (s *RowSorter) SetField(field SortField) {
	s.field = field
}

// SetOrder changes the sort order
func (s *RowSorter) SetOrder(order SortOrder) {
	s.order = order
}

// Sort sorts rows in place. Rows that compare equal keep their timeline order.
func (s *RowSorter) Sort(rows []formatter.MarkRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if s.order == SortDescending {
			a, b = b, a
		}

		switch s.field {
		case SortByDuration:
			return a.Duration < b.Duration
		case SortBySummary:
			return strings.ToLower(a.Mark.Summary) < strings.ToLower(b.Mark.Summary)
		default:
			return a.Index < b.Index
		}
	})
}
