package timeline

import (
	"strings"

	"github.com/penwyp/go-marks/internal/core/model"
)

// FindByIDPrefix returns the index of the first mark, in sequence order,
// whose id starts with prefix.
func FindByIDPrefix(marks []model.Mark, prefix string) (int, error) {
	if prefix == "" {
		return -1, &model.NotFoundError{Prefix: prefix}
	}
	for i := range marks {
		if strings.HasPrefix(marks[i].ID, prefix) {
			return i, nil
		}
	}
	return -1, &model.NotFoundError{Prefix: prefix}
}

// ResolveID is the strict form of FindByIDPrefix used by commands. An exact
// id always wins; otherwise a prefix shared by several marks is rejected.
func ResolveID(marks []model.Mark, prefix string) (int, error) {
	if prefix == "" {
		return -1, &model.NotFoundError{Prefix: prefix}
	}

	found := -1
	var candidates []string
	for i := range marks {
		if marks[i].ID == prefix {
			return i, nil
		}
		if strings.HasPrefix(marks[i].ID, prefix) {
			if found < 0 {
				found = i
			}
			candidates = append(candidates, marks[i].ID)
		}
	}

	switch len(candidates) {
	case 0:
		return -1, &model.NotFoundError{Prefix: prefix}
	case 1:
		return found, nil
	default:
		return -1, &model.AmbiguousIDError{Prefix: prefix, Candidates: candidates}
	}
}

// LastActiveIndex returns the index of the most recent task mark, skipping
// trailing and interleaved boundaries.
func LastActiveIndex(marks []model.Mark) (int, error) {
	for i := len(marks) - 1; i >= 0; i-- {
		if !marks[i].IsBoundary() {
			return i, nil
		}
	}
	return -1, &model.NotFoundError{What: "task mark"}
}

// resolveTarget resolves id when given, else falls back to the last task mark.
func resolveTarget(marks []model.Mark, id string) (int, error) {
	if id != "" {
		return ResolveID(marks, id)
	}
	return LastActiveIndex(marks)
}
