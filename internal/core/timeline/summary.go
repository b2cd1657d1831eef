package timeline

import (
	"sort"
	"time"
)

// Bucket is the accumulated time of one summary or tag.
type Bucket struct {
	Name     string
	Count    int
	Duration time.Duration
}

// Summary aggregates intervals for the sum report.
type Summary struct {
	Total     time.Duration
	Count     int
	BySummary []Bucket
	ByTag     []Bucket
}

// Summarize totals intervals per summary and per tag. Buckets are ordered
// by duration, longest first, then by name.
func Summarize(intervals []Interval) Summary {
	bySummary := make(map[string]*Bucket)
	byTag := make(map[string]*Bucket)

	s := Summary{Count: len(intervals)}
	for _, iv := range intervals {
		s.Total += iv.Duration
		accumulate(bySummary, iv.Mark.Summary, iv.Duration)
		for _, tag := range iv.Mark.Tags {
			accumulate(byTag, tag, iv.Duration)
		}
	}

	s.BySummary = sortedBuckets(bySummary)
	s.ByTag = sortedBuckets(byTag)
	return s
}

func accumulate(buckets map[string]*Bucket, name string, d time.Duration) {
	b, ok := buckets[name]
	if !ok {
		b = &Bucket{Name: name}
		buckets[name] = b
	}
	b.Count++
	b.Duration += d
}

func sortedBuckets(buckets map[string]*Bucket) []Bucket {
	out := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Duration != out[j].Duration {
			return out[i].Duration > out[j].Duration
		}
		return out[i].Name < out[j].Name
	})
	return out
}
