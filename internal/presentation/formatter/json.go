package formatter

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-marks/internal/core/model"
	"github.com/penwyp/go-marks/internal/core/timeline"
	"github.com/penwyp/go-marks/internal/util"
)

type jsonMark struct {
	Index           int      `json:"index"`
	ID              string   `json:"id"`
	Time            string   `json:"time"`
	End             string   `json:"end,omitempty"`
	Summary         string   `json:"summary"`
	Notes           string   `json:"notes,omitempty"`
	Tags            []string `json:"tags"`
	DurationSeconds int64    `json:"duration_seconds"`
	Duration        string   `json:"duration"`
	Open            bool     `json:"open,omitempty"`
}

type jsonBucket struct {
	Name            string `json:"name"`
	Count           int    `json:"count"`
	DurationSeconds int64  `json:"duration_seconds"`
	Duration        string `json:"duration"`
}

type jsonSummary struct {
	Name            string       `json:"name"`
	From            string       `json:"from,omitempty"`
	To              string       `json:"to,omitempty"`
	Count           int          `json:"count"`
	DurationSeconds int64        `json:"duration_seconds"`
	Duration        string       `json:"duration"`
	BySummary       []jsonBucket `json:"by_summary"`
	ByTag           []jsonBucket `json:"by_tag"`
}

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) Format(w io.Writer, rows []MarkRow) error {
	out := make([]jsonMark, 0, len(rows))
	for _, r := range rows {
		m := jsonMark{
			Index:   r.Index,
			ID:      r.Mark.ID,
			Time:    r.Mark.Time.Format(model.TimeLayout),
			Summary: r.Mark.Label(),
			Notes:   r.Mark.Notes,
			Tags:    r.Mark.Tags,
		}
		if m.Tags == nil {
			m.Tags = []string{}
		}
		if !r.Mark.IsBoundary() {
			m.End = r.End.Format(model.TimeLayout)
			m.DurationSeconds = int64(r.Duration.Seconds())
			m.Duration = util.FormatDuration(r.Duration)
			m.Open = r.Open
		}
		out = append(out, m)
	}
	return f.write(w, out)
}

// FormatSummary renders a sum report as JSON.
func (f *JSONFormatter) FormatSummary(w io.Writer, report SummaryReport) error {
	out := jsonSummary{
		Name:            report.Name,
		Count:           report.Summary.Count,
		DurationSeconds: int64(report.Summary.Total.Seconds()),
		Duration:        util.FormatDuration(report.Summary.Total),
		BySummary:       jsonBuckets(report.Summary.BySummary),
		ByTag:           jsonBuckets(report.Summary.ByTag),
	}
	if !report.From.IsZero() {
		out.From = report.From.Format(model.TimeLayout)
		out.To = report.To.Format(model.TimeLayout)
	}
	return f.write(w, out)
}

func (f *JSONFormatter) write(w io.Writer, v interface{}) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func jsonBuckets(buckets []timeline.Bucket) []jsonBucket {
	out := make([]jsonBucket, len(buckets))
	for i, b := range buckets {
		out[i] = jsonBucket{
			Name:            b.Name,
			Count:           b.Count,
			DurationSeconds: int64(b.Duration.Seconds()),
			Duration:        util.FormatDuration(b.Duration),
		}
	}
	return out
}
