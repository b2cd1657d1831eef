package formatter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/penwyp/go-marks/internal/core/timeline"
	"github.com/penwyp/go-marks/internal/presentation/layout"
	"github.com/penwyp/go-marks/internal/util"
)

const (
	reportWidth     = 60
	maxBucketWidth  = 40
	reportTimeStamp = "2006-01-02 15:04"
)

// SummaryReport is the input of the sum report.
type SummaryReport struct {
	Name    string
	From    time.Time
	To      time.Time
	Summary timeline.Summary
}

// NewSummaryReport totals intervals of the timeline called name.
func NewSummaryReport(name string, intervals []timeline.Interval) SummaryReport {
	report := SummaryReport{Name: name, Summary: timeline.Summarize(intervals)}
	for _, iv := range intervals {
		if report.From.IsZero() || iv.Start.Before(report.From) {
			report.From = iv.Start
		}
		if iv.End.After(report.To) {
			report.To = iv.End
		}
	}
	return report
}

// SummaryFormatter is responsible for formatting and outputting summary reports.
type SummaryFormatter struct {
	sizer *layout.Sizer
}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter(sizer *layout.Sizer) *SummaryFormatter {
	if sizer == nil {
		sizer = layout.NewSizer(0)
	}
	return &SummaryFormatter{sizer: sizer}
}

// Format writes the report as aligned text.
func (f *SummaryFormatter) Format(w io.Writer, report SummaryReport) error {
	var b strings.Builder
	rule := strings.Repeat("=", reportWidth)

	b.WriteString(rule + "\n")
	title := "Time Summary"
	if report.Name != "" {
		title += ": " + report.Name
	}
	b.WriteString(util.Colorize(title, util.ColorBold) + "\n")
	b.WriteString(rule + "\n\n")

	if report.Summary.Count == 0 {
		b.WriteString("No marks to summarize\n\n")
		b.WriteString(rule + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	from, to := report.From.Format(reportTimeStamp), report.To.Format(reportTimeStamp)
	if from == to {
		fmt.Fprintf(&b, "Range: %s\n", from)
	} else {
		fmt.Fprintf(&b, "Range: %s to %s\n", from, to)
	}
	fmt.Fprintf(&b, "Marks: %d\n", report.Summary.Count)
	fmt.Fprintf(&b, "Total: %s (%sh)\n\n", util.Colorize(util.FormatDuration(report.Summary.Total), util.ColorGreen), util.FormatHours(report.Summary.Total))

	f.writeBuckets(&b, "By Summary", report.Summary.BySummary)
	if len(report.Summary.ByTag) > 0 {
		f.writeBuckets(&b, "By Tag", report.Summary.ByTag)
	}

	b.WriteString(rule + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func (f *SummaryFormatter) writeBuckets(b *strings.Builder, heading string, buckets []timeline.Bucket) {
	b.WriteString(heading + ":\n")
	b.WriteString(strings.Repeat("-", reportWidth) + "\n")

	// name column plus "  " indent, two 12-cell columns and a count.
	nameWidth := f.sizer.FlexWidth(2 + 12 + 8 + 6)
	if nameWidth > maxBucketWidth {
		nameWidth = maxBucketWidth
	}
	widest := 0
	for _, bucket := range buckets {
		if w := util.GetDisplayWidth(util.FirstLine(bucket.Name)); w > widest {
			widest = w
		}
	}
	if widest < nameWidth {
		nameWidth = widest
	}

	for _, bucket := range buckets {
		name := util.TruncateDisplay(util.FirstLine(bucket.Name), nameWidth)
		fmt.Fprintf(b, "  %s  %s  %s  x%d\n",
			f.sizer.PadString(name, nameWidth, true),
			f.sizer.PadString(util.FormatDuration(bucket.Duration), 10, false),
			f.sizer.PadString(util.FormatHours(bucket.Duration), 6, false),
			bucket.Count)
	}
	b.WriteString("\n")
}
