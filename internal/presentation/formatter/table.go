package formatter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/penwyp/go-marks/internal/presentation/layout"
	"github.com/penwyp/go-marks/internal/util"
)

const (
	tableTimeLayout = "2006-01-02 15:04"
	maxTagsWidth    = 24
	summaryColumn   = 4
)

type TableFormatter struct {
	headers []string
	sizer   *layout.Sizer
}

func NewTableFormatter(sizer *layout.Sizer) *TableFormatter {
	if sizer == nil {
		sizer = layout.NewSizer(0)
	}
	return &TableFormatter{
		headers: []string{"#", "ID", "Start", "Duration", "Summary", "Tags"},
		sizer:   sizer,
	}
}

func (f *TableFormatter) Format(w io.Writer, rows []MarkRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No marks selected.")
		return err
	}

	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = f.rowCells(r)
	}

	// The summary column takes whatever width the other columns leave.
	summaryWidth := f.sizer.FlexWidth(f.fixedWidth(cells))
	for i, r := range rows {
		label := util.TruncateDisplay(util.FirstLine(r.Mark.Label()), summaryWidth)
		if r.Mark.IsBoundary() {
			label = util.Colorize(label, util.ColorDim)
		}
		cells[i][summaryColumn] = label
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	style := table.StyleRounded
	style.Format.Footer = text.FormatDefault
	tw.SetStyle(style)

	header := make(table.Row, len(f.headers))
	for i, h := range f.headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, c := range cells {
		row := make(table.Row, len(c))
		for i, v := range c {
			row[i] = v
		}
		tw.AppendRow(row)
	}
	tw.AppendFooter(table.Row{"", "", "Total", util.FormatDuration(Total(rows)), "", ""})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})

	tw.Render()
	return nil
}

// rowCells renders every column except the summary, which depends on the
// width left over.
func (f *TableFormatter) rowCells(r MarkRow) []string {
	duration := ""
	if !r.Mark.IsBoundary() {
		duration = util.FormatDuration(r.Duration)
		if r.Open {
			duration = util.Colorize(duration, util.ColorGreen)
		}
	}
	return []string{
		strconv.Itoa(r.Index),
		r.Mark.ShortID(),
		r.Mark.Time.Format(tableTimeLayout),
		duration,
		"",
		util.TruncateDisplay(util.FormatTags(r.Mark.Tags), maxTagsWidth),
	}
}

// fixedWidth is the display width a row needs besides the summary text:
// each column contributes its widest cell plus padding and a border.
func (f *TableFormatter) fixedWidth(cells [][]string) int {
	total := 1
	for col, h := range f.headers {
		if col == summaryColumn {
			total += 3
			continue
		}
		widest := util.GetDisplayWidth(h)
		for _, c := range cells {
			if w := text.RuneWidthWithoutEscSequences(c[col]); w > widest {
				widest = w
			}
		}
		total += widest + 3
	}
	return total
}
