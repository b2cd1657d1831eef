package formatter

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/penwyp/go-marks/internal/core/model"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(w io.Writer, rows []MarkRow) error {
	cw := csv.NewWriter(w)

	headers := []string{
		"Index", "ID", "Start", "End", "Duration (s)", "Summary", "Notes", "Tags",
	}
	if err := cw.Write(headers); err != nil {
		return err
	}

	for _, r := range rows {
		end, seconds := "", ""
		if !r.Mark.IsBoundary() {
			end = r.End.Format(model.TimeLayout)
			seconds = strconv.FormatInt(int64(r.Duration.Seconds()), 10)
		}
		record := []string{
			strconv.Itoa(r.Index),
			r.Mark.ID,
			r.Mark.Time.Format(model.TimeLayout),
			end,
			seconds,
			r.Mark.Label(),
			r.Mark.Notes,
			strings.Join(r.Mark.Tags, ";"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
