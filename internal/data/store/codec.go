package store

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-marks/internal/core/model"
	"gopkg.in/yaml.v3"
)

// FormatForPath picks the document format from the file extension.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return model.FormatYAML
	default:
		return model.FormatJSON
	}
}

// Decode parses a document in the given format. Times are read in loc.
func Decode(data []byte, format, source string, loc *time.Location) (*model.Timeline, error) {
	var doc document
	switch format {
	case model.FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, &model.ParseError{Source: source, Reason: "malformed YAML", Err: err}
		}
	default:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, &model.ParseError{Source: source, Reason: "empty document"}
		}
		if err := sonic.ConfigStd.Unmarshal(data, &doc); err != nil {
			return nil, &model.ParseError{Source: source, Reason: "malformed JSON", Err: err}
		}
	}
	return doc.toTimeline(source, loc)
}

// Encode serializes tl in the given format with times rendered in loc.
func Encode(tl *model.Timeline, format string, loc *time.Location) ([]byte, error) {
	doc, err := fromTimeline(tl, loc)
	if err != nil {
		return nil, err
	}
	switch format {
	case model.FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		data, err := sonic.ConfigStd.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	}
}
