package util

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders d at the two or three most significant units:
// "1d 1h 0m", "1h 1m", "1m 30s" or "42s". Negative durations get a
// leading minus sign.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		return "-" + FormatDuration(-d)
	}

	total := int64(d / time.Second)
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// FormatHours renders d as decimal hours, e.g. "1.50".
func FormatHours(d time.Duration) string {
	return fmt.Sprintf("%.2f", d.Hours())
}

// FormatTags renders tags as "+a +b".
func FormatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = "+" + tag
	}
	return strings.Join(parts, " ")
}

// FirstLine returns s up to the first newline.
func FirstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
