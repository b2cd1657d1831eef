package util

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/penwyp/go-marks/internal/core/model"
)

// Clock supplies the "current time" threaded into engine calls.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

// TimeProvider is a timezone aware Clock backed by the system time
type TimeProvider struct {
	location *time.Location
	mu       sync.RWMutex
}

var (
	globalTimeProvider *TimeProvider
	mu                 sync.Mutex
)

// InitializeTimeProvider initializes the global time provider with the specified timezone
func InitializeTimeProvider(timezone string) error {
	mu.Lock()
	defer mu.Unlock()

	provider := &TimeProvider{}
	if err := provider.SetTimezone(timezone); err != nil {
		return err
	}

	globalTimeProvider = provider
	return nil
}

// GetTimeProvider returns the global time provider instance
// If not initialized, it defaults to Local timezone
func GetTimeProvider() *TimeProvider {
	if globalTimeProvider == nil {
		InitializeTimeProvider("Local")
	}
	return globalTimeProvider
}

// LoadLocation resolves a timezone name, treating "" and "Local" as time.Local.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	l, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone '%s': %w\nValid examples: Local, UTC, America/New_York, Asia/Shanghai, Europe/London", timezone, err)
	}
	return l, nil
}

// SetTimezone updates the timezone for the time provider
func (tp *TimeProvider) SetTimezone(timezone string) error {
	tp.mu.Lock()
	defer tp.mu.Unlock()

	loc, err := LoadLocation(timezone)
	if err != nil {
		return err
	}
	tp.location = loc
	return nil
}

// Now returns the current time in the configured timezone, truncated to
// the second.
func (tp *TimeProvider) Now() time.Time {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return time.Now().In(tp.location).Truncate(time.Second)
}

// Location returns the configured timezone.
func (tp *TimeProvider) Location() *time.Location {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return tp.location
}

// FixedClock always reports the same instant. Used by tests.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

func (c FixedClock) Location() *time.Location { return c.T.Location() }

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the most recent weekStart on or before t.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// ParseWeekday parses an English weekday name such as "monday" or "sun".
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return d, nil
		}
	}
	return time.Monday, fmt.Errorf("invalid weekday '%s'", s)
}

// ParseMarkTime parses a persisted time string in the canonical or legacy
// layout.
func ParseMarkTime(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(model.TimeLayout, s, loc)
	if err == nil {
		return t, nil
	}
	if legacy, lerr := time.ParseInLocation(model.LegacyTimeLayout, s, loc); lerr == nil {
		return legacy, nil
	}
	return time.Time{}, err
}

// ParseTimeArg parses a user supplied time relative to now. Accepted forms:
// "-15m" or "+1h30m" offsets, "HH:MM" and "HH:MM:SS" on the current day,
// "YYYY-MM-DD HH:MM", and the canonical and legacy mark layouts.
func ParseTimeArg(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time")
	}
	loc := now.Location()

	if s[0] == '-' || s[0] == '+' {
		d, err := time.ParseDuration(s)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid time offset '%s': %w", s, err)
		}
		return now.Add(d).Truncate(time.Second), nil
	}

	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			y, m, d := now.Date()
			return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, loc), nil
		}
	}

	if t, err := time.ParseInLocation("2006-01-02 15:04", s, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, nil
	}
	if t, err := ParseMarkTime(s, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time '%s': expected HH:MM, YYYY-MM-DD HH:MM, %s or an offset like -15m", s, model.TimeLayout)
}
