package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dailystep/dailystep/internal/constants"
)

// ErrUnparseableDeadline is returned when a deadline string matches none of the
// accepted formats.
var ErrUnparseableDeadline = errors.New("unparseable deadline")

// deadlineLayouts are the local date-time layouts accepted for deadlines, tried
// in order after RFC 3339 instants.
var deadlineLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"02-01-2006",
	"2006-01-02",
	"2006-01-02 15:04",
}

// Today returns today's date string (YYYY-MM-DD).
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// NowMinute returns the minute-of-day [0,1440) for the given wall-clock time.
func NowMinute(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// MinuteOfDay extracts the minute-of-day from an ISO-8601 date-time string such
// as "2025-12-26T14:30:00.000Z". The second return reports whether the time
// portion could be parsed; callers decide how to treat unparseable values
// instead of silently getting minute 0.
func MinuteOfDay(iso string) (int, bool) {
	_, timePart, found := strings.Cut(iso, "T")
	if !found || len(timePart) < 5 {
		return 0, false
	}
	t, err := time.Parse(constants.TimeFormat, timePart[:5])
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinute renders a minute-of-day as HH:MM.
func FormatMinute(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// ComposeISOTime combines a date string (YYYY-MM-DD) and a time string (HH:MM)
// into the ISO date-time representation the backend stores for activity times.
func ComposeISOTime(dateStr, timeStr string) (string, error) {
	if _, err := time.Parse(constants.DateFormat, dateStr); err != nil {
		return "", fmt.Errorf("invalid date format: %w", err)
	}
	if _, err := time.Parse(constants.TimeFormat, timeStr); err != nil {
		return "", fmt.Errorf("invalid time format: %w", err)
	}
	return fmt.Sprintf("%sT%s:00.000Z", dateStr, timeStr), nil
}

// ISOStartOfDay returns the backend representation of midnight for the given
// date string, used when creating a schedule for a day.
func ISOStartOfDay(dateStr string) string {
	return dateStr + "T00:00:00.000Z"
}

// NormalizeDeadline parses a deadline in any accepted format and returns the
// canonical UTC instant. Accepted formats: ISO-8601 instant, ISO-8601 local
// date-time, dd-MM-yyyy, yyyy-MM-dd, and "yyyy-MM-dd HH:mm". Date-only inputs
// resolve to start of day UTC; zone-less date-times are interpreted in the
// local zone before conversion.
func NormalizeDeadline(input string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t.UTC(), nil
	}

	for _, layout := range deadlineLayouts {
		t, err := time.ParseInLocation(layout, input, time.Local)
		if err != nil {
			continue
		}
		if layout == "02-01-2006" || layout == "2006-01-02" {
			// Date-only: start of day in UTC, not local.
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		return t.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDeadline, input)
}

// FormatDeadline renders a normalized deadline as an ISO-8601 instant string.
func FormatDeadline(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
