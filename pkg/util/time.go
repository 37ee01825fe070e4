package util

import (
	"fmt"
	"strconv"
	"time"
)

// ParseWhen interprets the --time argument. Accepted shapes: empty (zero
// time, meaning "now"), a unix timestamp in seconds, a full local datetime,
// or a bare clock time applied to today's date.
func ParseWhen(arg string, now time.Time) (time.Time, error) {
	if arg == "" {
		return time.Time{}, nil
	}

	if seconds, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return time.Unix(seconds, 0).UTC(), nil
	}

	if t, err := time.Parse("2006-01-02T15:04:05", arg); err == nil {
		return t.UTC(), nil
	}

	if t, err := time.Parse("15:04", arg); err == nil {
		day := now.UTC()
		return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
	}

	return time.Time{}, fmt.Errorf("unrecognised time %q", arg)
}
