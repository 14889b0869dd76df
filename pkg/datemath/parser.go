package datemath

import (
	"strings"
	"time"
)

// StrictLayout is the last-resort pattern for upstream timestamps.
const StrictLayout = "2006-01-02T15:04:05Z"

// zonedLayouts carry an explicit offset.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04-07:00",
	"2006-01-02 15:04:05-07:00",
}

// localLayouts lack an offset and are read as UTC.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse normalizes an upstream date string to a UTC timestamp.
//
// Order of attempts:
//  1. empty input yields nil
//  2. a trailing "Z" marks UTC
//  3. general parsing, offset-less values assumed UTC
//  4. StrictLayout
//
// Anything else yields nil. Parse never fails loudly; callers drop the record
// from date dependent views instead.
func Parse(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if strings.HasSuffix(s, "Z") || strings.HasSuffix(s, "z") {
		if t, ok := parseUTCMarked(s); ok {
			return &t
		}
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return &t
		}
	}

	if t, err := time.ParseInLocation(StrictLayout, s, time.UTC); err == nil {
		return &t
	}
	return nil
}

func parseUTCMarked(s string) (time.Time, bool) {
	bare := s[:len(s)-1]
	if t, err := time.Parse(time.RFC3339Nano, bare+"Z"); err == nil {
		return t.UTC(), true
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, bare, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// After reports whether raw parses to an instant strictly after now.
func After(raw string, now time.Time) bool {
	t := Parse(raw)
	return t != nil && t.After(now)
}
