package datemath_test

import (
	"testing"
	"time"

	"canvas-assistant/pkg/datemath"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *time.Time
	}{
		{name: "zulu", raw: "2025-01-01T10:00:00Z", want: ptr(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))},
		{name: "no zone assumed utc", raw: "2025-01-01T10:00:00", want: ptr(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))},
		{name: "positive offset", raw: "2025-01-01T10:00:00+05:00", want: ptr(time.Date(2025, 1, 1, 5, 0, 0, 0, time.UTC))},
		{name: "fractional zulu", raw: "2025-01-01T10:00:00.123Z", want: ptr(time.Date(2025, 1, 1, 10, 0, 0, 123000000, time.UTC))},
		{name: "date with zulu", raw: "2025-07-01Z", want: ptr(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))},
		{name: "date only", raw: "2025-07-01", want: ptr(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))},
		{name: "space separated", raw: "2025-07-01 08:30:00", want: ptr(time.Date(2025, 7, 1, 8, 30, 0, 0, time.UTC))},
		{name: "surrounding spaces", raw: "  2025-01-01T10:00:00Z ", want: ptr(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))},
		{name: "empty", raw: "", want: nil},
		{name: "garbage", raw: "not-a-date", want: nil},
		{name: "garbage with Z", raw: "hello Z", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.Parse(tt.raw)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %v, got nil", tt.want)
			}
			if !got.Equal(*tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if got.Location() != time.UTC {
				t.Errorf("expected UTC location, got %v", got.Location())
			}
		})
	}
}

func TestAfter(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	if datemath.After("2025-05-01Z", now) {
		t.Error("past date must not be after now")
	}
	if !datemath.After("2025-07-01Z", now) {
		t.Error("future date must be after now")
	}
	if datemath.After("2025-06-01T00:00:00Z", now) {
		t.Error("equal instant must not count as after")
	}
	if datemath.After("", now) {
		t.Error("empty date must not be after now")
	}
}

func TestFormatter(t *testing.T) {
	f, err := datemath.NewFormatter("UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := datemath.NewFormatter("Invalid/Timezone"); err == nil {
		t.Fatal("expected error for invalid timezone")
	}

	if got := f.Format("2025-07-01T15:04:00Z"); got != "July 01, 2025 at 03:04 PM" {
		t.Errorf("unexpected format: %q", got)
	}
	if got := f.Format("soon"); got != "soon" {
		t.Errorf("unparseable input should pass through, got %q", got)
	}

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		raw  string
		want string
	}{
		{"2025-06-03T03:00:00Z", "2 days, 3 hours"},
		{"2025-06-01T01:30:00Z", "1 hour, 30 minutes"},
		{"2025-06-01T00:05:00Z", "5 minutes"},
		{"2025-05-01T00:00:00Z", "past due"},
		{"bad", "unknown"},
	}
	for _, tt := range tests {
		if got := f.Until(tt.raw, now); got != tt.want {
			t.Errorf("Until(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func ptr(t time.Time) *time.Time { return &t }
