package datemath

import (
	"fmt"
	"time"
)

// HumanLayout is how due dates are shown to people.
const HumanLayout = "January 02, 2006 at 03:04 PM"

// Formatter renders normalized timestamps in one timezone.
type Formatter struct {
	location *time.Location
}

// NewFormatter creates a Formatter for the given IANA timezone, e.g. "America/New_York".
func NewFormatter(timezone string) (*Formatter, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Formatter{location: loc}, nil
}

// Location returns the formatter's timezone.
func (f *Formatter) Location() *time.Location {
	return f.location
}

// Format renders raw in HumanLayout. Unparseable input is returned unchanged.
func (f *Formatter) Format(raw string) string {
	t := Parse(raw)
	if t == nil {
		return raw
	}
	return t.In(f.location).Format(HumanLayout)
}

// Until describes the time left between now and raw, e.g. "2 days, 3 hours".
func (f *Formatter) Until(raw string, now time.Time) string {
	t := Parse(raw)
	if t == nil {
		return "unknown"
	}
	d := t.Sub(now)
	if d <= 0 {
		return "past due"
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%s, %s", plural(days, "day"), plural(hours, "hour"))
	case hours > 0:
		return fmt.Sprintf("%s, %s", plural(hours, "hour"), plural(minutes, "minute"))
	default:
		return plural(minutes, "minute")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
