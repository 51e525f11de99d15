// Package timefmt converts stored minute totals to the zero-padded HH:MM
// strings the attendance views display.
package timefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrNegativeMinutes is returned when a minute total is below zero. Minute
// counters are non-negative by construction, so a negative value is always
// caller error.
var ErrNegativeMinutes = fmt.Errorf("minute count must not be negative")

// FormatMinutes renders m minutes as "HH:MM", zero-padded to two digits on
// both sides. Totals of 100 hours or more keep growing the hour field
// ("123:04") rather than wrapping.
func FormatMinutes(m int) (string, error) {
	if m < 0 {
		return "", ErrNegativeMinutes
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60), nil
}

// MustFormatMinutes is FormatMinutes for values already validated as
// non-negative, such as database columns with a CHECK constraint. Negative
// input panics.
func MustFormatMinutes(m int) string {
	s, err := FormatMinutes(m)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseClock inverts FormatMinutes: "HH:MM" back to total minutes.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock string %q: missing separator", s)
	}
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid clock string %q: %w", s, err)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid clock string %q: %w", s, err)
	}
	if hours < 0 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid clock string %q: out of range", s)
	}
	return hours*60 + minutes, nil
}
