package datemath

import (
	"strings"
	"time"
)

// ParseDay parses a strict YYYY-MM-DD string.
func ParseDay(s string) (time.Time, bool) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsValidRange reports whether start and end both parse and start <= end.
func IsValidRange(start, end string) bool {
	s, ok := ParseDay(start)
	if !ok {
		return false
	}
	e, ok := ParseDay(end)
	if !ok {
		return false
	}
	return !s.After(e)
}

// ExpandRange returns every day from start to end, both inclusive, as
// YYYY-MM-DD strings. It returns an empty slice when either bound is
// missing or malformed, or when start is after end. At most MaxRangeDays
// days are returned.
func ExpandRange(start, end string) []string {
	days := []string{}
	if !IsValidRange(start, end) {
		return days
	}

	s, _ := ParseDay(start)
	e, _ := ParseDay(end)
	for d := s; !d.After(e) && len(days) < MaxRangeDays; d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DateFormat))
	}
	return days
}
