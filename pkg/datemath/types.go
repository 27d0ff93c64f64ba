package datemath

import "time"

// DateFormat is the only accepted day format (YYYY-MM-DD).
const DateFormat = "2006-01-02"

// MaxRangeDays caps ExpandRange so a typo in a year cannot produce
// thousands of itinerary days.
const MaxRangeDays = 31

// TimeContext is a set of reference days relative to "now", used to let
// an LLM resolve relative expressions without asking the user.
type TimeContext struct {
	Today         time.Time
	Tomorrow      time.Time
	WeekStart     time.Time // Monday
	WeekEnd       time.Time // Sunday
	NextSaturday  time.Time
	NextSunday    time.Time
	TimezoneLabel string
}
