package crew

import (
	"fmt"
	"time"

	"travel-orchestrator/pkg/datemath"
)

// buildTimeContext creates a temporal context string for LLM
func buildTimeContext(parser *datemath.Parser, now time.Time) string {
	tc := parser.Context(now)

	return fmt.Sprintf(
		TimeContextTemplate,
		tc.TimezoneLabel,
		tc.Today.Format(datemath.DateFormat),
		tc.Today.Weekday().String(),
		tc.Tomorrow.Format(datemath.DateFormat),
		tc.WeekStart.Format(datemath.DateFormat),
		tc.WeekEnd.Format(datemath.DateFormat),
		tc.NextSaturday.Format(datemath.DateFormat),
		tc.NextSunday.Format(datemath.DateFormat),
	)
}
