package datemath

import "time"

// Context computes the reference days around baseTime in the parser's
// timezone.
func (p *Parser) Context(baseTime time.Time) TimeContext {
	today := p.startOfDay(baseTime)

	weekday := int(today.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	weekStart := today.AddDate(0, 0, -(weekday - 1))

	// Parse never fails for these fixed phrases.
	tomorrow, _ := p.Parse("tomorrow", baseTime)
	nextSaturday, _ := p.Parse("next saturday", baseTime)
	nextSunday := nextSaturday.AddDate(0, 0, 1)

	return TimeContext{
		Today:         today,
		Tomorrow:      tomorrow,
		WeekStart:     weekStart,
		WeekEnd:       weekStart.AddDate(0, 0, 6),
		NextSaturday:  nextSaturday,
		NextSunday:    nextSunday,
		TimezoneLabel: p.location.String(),
	}
}
