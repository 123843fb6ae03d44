package timeutil

import "time"

// DateLayout is the YYYY-MM-DD layout used for all upstream date parameters.
const DateLayout = "2006-01-02"

// Tomorrow returns the day after the clock's current date, truncated to
// midnight in the clock's location.
func Tomorrow(clock Clock) time.Time {
	now := clock.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}

// FormatDate renders a time as a YYYY-MM-DD date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FirstWeekdayOfMonth returns the first occurrence of the given weekday in
// the month monthsAhead calendar months after the clock's current month.
// monthsAhead=1 means next month.
func FirstWeekdayOfMonth(clock Clock, weekday time.Weekday, monthsAhead int) time.Time {
	now := clock.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, monthsAhead, 0)

	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset)
}

// FirstWeekdays returns the first occurrence of the given weekday in each of
// the next count calendar months, in chronological order.
func FirstWeekdays(clock Clock, weekday time.Weekday, count int) []time.Time {
	days := make([]time.Time, 0, count)
	for i := 1; i <= count; i++ {
		days = append(days, FirstWeekdayOfMonth(clock, weekday, i))
	}
	return days
}
