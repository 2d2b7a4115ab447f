package utils

import (
	"time"

	"main/model"
)

// DateLayout is the canonical YYYY-MM-DD form used as the equality key for
// every day comparison in the system.
const DateLayout = "2006-01-02"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// WeekStart returns the Monday of the ISO week containing t, truncated to
// midnight UTC. The argument is never modified; WeekStart(WeekStart(t))
// equals WeekStart(t).
func WeekStart(t time.Time) time.Time {
	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	return time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, time.UTC)
}

// WeekDates returns the seven dates Monday through Sunday, in order,
// starting at weekStart.
func WeekDates(weekStart time.Time) []time.Time {
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = weekStart.AddDate(0, 0, i)
	}
	return dates
}

// DayOfWeekOf maps a date to its schedule day tag. Sunday sits at index 0
// of the underlying weekday representation.
func DayOfWeekOf(t time.Time) model.DayOfWeek {
	return model.DaysByWeekday[int(t.Weekday())]
}
