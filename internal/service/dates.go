package service

import (
	"time"

	"github.com/vitatrack/backend/internal/apperror"
)

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD path or query value into a UTC
// midnight timestamp. Calendar days are always compared at whole-day
// granularity, so every stored and queried date goes through here.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, apperror.Validation("invalid date, expected YYYY-MM-DD")
	}
	return t, nil
}

// DayOf truncates a timestamp to its UTC calendar day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday of t's ISO week at UTC midnight.
func WeekStart(t time.Time) time.Time {
	day := DayOf(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
