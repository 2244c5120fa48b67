package dates

import (
	"time"

	"github.com/dharmasatrya/flowerforecast/internal/models"
)

// ICT is Indochina Time (UTC+7), the zone of every catalog location.
var ICT = time.FixedZone("ICT", 7*60*60)

// Parse reads a YYYY-MM-DD calendar date. Impossible dates such as
// 2025-02-30 are rejected.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, &time.ParseError{
			Layout:  models.DateLayout,
			Value:   s,
			Message: ": invalid calendar date",
		}
	}
	return t, nil
}

func Format(t time.Time) string {
	return t.Format(models.DateLayout)
}

// Today returns the current calendar date in ICT at UTC midnight.
func Today(now time.Time) time.Time {
	local := now.In(ICT)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// Range returns every calendar day from start to end inclusive. It returns
// nil when end is before start.
func Range(start, end time.Time) []time.Time {
	if end.Before(start) {
		return nil
	}
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DaysBetween counts whole days from start to end.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
