// Package bloom decides whether a calendar date or month falls inside an
// annual bloom window.
package bloom

import (
	"slices"
	"time"

	"github.com/dharmasatrya/flowerforecast/internal/models"
)

// MonthDay returns the 1-based calendar month and the day of month.
func MonthDay(date time.Time) (int, int) {
	return int(date.Month()), date.Day()
}

// IsInSeason reports whether date lies inside the season window, inclusive
// at both ends. The year of date is ignored.
func IsInSeason(date time.Time, season models.BloomSeason) bool {
	month, day := MonthDay(date)
	return isMonthDayInSeason(month, day, season)
}

func isMonthDayInSeason(month, day int, s models.BloomSeason) bool {
	if !s.Wraps() {
		if month < s.StartMonth || month > s.EndMonth {
			return false
		}
		if month == s.StartMonth && day < s.StartDay {
			return false
		}
		if month == s.EndMonth && day > s.EndDay {
			return false
		}
		return true
	}

	// [start, Dec 31] or [Jan 1, end]
	switch {
	case month > s.StartMonth:
		return true
	case month == s.StartMonth:
		return day >= s.StartDay
	case month < s.EndMonth:
		return true
	case month == s.EndMonth:
		return day <= s.EndDay
	}
	return false
}

// IsMonthInSeason is the month-granularity variant of IsInSeason; partial
// start and end months count as in season.
func IsMonthInSeason(month int, season models.BloomSeason) bool {
	if !season.Wraps() {
		return month >= season.StartMonth && month <= season.EndMonth
	}
	return month >= season.StartMonth || month <= season.EndMonth
}

func IsPeakMonth(month int, season models.BloomSeason) bool {
	return slices.Contains(season.PeakMonths, month)
}
