package pricing

import (
	"time"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
)

const dateLayout = "2006-01-02"

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthKey formats a zero-padded "YYYY-MM" key for the given month.
func MonthKey(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// PausedDays counts the days of the customer's pause window that fall inside
// the given month, inclusive of both ends. A customer without a pause window
// contributes 0, as does a window that does not overlap the month or one
// with unparseable dates. The result never goes below 0 even when the window
// is inverted.
func PausedDays(c models.Customer, year int, month time.Month) int {
	if c.PauseStart == "" || c.PauseEnd == "" {
		return 0
	}

	start, err := time.Parse(dateLayout, c.PauseStart)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, c.PauseEnd)
	if err != nil {
		return 0
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)

	if end.Before(monthStart) || start.After(monthEnd) {
		return 0
	}

	if start.Before(monthStart) {
		start = monthStart
	}
	if end.After(monthEnd) {
		end = monthEnd
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}

// ActiveDays is the subscription multiplier for the month: days in month
// minus paused days, clamped at 0.
func ActiveDays(c models.Customer, year int, month time.Month) int {
	active := DaysInMonth(year, month) - PausedDays(c, year, month)
	if active < 0 {
		return 0
	}
	return active
}
