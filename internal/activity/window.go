package activity

import (
	"time"

	"github.com/Kamar-Folarin/github-analyzer/internal/models"
)

// DayLayout is the fixed-width calendar day format used for bucket keys.
const DayLayout = "2006-01-02"

// ResolveWindow returns the first and last calendar day (UTC midnight) covered by
// window when looking back from now. The window ends on, and includes, the day of
// now; month and year lookbacks follow time.AddDate normalisation.
func ResolveWindow(now time.Time, window models.TimeWindow) (start, end time.Time) {
	now = now.UTC()
	end = truncateDay(now)

	var anchor time.Time
	switch window {
	case models.WindowLast3Months:
		anchor = end.AddDate(0, -3, 0)
	case models.WindowLastYear:
		anchor = end.AddDate(-1, 0, 0)
	default:
		anchor = end.AddDate(0, 0, -30)
	}

	return anchor.AddDate(0, 0, 1), end
}

// DayCount is the number of calendar days in [start, end].
func DayCount(start, end time.Time) int {
	n := 0
	for d := truncateDay(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

// Days lists every calendar day in [start, end] in ascending order.
func Days(start, end time.Time) []string {
	days := make([]string, 0, DayCount(start, end))
	for d := truncateDay(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DayLayout))
	}
	return days
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
