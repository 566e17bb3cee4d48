// Package period computes the calendar ranges used by attendance and
// payroll reports: Monday-Sunday weeks, calendar months and biweekly payroll
// halves (days 1-15 and 16 to end of month).
package period

import (
	"fmt"
	"time"
)

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekRange returns the Monday and Sunday of the week containing d, at
// midnight in d's location.
func WeekRange(d time.Time) (time.Time, time.Time) {
	d = Day(d)
	weekday := int(d.Weekday())
	// time.Weekday puts Sunday at 0; payroll weeks start Monday.
	if weekday == 0 {
		weekday = 7
	}
	start := d.AddDate(0, 0, -(weekday - 1))
	end := start.AddDate(0, 0, 6)
	return start, end
}

// MonthRange returns the first and last day of the month.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// BiweekRange returns the bounds of one payroll half: half 1 covers days
// 1-15, half 2 covers day 16 to the end of the month.
func BiweekRange(year int, month time.Month, half int, loc *time.Location) (time.Time, time.Time, error) {
	switch half {
	case 1:
		start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		end := time.Date(year, month, 15, 0, 0, 0, 0, loc)
		return start, end, nil
	case 2:
		start := time.Date(year, month, 16, 0, 0, 0, 0, loc)
		_, end := MonthRange(year, month, loc)
		return start, end, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("biweekly half must be 1 or 2, got %d", half)
	}
}

// BiweekLabel names one payroll half, e.g. "2026-08-Q2".
func BiweekLabel(year int, month time.Month, half int) string {
	return fmt.Sprintf("%04d-%02d-Q%d", year, int(month), half)
}

// MatchBiweek reports which payroll half an explicit [start, end] range
// corresponds to, or ok=false when the range does not align exactly to a
// biweekly boundary.
func MatchBiweek(start, end time.Time) (year int, month time.Month, half int, ok bool) {
	start, end = Day(start), Day(end)
	for _, h := range []int{1, 2} {
		s, e, err := BiweekRange(start.Year(), start.Month(), h, start.Location())
		if err != nil {
			continue
		}
		if start.Equal(s) && end.Equal(e) {
			return start.Year(), start.Month(), h, true
		}
	}
	return 0, 0, 0, false
}
