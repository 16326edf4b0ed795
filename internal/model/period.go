package model

import (
	"fmt"
	"time"

	"github.com/moneystory/moneystory/internal/common"
)

// MonthPeriod returns the "YYYY-MM" period key for a timestamp.
// Lexicographic order of keys matches chronological order.
func MonthPeriod(t time.Time) string {
	return t.Format("2006-01")
}

// WeekPeriod returns the "YYYY-Www" ISO week period key for a timestamp.
func WeekPeriod(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// DayKey returns the "YYYY-MM-DD" calendar date key for a timestamp.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthRange returns the half-open interval [start, end) covering the
// given calendar month.
func MonthRange(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: month %d", common.ErrInvalidPeriod, month)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0), nil
}
