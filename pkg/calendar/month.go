// Package calendar handles month navigation for the day views.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

const layoutMonth = "2006-01"

// Month is identified by its first day, midnight local time.
type Month struct {
	first time.Time
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{first: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)}
}

// ParseMonth accepts "2024-03" or a full "2024-03-07" date.
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(layoutMonth, s, time.Local); err == nil {
		return MonthOf(t), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return MonthOf(t), nil
	}
	return Month{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
}

// First is the first day of the month.
func (m Month) First() time.Time {
	return m.first
}

// Next is the following month.
func (m Month) Next() Month {
	return Month{first: m.first.AddDate(0, 1, 0)}
}

// Prev is the preceding month.
func (m Month) Prev() Month {
	return Month{first: m.first.AddDate(0, -1, 0)}
}

// DaysIn is the number of days in the month.
func (m Month) DaysIn() int {
	return time.Date(m.first.Year(), m.first.Month()+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// StartDay is the weekday of the first day.
func (m Month) StartDay() time.Weekday {
	return m.first.Weekday()
}

// Days lists every day of the month in order.
func (m Month) Days() []time.Time {
	n := m.DaysIn()
	days := make([]time.Time, n)
	for i := 0; i < n; i++ {
		days[i] = m.first.AddDate(0, 0, i)
	}
	return days
}

// Contains reports whether t falls in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.first.Year() && t.Month() == m.first.Month()
}

func (m Month) String() string {
	return m.first.Format("January 2006")
}

// Key is the YYYY-MM form accepted by ParseMonth.
func (m Month) Key() string {
	return m.first.Format(layoutMonth)
}

// DefaultActive is the day index selected when m is shown: today when m
// contains today, otherwise the first day.
func DefaultActive(m Month, today time.Time) int {
	if m.Contains(today) {
		return today.Day() - 1
	}
	return 0
}
