package day

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutLoose = "2006-1-2"
	layoutShort = "1/2"
)

// ParseDate turns user input into a record key relative to now. It accepts
// an empty string or "today", "yesterday", "tomorrow", 2024-3-7 and 3/7.
// The short form keeps the year of now.
func ParseDate(s string, now time.Time) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "today":
		return Key(now), nil
	case "yesterday":
		return Key(now.AddDate(0, 0, -1)), nil
	case "tomorrow":
		return Key(now.AddDate(0, 0, 1)), nil
	}

	if t, err := time.ParseInLocation(layoutLoose, s, time.Local); err == nil {
		return Key(t), nil
	}
	t, err := time.ParseInLocation(layoutShort, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected 2006-1-2, 1/2, today or yesterday", s)
	}
	t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	return Key(t), nil
}
