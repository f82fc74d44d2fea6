package utils

import (
	"strings"
	"time"
)

const (
	layoutDate   = "2006-01-02"
	layoutTimeHM = "15:04"
)

// ParseDate parses YYYY-MM-DD in the local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ParseTimeHM parses HH:MM.
func ParseTimeHM(s string) (time.Time, error) {
	return time.Parse(layoutTimeHM, strings.TrimSpace(s))
}

// FormatDate formats t as YYYY-MM-DD in the local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatTimeHM formats t as HH:MM.
func FormatTimeHM(t time.Time) string {
	return t.Format(layoutTimeHM)
}

// SameLocalDay compares two instants by calendar date in the local timezone.
func SameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.In(time.Local).Date()
	by, bm, bd := b.In(time.Local).Date()
	return ay == by && am == bm && ad == bd
}

// DisplayTime renders HH:MM as a 12-hour clock label, e.g. "06:45 PM".
// Invalid input is returned unchanged.
func DisplayTime(hm string) string {
	t, err := ParseTimeHM(hm)
	if err != nil {
		return hm
	}
	return t.Format("03:04 PM")
}

// DisplayDate renders YYYY-MM-DD as e.g. "Mon, 02 Sep 2026".
// Invalid input is returned unchanged.
func DisplayDate(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("Mon, 02 Jan 2006")
}
