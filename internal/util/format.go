package util

import (
	"fmt"
	"time"
)

// FormatClock formats t as a 24-hour hh:mm:ss clock.
func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatDate formats t as "Monday, January 2, 2006".
func FormatDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FormatKm formats a distance in kilometres with one decimal.
func FormatKm(km float64) string {
	if km < 0 {
		km = 0
	}
	return fmt.Sprintf("%.1f KM", km)
}

// FormatDuration formats a duration as m:ss.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	m := total / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
