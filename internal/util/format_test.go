package util

import (
	"testing"
	"time"
)

func TestFormatClockAndDate(t *testing.T) {
	ts := time.Date(2026, time.October, 15, 7, 4, 9, 0, time.UTC)
	if got := FormatClock(ts); got != "07:04:09" {
		t.Fatalf("FormatClock() = %q", got)
	}
	if got := FormatDate(ts); got != "Thursday, October 15, 2026" {
		t.Fatalf("FormatDate() = %q", got)
	}
}

func TestFormatKm(t *testing.T) {
	if got := FormatKm(6.344); got != "6.3 KM" {
		t.Fatalf("FormatKm(6.344) = %q", got)
	}
	if got := FormatKm(-2); got != "0.0 KM" {
		t.Fatalf("FormatKm(-2) = %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(6*time.Second + 900*time.Millisecond); got != "0:06" {
		t.Fatalf("FormatDuration() = %q", got)
	}
	if got := FormatDuration(-time.Second); got != "0:00" {
		t.Fatalf("FormatDuration(-1s) = %q", got)
	}
}
