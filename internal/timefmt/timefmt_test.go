package timefmt

import (
	"math"
	"testing"
	"time"
)

func TestParseHours(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"8h 30m", 8.5},
		{"8h", 8},
		{"30m", 0.5},
		{"1h 45m", 1.75},
		{"", 0},
		{"   ", 0},
		{"0h 0m", 0},
		{"12h 15m", 12.25},
	}
	for _, c := range cases {
		got := ParseHours(c.in)
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("ParseHours(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{8.5, "8h 30m"},
		{8, "8h"},
		{0.5, "30m"},
		{0, "0h"},
		{1.75, "1h 45m"},
		{9.999, "10h"},
	}
	for _, c := range cases {
		if got := FormatHours(c.in); got != c.want {
			t.Fatalf("FormatHours(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"8h 30m", "8h", "45m", "0h"} {
		if got := FormatHours(ParseHours(s)); got != s {
			t.Fatalf("round trip %q = %q", s, got)
		}
	}
}

func TestFormatClockDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0h 0m 0s"},
		{-5 * time.Second, "0h 0m 0s"},
		{8*time.Hour + 30*time.Minute + 12*time.Second, "8h 30m 12s"},
		{59 * time.Second, "0h 0m 59s"},
		{time.Hour, "1h 0m 0s"},
	}
	for _, c := range cases {
		if got := FormatClockDuration(c.in); got != c.want {
			t.Fatalf("FormatClockDuration(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestClockParts(t *testing.T) {
	at := time.Date(2025, 6, 2, 14, 5, 9, 0, time.Local)
	face, ampm := ClockParts(&at, true)
	if face != "02:05:09" || ampm != "PM" {
		t.Fatalf("ClockParts = %q %q", face, ampm)
	}
	face, ampm = ClockParts(nil, false)
	if face != "--:--" || ampm != "--" {
		t.Fatalf("ClockParts(nil) = %q %q", face, ampm)
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2025-06-02", "08:00")
	if err != nil {
		t.Fatalf("ParseDateTime: %v", err)
	}
	want := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseDateTime = %v, want %v", got, want)
	}
	if _, err := ParseDateTime("2025-06-02", "08:15:30"); err != nil {
		t.Fatalf("ParseDateTime with seconds: %v", err)
	}
}
