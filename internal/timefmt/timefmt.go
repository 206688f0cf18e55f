package timefmt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	hoursToken   = regexp.MustCompile(`(\d+\.?\d*)\s*h`)
	minutesToken = regexp.MustCompile(`(\d+)\s*m`)
)

// ParseHours converts a free-text duration like "8h 30m" to fractional hours.
// Either token may be absent; absent tokens parse as 0. Blank input is 0.
func ParseHours(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	var hours, minutes float64
	if m := hoursToken.FindStringSubmatch(s); m != nil {
		hours, _ = strconv.ParseFloat(m[1], 64)
	}
	if m := minutesToken.FindStringSubmatch(s); m != nil {
		minutes, _ = strconv.ParseFloat(m[1], 64)
	}
	return hours + minutes/60
}

// FormatHours renders fractional hours as "8h 30m", collapsing zero parts
// ("8h", "30m"). Zero renders as "0h".
func FormatHours(h float64) string {
	full := int(math.Floor(h))
	minutes := int(math.Round((h - float64(full)) * 60))
	if minutes == 60 {
		full++
		minutes = 0
	}
	if minutes == 0 {
		return fmt.Sprintf("%dh", full)
	}
	if full == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", full, minutes)
}

// FormatClockDuration renders an elapsed span as "{h}h {m}m {s}s".
func FormatClockDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%dh %dm %ds", total/3600, (total%3600)/60, total%60)
}

// ClockParts splits a time of day into a 12-hour face and AM/PM marker.
// A nil time yields placeholder parts ("--:--" / "--").
func ClockParts(t *time.Time, withSeconds bool) (face, ampm string) {
	if t == nil {
		if withSeconds {
			return "--:--:--", "--"
		}
		return "--:--", "--"
	}
	layout := "03:04"
	if withSeconds {
		layout = "03:04:05"
	}
	return t.Format(layout), t.Format("PM")
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}

// ParseDateTime combines a YYYY-MM-DD date and an HH:MM[:SS] time of day.
func ParseDateTime(date, clock string) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if strings.Count(clock, ":") == 1 {
		clock += ":00"
	}
	return time.Parse("2006-01-02 15:04:05", date+" "+clock)
}
