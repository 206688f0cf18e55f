// Package worksession tracks the daily clock cycle and the elapsed work
// duration it produces.
package worksession

import (
	"time"

	"staffdesk-cli/internal/timefmt"
)

// Phase is where today's clock cycle stands.
type Phase int

const (
	NotClockedIn Phase = iota
	ClockedIn
	CycleComplete
)

func (p Phase) String() string {
	switch p {
	case NotClockedIn:
		return "not clocked in"
	case ClockedIn:
		return "clocked in"
	case CycleComplete:
		return "cycle complete"
	default:
		return "unknown"
	}
}

// PhaseOf derives the cycle phase from the recorded endpoints.
func PhaseOf(timeIn, timeOut *time.Time) Phase {
	switch {
	case timeIn == nil:
		return NotClockedIn
	case timeOut == nil:
		return ClockedIn
	default:
		return CycleComplete
	}
}

// Elapsed computes the running work duration. With no clock-in the duration
// is zero. An open session measures against now; a closed one against the
// clock-out. Negative spans clamp to zero.
func Elapsed(timeIn, timeOut *time.Time, now time.Time) time.Duration {
	if timeIn == nil {
		return 0
	}
	end := now
	if timeOut != nil {
		end = *timeOut
	}
	d := end.Sub(*timeIn)
	if d < 0 {
		return 0
	}
	return d
}

// ElapsedString renders Elapsed as "{h}h {m}m {s}s".
func ElapsedString(timeIn, timeOut *time.Time, now time.Time) string {
	return timefmt.FormatClockDuration(Elapsed(timeIn, timeOut, now))
}
