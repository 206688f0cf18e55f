// Package overtime computes rendered overtime for attendance days and
// validates overtime submissions.
package overtime

import (
	"errors"
	"fmt"
	"math"
	"time"

	"staffdesk-cli/internal/model"
	"staffdesk-cli/internal/timefmt"
)

// ErrMissingReason and ErrNonPositiveHours block a submission before any
// state is written.
var (
	ErrMissingReason    = errors.New("overtime reason is required")
	ErrNonPositiveHours = errors.New("overtime hours must be greater than zero")
)

// Compute returns hours worked past the standard shift, rounded to two
// decimals. ok is false when either endpoint is missing; the hours are then
// zero and the day renders "N/A".
func Compute(timeIn, timeOut *time.Time, shift time.Duration) (hours float64, ok bool) {
	if timeIn == nil || timeOut == nil {
		return 0, false
	}
	span := timeOut.Sub(*timeIn)
	ot := span - shift
	if ot < 0 {
		ot = 0
	}
	return math.Round(ot.Hours()*100) / 100, true
}

// Display renders a Compute result: "2.00 hrs", or "N/A" when not computable.
func Display(hours float64, ok bool) string {
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.2f hrs", hours)
}

// FromRecord computes overtime off an attendance day's recorded clock times.
func FromRecord(rec model.AttendanceRecord, shift time.Duration) (hours float64, ok bool) {
	if rec.TimeIn == nil || rec.TimeOut == nil {
		return 0, false
	}
	in, err := timefmt.ParseDateTime(rec.Date, *rec.TimeIn)
	if err != nil {
		return 0, false
	}
	out, err := timefmt.ParseDateTime(rec.Date, *rec.TimeOut)
	if err != nil {
		return 0, false
	}
	return Compute(&in, &out, shift)
}

// DefaultType picks the overtime classification suggested for a date:
// weekend days default to rest day overtime.
func DefaultType(date time.Time) model.OTType {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return model.OTRestDay
	default:
		return model.OTRegular
	}
}

// ValidateSubmission gates an overtime filing. Both a reason and positive
// hours are required; precomputed hours do not waive the reason.
func ValidateSubmission(reason string, hours float64) error {
	if reason == "" {
		return ErrMissingReason
	}
	if hours <= 0 {
		return ErrNonPositiveHours
	}
	return nil
}
