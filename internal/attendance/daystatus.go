package attendance

import (
	"staffdesk-cli/internal/model"
	"staffdesk-cli/internal/timefmt"
)

// Rules are the payroll constants the calendar labels depend on. Values are
// in hours; see config.Default for the standard set.
type Rules struct {
	BreakThreshold float64 // deduct a break only past this many worked hours
	BreakDeduction float64
}

// DayStatus labels one calendar day. Leave and absence markers win over
// clock data; a rest day worked as overtime shows the worked hours, and a
// plain rest day still shows OT when any was filed against it; otherwise the
// label is worked hours net of break and overtime.
func DayStatus(rec *model.AttendanceRecord, rules Rules) string {
	if rec == nil {
		return ""
	}
	switch {
	case rec.ScheduleDetail == "Approved Leave" || rec.ActiveSchedule == "ON LEAVE":
		return "On Leave"
	case rec.ScheduleDetail == "ABSENT":
		return "Absent"
	case rec.ActiveSchedule == "REST DAY OT":
		return timefmt.FormatHours(timefmt.ParseHours(rec.WorkDuration)) + " RD OT"
	case rec.ActiveSchedule == "REST DAY":
		if ot := timefmt.ParseHours(rec.OTHours); ot > 0 {
			return timefmt.FormatHours(ot) + " RD OT"
		}
		return "Rest Day"
	case rec.TimeIn == nil:
		return "No Time In"
	case rec.TimeOut == nil:
		return "In Progress"
	}

	total := timefmt.ParseHours(rec.WorkDuration)
	ot := timefmt.ParseHours(rec.OTHours)
	rendered := total - ot
	if total > rules.BreakThreshold {
		rendered -= rules.BreakDeduction
	}
	if rendered < 0 {
		rendered = 0
	}

	label := timefmt.FormatHours(rendered)
	if ot > 0 {
		label += " + " + timefmt.FormatHours(ot) + " OT"
	}
	return label
}
