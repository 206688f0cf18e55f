package tui

import (
	"fmt"
	"strings"

	"staffdesk-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) viewRequestPage(title, fileHint string) string {
	kind := map[view]model.RequestType{
		viewOvertime:       model.RequestOvertime,
		viewScheduleChange: model.RequestScheduleChange,
		viewTimeAdjustment: model.RequestTimeAdjustment,
	}[m.view]
	reqs := m.requestsOfType(kind)

	var b strings.Builder
	b.WriteString(styleHeading().Render(title))
	b.WriteString("  ")
	b.WriteString(styleMuted().Render(fileHint))
	b.WriteString("\n\n")

	if len(reqs) == 0 {
		b.WriteString(styleMuted().Render("Nothing filed yet."))
		return b.String()
	}
	for i, r := range reqs {
		cursor := "  "
		if i == m.requestCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s  %s  %s",
			cursor, formatDisplayDate(r.Date), requestSummary(r),
			statusStyle(r.Status).Render(string(r.Status)))
		if i == m.requestCursor {
			line = lipgloss.NewStyle().Bold(true).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// requestSummary is the one-line description shown in request lists, keyed
// off the request's kind.
func requestSummary(r model.ActivityRequest) string {
	switch r.Type {
	case model.RequestLeave:
		return fmt.Sprintf("%s, %s to %s", r.LeaveType, formatDisplayDate(r.StartDate), formatDisplayDate(r.EndDate))
	case model.RequestOvertime:
		return fmt.Sprintf("%s, %.2f hrs on %s", r.OTType, r.Hours, formatDisplayDate(r.OTDate))
	case model.RequestScheduleChange:
		return fmt.Sprintf("%s → %s from %s", r.CurrentSchedule, r.RequestedSchedule, formatDisplayDate(r.ScheduleChangeDate))
	case model.RequestTimeAdjustment:
		return fmt.Sprintf("%s, in %s out %s", formatDisplayDate(r.AdjustmentDate), orDash(r.CorrectTimeIn), orDash(r.CorrectTimeOut))
	default:
		return string(r.Type)
	}
}

func (m appModel) viewRequestDetails() string {
	r := m.findRequest(m.selectedRequestID)
	if r == nil {
		return styleMuted().Render("Request not found.")
	}

	label := lipgloss.NewStyle().Foreground(colorChromeMutedFg).Width(18)
	row := func(k, v string) string { return label.Render(k) + v }

	rows := []string{
		styleHeading().Render(string(r.Type)),
		"",
		row("Filed", formatDisplayDate(r.Date)),
		row("Status", statusStyle(r.Status).Render(string(r.Status))),
	}

	switch r.Type {
	case model.RequestLeave:
		rows = append(rows,
			row("Leave Type", string(r.LeaveType)),
			row("Start Date", formatDisplayDate(r.StartDate)),
			row("End Date", formatDisplayDate(r.EndDate)),
			row("Document", orDash(r.DocumentURL)),
		)
	case model.RequestOvertime:
		lunch := "no"
		if r.WithLunch {
			lunch = "yes"
		}
		rows = append(rows,
			row("OT Type", string(r.OTType)),
			row("OT Date", formatDisplayDate(r.OTDate)),
			row("Hours", fmt.Sprintf("%.2f", r.Hours)),
			row("With Lunch", lunch),
		)
	case model.RequestScheduleChange:
		rows = append(rows,
			row("Effective", formatDisplayDate(r.ScheduleChangeDate)),
			row("Current", orDash(r.CurrentSchedule)),
			row("Requested", r.RequestedSchedule),
		)
	case model.RequestTimeAdjustment:
		rows = append(rows,
			row("Date", formatDisplayDate(r.AdjustmentDate)),
			row("Correct In", orDash(r.CorrectTimeIn)),
			row("Correct Out", orDash(r.CorrectTimeOut)),
		)
	}

	if r.Reason != "" {
		rows = append(rows, row("Reason", r.Reason))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Padding(1, 2).
		Render(strings.Join(rows, "\n"))
}
