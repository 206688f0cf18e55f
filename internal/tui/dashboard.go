package tui

import (
	"fmt"
	"strings"

	"staffdesk-cli/internal/datecalc"
	"staffdesk-cli/internal/model"
	"staffdesk-cli/internal/timefmt"
	"staffdesk-cli/internal/worksession"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) renderHeader() string {
	sections := []string{"Dashboard", "News Feed", "Leave", "Timesheet", "Profile"}
	active := map[view]int{
		viewDashboard: 0, viewNewsFeed: 1, viewLeave: 2,
		viewTimesheet: 3, viewHistory: 3, viewCalendar: 3, viewTimesheetHistory: 3,
		viewOvertime: 3, viewScheduleChange: 3, viewTimeAdjustment: 3,
		viewProfile: 4,
	}[m.view]

	var tabs []string
	for i, s := range sections {
		label := fmt.Sprintf("%d %s", i+1, s)
		if i == active {
			tabs = append(tabs, lipgloss.NewStyle().Bold(true).
				Foreground(colorSelectedFg).Background(colorSelectedBg).
				Padding(0, 1).Render(label))
		} else {
			tabs = append(tabs, styleMuted().Padding(0, 1).Render(label))
		}
	}

	brand := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("Resourcestaff")
	return brand + "  " + strings.Join(tabs, " ")
}

func (m appModel) viewDashboard() string {
	var b strings.Builder

	b.WriteString(styleHeading().Render(fmt.Sprintf("%s, %s!", greeting(m.now), firstName(m.store.State.User.Name))))
	b.WriteString("\n")
	b.WriteString(styleMuted().Render(m.now.Format("Monday, January 2, 2006 · 03:04:05 PM")))
	b.WriteString("\n\n")

	b.WriteString(m.renderTimeLogPanel())
	b.WriteString("\n\n")
	b.WriteString(m.renderStatCards())
	b.WriteString("\n\n")

	left := m.renderRecentActivity()
	right := m.renderAnnouncements()
	half := m.width / 2
	if half < 40 {
		b.WriteString(left + "\n\n" + right)
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			normalizePane(left, half-1, 0), " ", right))
	}
	return b.String()
}

func (m appModel) renderTimeLogPanel() string {
	log := m.store.State.TimeLog
	inFace, inAmpm := timefmt.ClockParts(log.TimeIn, true)
	outFace, outAmpm := timefmt.ClockParts(log.TimeOut, true)

	var action string
	switch worksession.PhaseOf(log.TimeIn, log.TimeOut) {
	case worksession.NotClockedIn:
		action = "c: clock in"
	case worksession.ClockedIn:
		action = "c: clock out"
	default:
		action = "cycle complete"
	}

	cols := []string{
		renderStatCell("TIME IN", inFace+" "+inAmpm),
		renderStatCell("TIME OUT", outFace+" "+outAmpm),
		renderStatCell("WORK DURATION", worksession.ElapsedString(log.TimeIn, log.TimeOut, m.now)),
		renderStatCell("", action),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m appModel) renderStatCards() string {
	_, days := datecalc.NextPayday(m.now)
	payday := fmt.Sprintf("%d days", days)
	if days == 0 {
		payday = "Today!"
	}

	cols := []string{
		renderStatCell("LEAVE BALANCE", fmt.Sprintf("%.1f days", m.store.LeaveBalanceTotal())),
		renderStatCell("NEXT PAYDAY", payday),
		renderStatCell("PENDING REQUESTS", fmt.Sprintf("%d", m.store.PendingCount())),
		renderStatCell("TODAY'S SCHEDULE", currentSchedule),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func renderStatCell(label, value string) string {
	body := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render(value)
	if label != "" {
		body = styleMuted().Render(label) + "\n" + body
	} else {
		body = "\n" + styleMuted().Render(value)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Padding(0, 1).
		MarginRight(1).
		Width(20).
		Render(body)
}

func (m appModel) renderRecentActivity() string {
	var b strings.Builder
	b.WriteString(styleHeading().Render("Recent Activity"))
	b.WriteString("\n")

	recent := m.store.RecentRequests(4)
	if len(recent) == 0 {
		b.WriteString(styleMuted().Render("No requests filed yet."))
		return b.String()
	}
	for i, r := range recent {
		b.WriteString(renderRequestLine(r, i == m.activityCursor))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderRequestLine(r model.ActivityRequest, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	line := fmt.Sprintf("%s%-18s %s  %s",
		cursor, r.Type, formatDisplayDate(r.Date), statusStyle(r.Status).Render(string(r.Status)))
	if selected {
		return lipgloss.NewStyle().Bold(true).Render(line)
	}
	return line
}

func (m appModel) renderAnnouncements() string {
	var b strings.Builder
	b.WriteString(styleHeading().Render("Announcements"))
	b.WriteString("\n")
	for _, a := range m.store.State.Announcements {
		b.WriteString(fmt.Sprintf("• %s  %s\n", a.Title, styleMuted().Render(formatDisplayDate(a.Date))))
	}
	return strings.TrimRight(b.String(), "\n")
}

func firstName(full string) string {
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}
