package tui

import (
	"fmt"
	"strings"

	"staffdesk-cli/internal/attendance"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) viewTimesheetMenu() string {
	var b strings.Builder
	b.WriteString(styleHeading().Render("Timesheet"))
	b.WriteString("\n\n")
	for i, entry := range timesheetMenu {
		cursor := "  "
		line := entry.label
		if i == m.menuCursor {
			cursor = "> "
			line = lipgloss.NewStyle().Bold(true).Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m appModel) dayRules() attendance.Rules {
	return attendance.Rules{
		BreakThreshold: m.cfg.BreakThresholdHrs,
		BreakDeduction: m.cfg.BreakDeductionHrs,
	}
}

const calCellWidth = 13

func (m appModel) viewCalendar() string {
	grid := attendance.BuildMonthGrid(m.calYear, m.calMonth, m.store.State.Attendance)
	rules := m.dayRules()
	today := m.now.Format("2006-01-02")

	var b strings.Builder
	b.WriteString(styleHeading().Render(fmt.Sprintf("%s %d", m.calMonth, m.calYear)))
	b.WriteString("\n\n")

	var head []string
	for _, d := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		head = append(head, styleMuted().Width(calCellWidth).Render(d))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, head...))
	b.WriteString("\n")

	cells := make([]string, 0, grid.LeadingBlanks+len(grid.Days))
	for i := 0; i < grid.LeadingBlanks; i++ {
		cells = append(cells, renderCalendarCell("", "", false))
	}
	for _, day := range grid.Days {
		cells = append(cells, renderCalendarCell(
			fmt.Sprintf("%d", day.Day),
			attendance.DayStatus(day.Record, rules),
			day.Date == today,
		))
	}

	for start := 0; start < len(cells); start += 7 {
		end := start + 7
		if end > len(cells) {
			end = len(cells)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells[start:end]...))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCalendarCell(day, status string, isToday bool) string {
	st := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorCardBorder).
		Width(calCellWidth - 2).
		Height(2)
	if day == "" {
		return st.BorderForeground(lipgloss.NoColor{}).Render("")
	}

	num := lipgloss.NewStyle().Bold(true).Render(day)
	if isToday {
		num = lipgloss.NewStyle().Bold(true).
			Foreground(colorAccentFg).Background(colorTodayBg).
			Padding(0, 1).Render(day)
		st = st.BorderForeground(colorSelectedBorder)
	}
	return st.Render(num + "\n" + styleMuted().Render(truncateLine(status, calCellWidth-2)))
}

func (m appModel) viewHistory(hs *historyState, title string) string {
	res := attendance.Apply(m.store.State.Attendance, hs.q)
	rules := m.dayRules()

	var b strings.Builder
	b.WriteString(styleHeading().Render(title))
	b.WriteString("\n")

	filter := fmt.Sprintf("from %s  to %s  status %s",
		orDash(hs.q.StartDate), orDash(hs.q.EndDate), hs.q.Status)
	sort := fmt.Sprintf("sort %s %s", hs.q.SortKey, hs.q.SortDir)
	b.WriteString(styleMuted().Render(filter + "   " + sort))
	b.WriteString("\n\n")

	header := fmt.Sprintf("  %-12s %-10s %-16s %-10s %-10s %-10s %-10s %-10s",
		"DATE", "DAY", "SCHEDULE", "TIME IN", "TIME OUT", "DURATION", "OT", "OT STATUS")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(truncateLine(header, m.width)))
	b.WriteString("\n")

	if len(res.Records) == 0 {
		b.WriteString(styleMuted().Render("No records match the current filter."))
	}
	for i, r := range res.Records {
		cursor := "  "
		timeIn, timeOut := "-", "-"
		if r.TimeIn != nil {
			timeIn = *r.TimeIn
		}
		if r.TimeOut != nil {
			timeOut = *r.TimeOut
		}
		ot := r.OTHours
		if ot == "" {
			ot = "-"
		}

		line := fmt.Sprintf("%s%-12s %-10s %-16s %-10s %-10s %-10s %-10s ",
			cursor, r.Date, day3(r.DayOfWeek), r.ActiveSchedule, timeIn, timeOut, r.WorkDuration, ot)
		line = truncateLine(line, m.width-12) + otStatusStyle(r.OTStatus).Render(string(r.OTStatus))
		if i == hs.cursor {
			line = lipgloss.NewStyle().Bold(true).Render("> " + line[2:])
		}
		b.WriteString(line)
		b.WriteString("\n")

		if i == hs.cursor {
			b.WriteString(styleMuted().Render("    " + attendance.DayStatus(&res.Records[i], rules)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	pager := fmt.Sprintf("page %d of %d · %d records", res.Page, max(res.PageCount, 1), res.Total)
	prev, next := "← prev", "next →"
	if res.Page <= 1 {
		prev = styleMuted().Render(prev)
	}
	if res.Page >= res.PageCount {
		next = styleMuted().Render(next)
	}
	b.WriteString(prev + "  " + pager + "  " + next)
	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func day3(s string) string {
	if len(s) > 3 {
		return s[:3]
	}
	return s
}
