package tui

import (
	"fmt"
	"strings"

	"staffdesk-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) viewLeave() string {
	var b strings.Builder
	b.WriteString(styleHeading().Render("Leave Balances"))
	b.WriteString("\n")

	var cells []string
	for _, bal := range m.store.State.LeaveBalances {
		label := strings.ToUpper(strings.TrimSuffix(string(bal.Type), " Leave"))
		cells = append(cells, renderStatCell(label, fmt.Sprintf("%.1f", bal.Balance)))
	}
	half := len(cells) / 2
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells[:half]...))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells[half:]...))
	b.WriteString("\n\n")

	b.WriteString(styleHeading().Render("Leave Requests"))
	b.WriteString("\n")
	reqs := m.requestsOfType(model.RequestLeave)
	if len(reqs) == 0 {
		b.WriteString(styleMuted().Render("No leave requests filed."))
		return b.String()
	}
	for i, r := range reqs {
		cursor := "  "
		if i == m.requestCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-18s %s to %s  %s",
			cursor, r.LeaveType,
			formatDisplayDate(r.StartDate), formatDisplayDate(r.EndDate),
			statusStyle(r.Status).Render(string(r.Status)))
		if i == m.requestCursor {
			line = lipgloss.NewStyle().Bold(true).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
