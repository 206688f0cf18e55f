package tui

import (
	"strings"
	"time"

	"staffdesk-cli/internal/datecalc"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) viewProfile() string {
	u := m.store.State.User

	tenure := ""
	if hired, err := time.Parse("2006-01-02", u.HireDate); err == nil {
		tenure = datecalc.Tenure(hired, m.now)
	}

	label := lipgloss.NewStyle().Foreground(colorChromeMutedFg).Width(14)
	row := func(k, v string) string { return label.Render(k) + v }

	card := []string{
		lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(u.Name),
		styleMuted().Render(u.Position + " · " + u.Team),
		"",
		row("Employee ID", u.EmployeeID),
		row("Client", u.ClientName),
		row("Status", u.Status),
		row("Hired", formatDisplayDate(u.HireDate)),
		row("Tenure", tenure),
		"",
		styleHeading().Render("Contact"),
		row("Email", u.Email),
		row("Phone", u.Phone),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Padding(1, 2).
		Render(strings.Join(card, "\n"))
}
