package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) viewLogin() string {
	w := 48
	if m.width > 0 && m.width-8 < w {
		w = m.width - 8
	}
	if w < 30 {
		w = 30
	}

	brand := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("Resourcestaff")
	title := styleHeading().Render("Employee Self-Service")

	fieldLabel := lipgloss.NewStyle().Foreground(colorChromeMutedFg)
	focused := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)

	userLbl := fieldLabel.Render("Username")
	passLbl := fieldLabel.Render("Password")
	if m.loginFocus == 0 {
		userLbl = focused.Render("Username")
	} else {
		passLbl = focused.Render("Password")
	}

	rows := []string{
		brand,
		title,
		"",
		userLbl,
		renderInputLine(w-4, m.loginUser.View()),
		"",
		passLbl,
		renderInputLine(w-4, m.loginPass.View()),
		"",
	}
	if m.loginErr != "" {
		rows = append(rows, lipgloss.NewStyle().Foreground(colorRejected).Render(m.loginErr), "")
	}
	rows = append(rows, styleMuted().Render("tab: switch field   enter: sign in   ctrl+c: quit"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Padding(1, 2).
		Width(w).
		Render(strings.Join(rows, "\n"))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}
