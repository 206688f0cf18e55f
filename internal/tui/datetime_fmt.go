package tui

import (
	"time"

	"staffdesk-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// formatDisplayDate renders YYYY-MM-DD dates as "Jan 2, 2006" for display.
// Unparseable input falls back to the raw string.
func formatDisplayDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}

func greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func statusStyle(s model.RequestStatus) lipgloss.Style {
	switch s {
	case model.StatusApproved:
		return lipgloss.NewStyle().Foreground(colorApproved)
	case model.StatusRejected:
		return lipgloss.NewStyle().Foreground(colorRejected)
	default:
		return lipgloss.NewStyle().Foreground(colorPending)
	}
}

func otStatusStyle(s model.OTStatus) lipgloss.Style {
	switch s {
	case model.OTEligible:
		return lipgloss.NewStyle().Foreground(colorApproved)
	case model.OTSubmitted:
		return lipgloss.NewStyle().Foreground(colorPending)
	default:
		return styleMuted()
	}
}
