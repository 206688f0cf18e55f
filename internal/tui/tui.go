package tui

import (
	"staffdesk-cli/internal/config"
	"staffdesk-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func Run(s *store.Store, cfg config.Config) error {
	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(s, cfg)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
