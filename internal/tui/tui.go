package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"topicboard/internal/store"
)

// Run starts the interactive editor over the given catalog and blocks
// until the user quits. The catalog is owned by the app model for the
// duration: all mutations happen inside the bubbletea event loop.
func Run(catalog *store.Catalog) error {
	m := newAppModel(catalog)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
