package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		if m.filtering {
			return m.updateFilterEntry(msg)
		}
		return m.updateMain(msg)
	}
	return m, nil
}

func (m appModel) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc", "backspace":
		if m.view == viewTopics {
			if m.filterQuery != "" {
				// First ESC clears an applied filter, second one goes back.
				m.filterQuery = ""
				m.refreshTopics()
				return m, nil
			}
			m.view = viewCategories
			m.refreshCategories()
			return m, nil
		}

	case "enter":
		switch m.view {
		case viewCategories:
			if it, ok := m.categoriesList.SelectedItem().(categoryItem); ok {
				m.selectedCategoryID = it.category.ID
				m.view = viewTopics
				m.filterQuery = ""
				m.topicsList.Select(0)
				m.refreshTopics()
			}
			return m, nil
		case viewTopics:
			m.openRenameModal()
			return m, nil
		}

	case "n":
		if m.view == viewTopics {
			m.openInputModal(modalNewTopic, "", "New topic", "")
			return m, nil
		}

	case "e":
		if m.view == viewTopics {
			m.openRenameModal()
			return m, nil
		}

	case "d":
		if m.view == viewTopics {
			if it, ok := m.topicsList.SelectedItem().(topicItem); ok {
				m.modal = modalConfirmDelete
				m.modalForID = it.topic.ID
				m.modalTitle = "Delete topic"
				m.confirmFocus = confirmFocusConfirm
			}
			return m, nil
		}

	case "/":
		if m.view == viewTopics {
			m.filtering = true
			m.filterInput.SetValue(m.filterQuery)
			m.filterInput.CursorEnd()
			m.filterInput.Focus()
			return m, nil
		}
	}

	// Let the active list handle navigation keys.
	var cmd tea.Cmd
	switch m.view {
	case viewCategories:
		m.categoriesList, cmd = m.categoriesList.Update(msg)
	case viewTopics:
		m.topicsList, cmd = m.topicsList.Update(msg)
	}
	return m, cmd
}

func (m *appModel) openRenameModal() {
	if it, ok := m.topicsList.SelectedItem().(topicItem); ok {
		// The modal buffer is a copy of the name taken now; it is not
		// resynced from the store until commit.
		m.openInputModal(modalRenameTopic, it.topic.ID, "Rename topic", it.topic.Name)
	}
}

// updateFilterEntry handles keys while the filter input has focus. The
// query applies live: every keystroke recomputes the filtered view.
func (m appModel) updateFilterEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	case "esc", "ctrl+g":
		m.filtering = false
		m.filterInput.Blur()
		m.filterQuery = ""
		m.refreshTopics()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.filterQuery = m.filterInput.Value()
	m.refreshTopics()
	return m, cmd
}

func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal == modalConfirmDelete {
		return m.updateConfirmDelete(msg)
	}

	switch msg.String() {
	case "enter":
		m.commitInputModal()
		return m, nil
	case "esc", "ctrl+g":
		// Cancel discards the buffer; the store never sees it.
		m.closeModal()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commitInputModal applies the buffered name. Rejected inputs (blank
// name, vanished id) close the modal with the collection untouched.
func (m *appModel) commitInputModal() {
	col, ok := m.catalog.Collection(m.selectedCategoryID)
	if !ok {
		m.closeModal()
		return
	}

	switch m.modal {
	case modalNewTopic:
		res := col.Create(m.input.Value())
		if res.Changed && res.Topic != nil {
			m.closeModal()
			m.refreshTopics()
			m.selectTopic(res.Topic.ID)
			return
		}
		// Rejected (blank name): just close; nothing to refresh.
		m.closeModal()
	case modalRenameTopic:
		col.Rename(m.modalForID, m.input.Value())
		m.closeModal()
		m.refreshTopics()
	default:
		m.closeModal()
	}
}

func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	apply := func() (tea.Model, tea.Cmd) {
		if col, ok := m.catalog.Collection(m.selectedCategoryID); ok {
			col.Delete(m.modalForID)
		}
		m.closeModal()
		m.refreshTopics()
		return m, nil
	}

	switch msg.String() {
	case "y":
		return apply()
	case "n", "esc", "ctrl+g":
		m.closeModal()
		return m, nil
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return apply()
		}
		m.closeModal()
		return m, nil
	}
	return m, nil
}

func (m *appModel) selectTopic(id string) {
	for i, it := range m.topicsList.Items() {
		if t, ok := it.(topicItem); ok && t.topic.ID == id {
			m.topicsList.Select(i)
			return
		}
	}
}
