package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	header := m.renderHeader()
	filterBar := m.renderFilterBar()
	footer := m.renderFooter()

	var body string
	switch {
	case m.modal == modalConfirmDelete:
		name := m.modalForID
		if col, ok := m.catalog.Collection(m.selectedCategoryID); ok {
			if t, ok := col.Find(m.modalForID); ok {
				name = t.Name
			}
		}
		body = place(m.width, m.height-chromeLines, renderConfirmModal(m.width,
			m.modalTitle,
			fmt.Sprintf("Delete %q? This cannot be undone.", name),
			"Delete", "Cancel", m.confirmFocus))
	case m.modal != modalNone:
		body = place(m.width, m.height-chromeLines, renderInputModal(m.width, m.modalTitle, m.input))
	case m.view == viewCategories:
		body = m.categoriesList.View()
	default:
		body = m.topicsList.View()
	}

	parts := []string{header}
	if filterBar != "" {
		parts = append(parts, filterBar)
	} else {
		parts = append(parts, "")
	}
	parts = append(parts, body, footer)
	return strings.Join(parts, "\n")
}

func (m appModel) renderHeader() string {
	switch m.view {
	case viewTopics:
		cat, ok := m.catalog.Category(m.selectedCategoryID)
		if !ok {
			return styleHeader().Render("topicboard")
		}
		total := len(cat.Topics)
		shown := len(m.topicsList.Items())
		label := fmt.Sprintf("topicboard  %s  %d topics", cat.Name, total)
		if shown != total {
			label = fmt.Sprintf("topicboard  %s  %d/%d topics", cat.Name, shown, total)
		}
		return styleHeader().Render(label)
	default:
		return styleHeader().Render("topicboard  Categories")
	}
}

func (m appModel) renderFilterBar() string {
	if m.view != viewTopics {
		return ""
	}
	if m.filtering {
		return m.filterInput.View()
	}
	if m.filterQuery != "" {
		return styleAccent().Render("/" + m.filterQuery)
	}
	return ""
}

func (m appModel) renderFooter() string {
	var help string
	switch {
	case m.modal == modalConfirmDelete:
		help = "y: delete   n/esc: cancel"
	case m.modal != modalNone:
		help = "enter: commit   esc: cancel"
	case m.filtering:
		help = "enter: apply filter   esc: clear"
	case m.view == viewTopics:
		help = "n: new   e/enter: rename   d: delete   /: filter   esc: back   q: quit"
	default:
		help = "enter: open   q: quit"
	}
	return styleMuted().Render(help)
}

// place centers modal content when the terminal size is known.
func place(width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
