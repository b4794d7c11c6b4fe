package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"

	"topicboard/internal/store"
)

type view int

const (
	viewCategories view = iota
	viewTopics
)

type modalKind int

const (
	modalNone modalKind = iota
	modalNewTopic
	modalRenameTopic
	modalConfirmDelete
)

type appModel struct {
	catalog *store.Catalog

	width  int
	height int

	view view

	categoriesList list.Model
	topicsList     list.Model

	selectedCategoryID string

	// filterQuery drives store.Collection.Filter; the visible topic list
	// is always the filtered view. filtering is true while the query
	// input has focus.
	filterQuery string
	filtering   bool
	filterInput textinput.Model

	modal      modalKind
	modalForID string
	modalTitle string
	input      textinput.Model

	confirmFocus confirmModalFocus
}

func newAppModel(catalog *store.Catalog) appModel {
	m := appModel{
		catalog: catalog,
		view:    viewCategories,
	}

	m.categoriesList = newList("Categories")
	m.topicsList = newList("Topics")

	m.input = textinput.New()
	m.input.Placeholder = "Name"
	m.input.CharLimit = 200
	m.input.Width = 40

	m.filterInput = textinput.New()
	m.filterInput.Placeholder = "Filter"
	m.filterInput.CharLimit = 200
	m.filterInput.Width = 40
	m.filterInput.Prompt = "/"

	m.refreshCategories()
	return m
}

func newList(title string) list.Model {
	l := list.New([]list.Item{}, newCompactItemDelegate(), 0, 0)
	l.Title = title
	// We render our own header, filter bar and footer, so keep the list
	// chrome minimal. Filtering is ours too: the bubbles fuzzy filter is
	// replaced by the store's substring filter.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	// Bubble list defaults to quitting on ESC; here ESC is "back/clear".
	l.KeyMap.Quit.SetKeys("q")
	// Emacs-style navigation aliases.
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}

func (m *appModel) refreshCategories() {
	cats := m.catalog.Categories()
	items := make([]list.Item, 0, len(cats))
	for _, c := range cats {
		items = append(items, categoryItem{category: c})
	}
	m.categoriesList.SetItems(items)
}

// refreshTopics rebuilds the visible topic list from the store's
// filtered view, keeping the selection on the same topic id when it
// survives the refresh.
func (m *appModel) refreshTopics() {
	col, ok := m.catalog.Collection(m.selectedCategoryID)
	if !ok {
		m.topicsList.SetItems([]list.Item{})
		return
	}

	keepID := ""
	if it, ok := m.topicsList.SelectedItem().(topicItem); ok {
		keepID = it.topic.ID
	}

	topics := col.Filter(m.filterQuery)
	items := make([]list.Item, 0, len(topics))
	keepIdx := -1
	for i, t := range topics {
		items = append(items, topicItem{topic: t})
		if t.ID == keepID {
			keepIdx = i
		}
	}
	m.topicsList.SetItems(items)
	if keepIdx >= 0 {
		m.topicsList.Select(keepIdx)
	} else if m.topicsList.Index() >= len(items) && len(items) > 0 {
		m.topicsList.Select(len(items) - 1)
	}
}

func (m *appModel) openInputModal(kind modalKind, forID, title, initial string) {
	m.modal = kind
	m.modalForID = forID
	m.modalTitle = title
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *appModel) closeModal() {
	m.modal = modalNone
	m.modalForID = ""
	m.modalTitle = ""
	m.input.Blur()
	m.input.SetValue("")
	m.confirmFocus = confirmFocusConfirm
}

func (m *appModel) resizeLists() {
	h := m.height - chromeLines
	if h < 1 {
		h = 1
	}
	w := m.width
	if w < 10 {
		w = 10
	}
	m.categoriesList.SetSize(w, h)
	m.topicsList.SetSize(w, h)
}

// chromeLines is header + filter bar + blank + footer.
const chromeLines = 4
