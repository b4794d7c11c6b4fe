package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"topicboard/internal/store"
)

func newTestModel(t *testing.T) appModel {
	t.Helper()
	m := newAppModel(store.NewSeedCatalog())
	mAny, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return mAny.(appModel)
}

func press(t *testing.T, m appModel, keys ...string) appModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		mAny, _ := m.Update(msg)
		m = mAny.(appModel)
	}
	return m
}

func typeText(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	for _, r := range s {
		mAny, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = mAny.(appModel)
	}
	return m
}

func openWebdev(t *testing.T, m appModel) appModel {
	t.Helper()
	m = press(t, m, "enter") // first category is Web Development
	if m.view != viewTopics {
		t.Fatalf("expected viewTopics after enter, got %v", m.view)
	}
	if m.selectedCategoryID != "cat-webdev" {
		t.Fatalf("expected cat-webdev selected, got %q", m.selectedCategoryID)
	}
	return m
}

func visibleNames(m appModel) []string {
	var out []string
	for _, it := range m.topicsList.Items() {
		if t, ok := it.(topicItem); ok {
			out = append(out, t.topic.Name)
		}
	}
	return out
}

func TestOpenCategory_ShowsSeedTopics(t *testing.T) {
	m := openWebdev(t, newTestModel(t))
	got := visibleNames(m)
	want := []string{"HTML", "CSS", "JavaScript", "React"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestNewTopic_CommitPrependsAndSelects(t *testing.T) {
	m := openWebdev(t, newTestModel(t))

	m = press(t, m, "n")
	if m.modal != modalNewTopic {
		t.Fatalf("expected new-topic modal, got %v", m.modal)
	}
	m = typeText(t, m, "TypeScript")
	m = press(t, m, "enter")

	if m.modal != modalNone {
		t.Fatalf("expected modal closed after commit")
	}
	if got := m.input.Value(); got != "" {
		t.Fatalf("expected input buffer cleared on commit, got %q", got)
	}
	got := visibleNames(m)
	if len(got) != 5 || got[0] != "TypeScript" {
		t.Fatalf("expected TypeScript first, got %v", got)
	}
	if it, ok := m.topicsList.SelectedItem().(topicItem); !ok || it.topic.Name != "TypeScript" {
		t.Fatalf("expected new topic selected")
	}
}

func TestNewTopic_BlankNameIsIgnored(t *testing.T) {
	m := openWebdev(t, newTestModel(t))
	m = press(t, m, "n")
	m = typeText(t, m, "   ")
	m = press(t, m, "enter")

	if m.modal != modalNone {
		t.Fatalf("expected modal closed")
	}
	if got := visibleNames(m); len(got) != 4 {
		t.Fatalf("expected collection unchanged, got %v", got)
	}
}

func TestRename_CommitAppliesBufferedName(t *testing.T) {
	m := openWebdev(t, newTestModel(t))

	// Select CSS (second row) and rename it.
	m = press(t, m, "down", "e")
	if m.modal != modalRenameTopic {
		t.Fatalf("expected rename modal, got %v", m.modal)
	}
	if got := m.input.Value(); got != "CSS" {
		t.Fatalf("expected buffer initialized from topic name, got %q", got)
	}
	if m.modalForID != "top-2" {
		t.Fatalf("expected rename target top-2, got %q", m.modalForID)
	}

	m.input.SetValue("Sass")
	m = press(t, m, "enter")

	got := visibleNames(m)
	want := []string{"HTML", "Sass", "JavaScript", "React"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	col, _ := m.catalog.Collection("cat-webdev")
	if topic, ok := col.Find("top-2"); !ok || topic.Name != "Sass" {
		t.Fatalf("rename lost the id: %+v", topic)
	}
}

func TestRename_EscCancelsWithoutCommitting(t *testing.T) {
	m := openWebdev(t, newTestModel(t))
	m = press(t, m, "e")
	m = typeText(t, m, " scratch edits")
	m = press(t, m, "esc")

	if m.modal != modalNone {
		t.Fatalf("expected modal closed on esc")
	}
	if got := visibleNames(m); got[0] != "HTML" {
		t.Fatalf("cancel leaked the buffer into the store: %v", got)
	}
}

func TestDelete_ConfirmAndDecline(t *testing.T) {
	m := openWebdev(t, newTestModel(t))

	// Decline first.
	m = press(t, m, "d")
	if m.modal != modalConfirmDelete {
		t.Fatalf("expected confirm modal")
	}
	m = press(t, m, "n")
	if got := visibleNames(m); len(got) != 4 {
		t.Fatalf("decline removed a topic: %v", got)
	}

	// Then confirm via y.
	m = press(t, m, "d", "y")
	got := visibleNames(m)
	if len(got) != 3 || got[0] != "CSS" {
		t.Fatalf("expected HTML gone, got %v", got)
	}

	// And confirm via tab/enter focusing Cancel keeps the rest.
	m = press(t, m, "d", "tab", "enter")
	if got := visibleNames(m); len(got) != 3 {
		t.Fatalf("cancel button deleted a topic: %v", got)
	}
}

func TestFilter_LiveAppliesAndEscClears(t *testing.T) {
	m := openWebdev(t, newTestModel(t))

	// Add a lowercase variant so the match set is interesting.
	m = press(t, m, "n")
	m = typeText(t, m, "html5")
	m = press(t, m, "enter")

	m = press(t, m, "/")
	if !m.filtering {
		t.Fatalf("expected filter entry after /")
	}
	m = typeText(t, m, "html")

	got := visibleNames(m)
	want := []string{"html5", "HTML"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("filter(html): expected %v, got %v", want, got)
	}

	// Enter applies and leaves the query active.
	m = press(t, m, "enter")
	if m.filtering {
		t.Fatalf("expected filter entry closed")
	}
	if m.filterQuery != "html" {
		t.Fatalf("expected applied query, got %q", m.filterQuery)
	}

	// ESC clears the applied filter back to the full collection.
	m = press(t, m, "esc")
	if m.filterQuery != "" {
		t.Fatalf("expected cleared query, got %q", m.filterQuery)
	}
	if got := visibleNames(m); len(got) != 5 {
		t.Fatalf("expected full collection after clear, got %v", got)
	}
	if m.view != viewTopics {
		t.Fatalf("first esc should clear the filter, not leave the view")
	}

	// Second ESC leaves the category.
	m = press(t, m, "esc")
	if m.view != viewCategories {
		t.Fatalf("expected categories view after second esc")
	}
}
