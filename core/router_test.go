package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"crowdtrain/widgets"
)

type routerTab struct{ hits int }

func (t *routerTab) ID() string                    { return "r" }
func (t *routerTab) Title() string                 { return "Router" }
func (t *routerTab) Scope() string                 { return "tab:r" }
func (t *routerTab) Build(m *Model) widgets.Widget { return widgets.Pane{Title: "t", Content: "x"} }
func (t *routerTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		t.hits++
	}
	return nil
}

type fakeScreen struct{ hits int }

func (s *fakeScreen) Title() string        { return "Screen" }
func (s *fakeScreen) Scope() string        { return "screen:test" }
func (s *fakeScreen) View(int, int) string { return "screen" }
func (s *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		s.hits++
		if km.String() == "esc" {
			return s, nil, true
		}
	}
	return s, nil, false
}

func TestScreenGetsKeyBeforeTab(t *testing.T) {
	tab := &routerTab{}
	m := NewModel([]Tab{tab}, NewKeyRegistry(nil), NewCommandRegistry(nil), nil, Identity{})
	screen := &fakeScreen{}
	m.PushScreen(screen)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	updated := next.(Model)
	if screen.hits != 1 {
		t.Fatalf("screen should handle key first")
	}
	if tab.hits != 0 {
		t.Fatalf("tab should not receive key when screen open")
	}
	if updated.screens.Len() != 1 {
		t.Fatalf("screen should remain open")
	}
}

func TestScreenCanPopItself(t *testing.T) {
	tab := &routerTab{}
	m := NewModel([]Tab{tab}, NewKeyRegistry(nil), NewCommandRegistry(nil), nil, Identity{})
	m.PushScreen(&fakeScreen{})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := next.(Model)
	if updated.screens.Len() != 0 {
		t.Fatalf("expected screen to pop on esc")
	}
}

func TestTabSwitchByNumber(t *testing.T) {
	keys := NewKeyRegistry(DefaultKeyBindings())
	a := &routerTab{}
	b := &staticTab{id: "b", title: "B", scope: "tab:b"}
	m := NewModel([]Tab{a, b}, keys, NewCommandRegistry(nil), nil, Identity{})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	updated := next.(Model)
	if updated.ActiveTabID() != "b" {
		t.Fatalf("expected tab b active, got %s", updated.ActiveTabID())
	}
}

type staticTab struct {
	id, title, scope, content string
}

func (t *staticTab) ID() string                           { return t.id }
func (t *staticTab) Title() string                        { return t.title }
func (t *staticTab) Scope() string                        { return t.scope }
func (t *staticTab) Update(m *Model, msg tea.Msg) tea.Cmd { return nil }
func (t *staticTab) Build(m *Model) widgets.Widget {
	return widgets.Pane{Title: t.title, Content: t.content}
}

func TestViewRendersOnlyActiveTab(t *testing.T) {
	keys := NewKeyRegistry(DefaultKeyBindings())
	a := &staticTab{id: "a", title: "A", scope: "tab:a", content: "alpha pane body"}
	b := &staticTab{id: "b", title: "B", scope: "tab:b", content: "beta pane body"}
	m := NewModel([]Tab{a, b}, keys, NewCommandRegistry(nil), nil, Identity{})

	view := m.View()
	if !strings.Contains(view, "alpha pane body") {
		t.Fatalf("expected first tab content in view")
	}
	if strings.Contains(view, "beta pane body") {
		t.Fatalf("inactive tab content leaked into view")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	updated := next.(Model)
	view = updated.View()
	if !strings.Contains(view, "beta pane body") {
		t.Fatalf("expected second tab content after switch")
	}
	if strings.Contains(view, "alpha pane body") {
		t.Fatalf("previous tab content leaked into view")
	}
}

func TestSwitchTabOutOfRangeIsNoop(t *testing.T) {
	a := &staticTab{id: "a", title: "A", scope: "tab:a"}
	b := &staticTab{id: "b", title: "B", scope: "tab:b"}
	m := NewModel([]Tab{a, b}, NewKeyRegistry(nil), NewCommandRegistry(nil), nil, Identity{})

	m.SwitchTab(5)
	if m.ActiveTabID() != "a" {
		t.Fatalf("out-of-range switch changed active tab to %s", m.ActiveTabID())
	}
	m.SwitchTab(-1)
	if m.ActiveTabID() != "a" {
		t.Fatalf("negative switch changed active tab to %s", m.ActiveTabID())
	}
}
