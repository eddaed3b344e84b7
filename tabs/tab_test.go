package tabs

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"crowdtrain/core"
	"crowdtrain/internal/snapshot"
	"crowdtrain/internal/store"
)

func newTestModel(t *testing.T, tabs []core.Tab) core.Model {
	t.Helper()
	st := store.New(snapshot.NewMemory(), "crowdtrain.v1")
	if err := st.Load(context.Background(), "contrib-1", "You (demo contributor)"); err != nil {
		t.Fatalf("load: %v", err)
	}
	return core.NewModel(tabs, core.NewKeyRegistry(nil), core.NewCommandRegistry(nil), st, core.Identity{
		ContributorID:   "contrib-1",
		ContributorName: "You (demo contributor)",
		ClientID:        store.DemoClientID,
	})
}

func TestPaneHostScopeTracksSelectionAndFocus(t *testing.T) {
	host := NewPaneHost(
		NewStaticPane("p1", "Pane One", "pane:x:1", 'o', true, "one", 10),
		NewStaticPane("p2", "Pane Two", "pane:x:2", 't', true, "two", 10),
	)
	if got := host.Scope(); got != "pane:x:1" {
		t.Fatalf("scope mismatch: %s", got)
	}
	_, _ = host.HandlePaneKey(&core.Model{}, tea.KeyMsg{Type: tea.KeyRight})
	if got := host.Scope(); got != "pane:x:2" {
		t.Fatalf("scope should follow selection: %s", got)
	}
	_, _ = host.HandlePaneKey(&core.Model{}, tea.KeyMsg{Type: tea.KeyEnter})
	if got := host.Scope(); got != "pane:x:2" {
		t.Fatalf("scope should follow focused pane: %s", got)
	}
}

func TestPaneHostEscDefocuses(t *testing.T) {
	host := NewPaneHost(
		NewStaticPane("p1", "Pane One", "pane:x:1", 'o', true, "one", 10),
		NewStaticPane("p2", "Pane Two", "pane:x:2", 't', true, "two", 10),
	)
	_, _ = host.HandlePaneKey(&core.Model{}, tea.KeyMsg{Type: tea.KeyEnter})
	if got := host.ActivePaneTitle(); got != "Pane One" {
		t.Fatalf("expected pane one focused")
	}
	handled, _ := host.HandlePaneKey(&core.Model{}, tea.KeyMsg{Type: tea.KeyEsc})
	if !handled {
		t.Fatalf("expected esc to be handled by pane host")
	}
	if got := host.Scope(); got != "pane:x:1" {
		t.Fatalf("expected selected scope after unfocus, got %s", got)
	}
}

func TestPaneHostFocusedDoesNotCaptureArrowKeys(t *testing.T) {
	host := NewPaneHost(
		NewStaticPane("p1", "Pane One", "pane:x:1", 'o', true, "one", 10),
		NewStaticPane("p2", "Pane Two", "pane:x:2", 't', true, "two", 10),
	)
	_, _ = host.HandlePaneKey(&core.Model{}, tea.KeyMsg{Type: tea.KeyEnter})
	handled, _ := host.HandlePaneKey(&core.Model{}, tea.KeyMsg{Type: tea.KeyDown})
	if handled {
		t.Fatalf("expected down key to pass through when pane is focused")
	}
}

func TestPaneHostJumpTargetsAndFocus(t *testing.T) {
	host := NewPaneHost(
		NewStaticPane("p1", "Pane One", "pane:x:1", 'o', true, "one", 10),
		NewStaticPane("p2", "Pane Two", "pane:x:2", 't', false, "two", 10),
		NewStaticPane("p3", "Pane Three", "pane:x:3", 'h', true, "three", 10),
	)
	targets := host.JumpTargets()
	if len(targets) != 2 {
		t.Fatalf("jump target count = %d, want 2", len(targets))
	}
	handled, _ := host.JumpToTarget(&core.Model{}, "h")
	if !handled {
		t.Fatalf("expected jump target to be handled")
	}
	if got := host.ActivePaneTitle(); got != "Pane Three" {
		t.Fatalf("active pane mismatch: %s", got)
	}
}

func TestTabsImplementCoreInterfaces(t *testing.T) {
	all := []core.Tab{NewHomeTab(), NewContributeTab(), NewClientTab("02 Jan 15:04"), NewAdminTab()}
	m := newTestModel(t, all)
	for _, tab := range all {
		if tab.ID() == "" || tab.Title() == "" || tab.Scope() == "" {
			t.Fatalf("tab metadata should not be empty")
		}
		if tab.Build(&m) == nil {
			t.Fatalf("tab build should return widget")
		}
		if _, ok := tab.(core.PaneKeyHandler); !ok {
			t.Fatalf("tab should implement pane key handler")
		}
	}
}

func TestCatalogEnterOpensSelectedTask(t *testing.T) {
	tab := NewContributeTab()
	m := newTestModel(t, []core.Tab{tab})
	tab.Build(&m)

	id, ok := tab.catalog.SelectedTaskID()
	if !ok {
		t.Fatalf("expected a selected task after build")
	}
	next, cmd := tab.catalog.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next == nil || cmd == nil {
		t.Fatalf("expected open command from enter")
	}
	msg, ok := cmd().(core.OpenTaskMsg)
	if !ok || msg.TaskID != id {
		t.Fatalf("unexpected message: %#v", msg)
	}
}

func TestCatalogEmptyAffordance(t *testing.T) {
	pane := NewCatalogPane("catalog", "Task Catalog", "pane:contribute:catalog", 'c')
	pane.SetTasks(nil)
	view := pane.View(60, 14, true, false)
	if !strings.Contains(view, "No tasks available") {
		t.Fatalf("expected empty-catalog affordance, got:\n%s", view)
	}
	if _, ok := pane.SelectedTaskID(); ok {
		t.Fatalf("no task should be selected when catalog is empty")
	}
}

func TestClientTasksRenderWithCounts(t *testing.T) {
	tab := NewClientTab("02 Jan 15:04")
	m := newTestModel(t, []core.Tab{tab})
	if _, err := m.Store.CreateTask(context.Background(), store.DemoClientID, store.TaskDraft{Title: "Verify labels"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	m.RefreshData()
	got := renderClientTasks(&m, tab.dateFormat)
	if !strings.Contains(got, "Verify labels") {
		t.Fatalf("expected created task listed, got %q", got)
	}
	if !strings.Contains(got, "0 submissions") {
		t.Fatalf("expected submission count, got %q", got)
	}
}

func TestChartLabelTruncationKeepsRunesIntact(t *testing.T) {
	got := trimLabel("aàààààààààààà", 10)
	if !utf8.ValidString(got) {
		t.Fatalf("truncated label is not valid utf-8: %q", got)
	}
	if ansi.StringWidth(got) > 10 {
		t.Fatalf("truncated label wider than 10 cells: %q", got)
	}
	if short := trimLabel("short", 10); short != "short" {
		t.Fatalf("short label should pass through, got %q", short)
	}
}
