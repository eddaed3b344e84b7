package tabs

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"crowdtrain/core"
	"crowdtrain/widgets"
)

// ContributeTab is the contributor workspace: the open-task catalog, a
// wallet pane, and the contributor's recent submissions.
type ContributeTab struct {
	host    PaneHost
	catalog *CatalogPane
	wallet  *StaticPane
	recent  *StaticPane
}

func NewContributeTab() *ContributeTab {
	catalog := NewCatalogPane("catalog", "Task Catalog", "pane:contribute:catalog", 'c')
	wallet := NewStaticPane("wallet", "Wallet", "pane:contribute:wallet", 'w', true, "", 8)
	recent := NewStaticPane("recent", "Recent Submissions", "pane:contribute:recent", 'r', true, "", 8)
	return &ContributeTab{
		host:    NewPaneHost(catalog, wallet, recent),
		catalog: catalog,
		wallet:  wallet,
		recent:  recent,
	}
}

func (t *ContributeTab) ID() string              { return "contribute" }
func (t *ContributeTab) Title() string           { return "Contribute" }
func (t *ContributeTab) Scope() string           { return t.host.Scope() }
func (t *ContributeTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *ContributeTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *ContributeTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *ContributeTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.host.Init()
}
func (t *ContributeTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *ContributeTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}

func (t *ContributeTab) Build(m *core.Model) widgets.Widget {
	t.catalog.SetTasks(m.Store.OpenTasks())
	t.wallet.SetText(fmt.Sprintf("Credits: %d\n\nComplete tasks from the\ncatalog to earn more.", m.Data.Balance))
	t.recent.SetText(renderRecentSubmissions(m))
	right := widgets.VStack{
		Widgets: []widgets.Widget{t.host.BuildPane("wallet", m), t.host.BuildPane("recent", m)},
		Ratios:  []float64{0.4, 0.6},
	}
	return widgets.HStack{
		Widgets: []widgets.Widget{t.host.BuildPane("catalog", m), right},
		Ratios:  []float64{0.64, 0.36},
		Gap:     1,
	}
}

func renderRecentSubmissions(m *core.Model) string {
	subs := m.Store.SubmissionsBy(m.Identity.ContributorID)
	// newest first, capped to keep the pane readable
	const limit = 5
	items := make([]string, 0, limit)
	for i := len(subs) - 1; i >= 0 && len(items) < limit; i-- {
		title := subs[i].TaskID
		if task, ok := m.Store.TaskByID(subs[i].TaskID); ok {
			title = task.Title
		}
		items = append(items, title)
	}
	return widgets.List{Items: items, Empty: "No submissions yet."}.Render(40, limit+1)
}
