package tabs

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"crowdtrain/core"
	"crowdtrain/widgets"
)

// HomeTab is the landing view: what the marketplace is, live totals,
// and where the keys are.
type HomeTab struct {
	host     PaneHost
	overview *StaticPane
}

func NewHomeTab() *HomeTab {
	overview := NewStaticPane("overview", "Overview", "pane:home:overview", 'o', true, "", 12)
	shortcuts := NewStaticPane("shortcuts", "Shortcuts", "pane:home:shortcuts", 's', true,
		"2        browse the task catalog\n"+
			"3        post tasks as a client\n"+
			"4        review aggregate stats\n"+
			"v        jump to a pane\n"+
			"ctrl+k   command palette\n"+
			"q        quit", 12)
	return &HomeTab{
		host:     NewPaneHost(overview, shortcuts),
		overview: overview,
	}
}

func (t *HomeTab) ID() string              { return "home" }
func (t *HomeTab) Title() string           { return "Home" }
func (t *HomeTab) Scope() string           { return t.host.Scope() }
func (t *HomeTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *HomeTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *HomeTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *HomeTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.host.Init()
}
func (t *HomeTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *HomeTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}

func (t *HomeTab) Build(m *core.Model) widgets.Widget {
	t.overview.SetText(fmt.Sprintf(
		"CrowdTrain pairs clients who need labeled data with\ncontributors who earn credits for annotating it.\n\n"+
			"Tasks posted    %d\nSubmissions     %d\nContributors    %d\nYour credits    %d",
		m.Data.Tasks, m.Data.Submissions, m.Data.Users, m.Data.Balance))
	return widgets.HStack{
		Widgets: []widgets.Widget{t.host.BuildPane("overview", m), t.host.BuildPane("shortcuts", m)},
		Ratios:  []float64{0.6, 0.4},
		Gap:     1,
	}
}
