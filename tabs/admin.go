package tabs

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"crowdtrain/core"
	"crowdtrain/widgets"
)

// AdminTab aggregates the whole marketplace: per-task and per-user
// stats plus a submissions bar chart.
type AdminTab struct {
	host      PaneHost
	taskStats *StaticPane
	userStats *StaticPane
}

func NewAdminTab() *AdminTab {
	taskStats := NewStaticPane("task-stats", "Tasks", "pane:admin:task-stats", 't', true, "", 10)
	userStats := NewStaticPane("user-stats", "Users", "pane:admin:user-stats", 'u', true, "", 10)
	return &AdminTab{
		host:      NewPaneHost(taskStats, userStats),
		taskStats: taskStats,
		userStats: userStats,
	}
}

func (t *AdminTab) ID() string              { return "admin" }
func (t *AdminTab) Title() string           { return "Admin" }
func (t *AdminTab) Scope() string           { return t.host.Scope() }
func (t *AdminTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *AdminTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *AdminTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *AdminTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.host.Init()
}
func (t *AdminTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *AdminTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}

func (t *AdminTab) Build(m *core.Model) widgets.Widget {
	taskStats := m.Store.TaskStats()
	taskTable := widgets.Table{
		Headers: []string{"Task", "Type", "Reward", "Submissions"},
		Empty:   "No tasks yet",
	}
	points := make([]widgets.ChartPoint, 0, len(taskStats))
	for _, stat := range taskStats {
		taskTable.Rows = append(taskTable.Rows, []string{
			stat.Task.Title,
			string(stat.Task.Type),
			fmt.Sprintf("%d", stat.Task.Reward),
			fmt.Sprintf("%d", stat.Submissions),
		})
		points = append(points, widgets.ChartPoint{Label: trimLabel(stat.Task.Title, 10), Value: float64(stat.Submissions)})
	}
	t.taskStats.SetText(taskTable.Render(72, 12))

	userTable := widgets.Table{
		Headers: []string{"User", "Balance", "Submissions"},
		Empty:   "No users yet",
	}
	for _, stat := range m.Store.UserStats() {
		userTable.Rows = append(userTable.Rows, []string{
			stat.User.Name,
			fmt.Sprintf("%d", stat.User.Balance),
			fmt.Sprintf("%d", stat.Submissions),
		})
	}
	t.userStats.SetText(userTable.Render(60, 12))

	top := widgets.HStack{
		Widgets: []widgets.Widget{t.host.BuildPane("task-stats", m), t.host.BuildPane("user-stats", m)},
		Ratios:  []float64{0.58, 0.42},
		Gap:     1,
	}
	chart := widgets.Pane{
		Title:   "Submissions per Task",
		Content: widgets.Chart{Title: "", Data: points}.Render(70, 10),
	}
	return widgets.VStack{Widgets: []widgets.Widget{top, chart}, Ratios: []float64{0.6, 0.4}}
}

func trimLabel(s string, n int) string {
	return ansi.Truncate(s, n, "")
}
