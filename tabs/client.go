package tabs

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"crowdtrain/core"
	"crowdtrain/widgets"
)

// ClientTab is the client console: the tasks this client has posted
// with their submission counts, plus a posting hint.
type ClientTab struct {
	host       PaneHost
	myTasks    *StaticPane
	dateFormat string
}

func NewClientTab(dateFormat string) *ClientTab {
	myTasks := NewStaticPane("my-tasks", "My Tasks", "pane:client:my-tasks", 'm', true, "", 14)
	hint := NewStaticPane("hint", "Posting", "pane:client:hint", 'p', true,
		"Press n to post a new task.\n\nBlank fields fall back to\ndefaults, so a quick draft\nis enough to get started.", 8)
	return &ClientTab{
		host:       NewPaneHost(myTasks, hint),
		myTasks:    myTasks,
		dateFormat: dateFormat,
	}
}

func (t *ClientTab) ID() string              { return "client" }
func (t *ClientTab) Title() string           { return "Client" }
func (t *ClientTab) Scope() string           { return t.host.Scope() }
func (t *ClientTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *ClientTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *ClientTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *ClientTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.host.Init()
}
func (t *ClientTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *ClientTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}

func (t *ClientTab) Build(m *core.Model) widgets.Widget {
	t.myTasks.SetText(renderClientTasks(m, t.dateFormat))
	return widgets.HStack{
		Widgets: []widgets.Widget{t.host.BuildPane("my-tasks", m), t.host.BuildPane("hint", m)},
		Ratios:  []float64{0.66, 0.34},
		Gap:     1,
	}
}

func renderClientTasks(m *core.Model, dateFormat string) string {
	tasks := m.Store.TasksCreatedBy(m.Identity.ClientID)
	if len(tasks) == 0 {
		return "No tasks posted.\nPress n to create your first task."
	}
	out := ""
	for _, task := range tasks {
		count := 0
		for _, stat := range m.Store.TaskStats() {
			if stat.Task.ID == task.ID {
				count = stat.Submissions
				break
			}
		}
		out += fmt.Sprintf("- %s (%s, reward %d, posted %s) - %d submissions\n",
			task.Title, task.Type, task.Reward, task.CreatedAt.Format(dateFormat), count)
	}
	return out
}
