package tabs

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"crowdtrain/core"
	"crowdtrain/internal/store"
	"crowdtrain/widgets"
)

// CatalogPane lists open tasks in a navigable table. Enter on a row
// opens the annotation screen for that task.
type CatalogPane struct {
	id      string
	title   string
	scope   string
	jump    byte
	table   table.Model
	taskIDs []string
}

func NewCatalogPane(id, title, scope string, jumpKey byte) *CatalogPane {
	cols := []table.Column{
		{Title: "Title", Width: 28},
		{Title: "Type", Width: 8},
		{Title: "Reward", Width: 7},
	}
	t := table.New(table.WithColumns(cols), table.WithFocused(true), table.WithHeight(8))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.Bold(true)
	t.SetStyles(styles)
	return &CatalogPane{id: id, title: title, scope: scope, jump: jumpKey, table: t}
}

// SetTasks replaces the table rows, keeping the cursor in range.
func (p *CatalogPane) SetTasks(tasks []store.Task) {
	rows := make([]table.Row, 0, len(tasks))
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, table.Row{task.Title, string(task.Type), fmt.Sprintf("%d", task.Reward)})
		ids = append(ids, task.ID)
	}
	p.table.SetRows(rows)
	p.taskIDs = ids
	if cur := p.table.Cursor(); cur >= len(rows) && len(rows) > 0 {
		p.table.SetCursor(len(rows) - 1)
	}
}

// SelectedTaskID reports the task under the cursor.
func (p *CatalogPane) SelectedTaskID() (string, bool) {
	cur := p.table.Cursor()
	if cur < 0 || cur >= len(p.taskIDs) {
		return "", false
	}
	return p.taskIDs[cur], true
}

func (p *CatalogPane) ID() string      { return p.id }
func (p *CatalogPane) Title() string   { return p.title }
func (p *CatalogPane) Scope() string   { return p.scope }
func (p *CatalogPane) JumpKey() byte   { return p.jump }
func (p *CatalogPane) Focusable() bool { return true }
func (p *CatalogPane) Init() tea.Cmd   { return nil }

func (p *CatalogPane) Update(msg tea.Msg) (Pane, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "enter" {
		id, ok := p.SelectedTaskID()
		if !ok {
			return p, core.StatusCmd("No tasks available")
		}
		return p, func() tea.Msg { return core.OpenTaskMsg{TaskID: id} }
	}
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

func (p *CatalogPane) View(width, height int, selected, focused bool) string {
	innerW := width - 4
	if innerW < 12 {
		innerW = 12
	}
	innerH := height - 4
	if innerH < 3 {
		innerH = 3
	}
	p.table.SetWidth(innerW)
	p.table.SetHeight(innerH)
	var content string
	if len(p.taskIDs) == 0 {
		content = "No tasks available.\nCreate one from the Client view."
	} else {
		content = p.table.View()
		if focused {
			content += "\n\nenter annotate · j/k move"
		} else {
			content += "\n\nPress enter to focus pane"
		}
	}
	return widgets.Pane{Title: p.title, Height: height, Content: content, Selected: selected, Focused: focused}.Render(width, height)
}

func (p *CatalogPane) OnSelect() tea.Cmd   { return nil }
func (p *CatalogPane) OnDeselect() tea.Cmd { return nil }
func (p *CatalogPane) OnFocus() tea.Cmd {
	return core.StatusCmd("Focused pane: " + p.title)
}
func (p *CatalogPane) OnBlur() tea.Cmd { return nil }
