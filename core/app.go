package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"crowdtrain/internal/store"
	"crowdtrain/widgets"
)

// Screen is a modal pushed over the active tab. Update's third return
// reports that the screen wants to close.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Tab is one of the page-level views. Exactly one tab is visible at a
// time; Build produces its widget tree from current store state, so a
// switch or any update re-renders from scratch.
type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

// PaneKeyHandler lets a tab intercept pane-navigation keys before they
// reach the active pane.
type PaneKeyHandler interface {
	HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd)
	ActivePaneTitle() string
}

// TabInitializer is implemented by tabs that need a startup command.
type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

// Identity fixes who the demonstration contributor and client are.
type Identity struct {
	ContributorID   string
	ContributorName string
	ClientID        string
}

// AppData is the header/home summary recomputed after every mutation.
type AppData struct {
	Tasks       int
	Submissions int
	Users       int
	Balance     int
}

type Model struct {
	width     int
	height    int
	tabs      []Tab
	activeTab int
	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool
	Data      AppData
	Store     *store.Store
	Identity  Identity

	OpenCommandModal       func(m *Model, scope string) Screen
	OpenJumpPickerModal    func(m *Model, targets []JumpTarget) Screen
	OpenAnnotateModal      func(m *Model, taskID string) Screen
	OpenNewTaskModal       func(m *Model) Screen
	OpenCatalogFilterModal func(m *Model) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry, st *store.Store, identity Identity) Model {
	m := Model{
		tabs:      tabs,
		keys:      keys,
		commands:  commands,
		Store:     st,
		Identity:  identity,
		status:    "Ready",
		activeTab: 0,
		width:     100,
		height:    32,
	}
	m.RefreshData()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

// RefreshData recomputes the summary counts and wallet balance.
func (m *Model) RefreshData() {
	if m.Store == nil {
		return
	}
	tasks, subs, users := m.Store.Counts()
	m.Data = AppData{
		Tasks:       tasks,
		Submissions: subs,
		Users:       users,
		Balance:     m.Store.Balance(m.Identity.ContributorID),
	}
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m Model) ActiveTabID() string {
	if len(m.tabs) == 0 {
		return ""
	}
	return m.tabs[m.activeTab].ID()
}

func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	m.activeTab = index
}

// SwitchTabByID switches to the tab with the given id, if present.
func (m *Model) SwitchTabByID(id string) bool {
	for i, t := range m.tabs {
		if t.ID() == id {
			m.activeTab = i
			return true
		}
	}
	return false
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}
