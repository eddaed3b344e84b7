package core

import tea "github.com/charmbracelet/bubbletea"

// JumpTarget is a pane a jump key can focus directly.
type JumpTarget struct {
	Key   string
	Label string
}

// JumpTargetProvider is implemented by tabs whose panes can be jumped to.
type JumpTargetProvider interface {
	JumpTargets() []JumpTarget
	JumpToTarget(m *Model, key string) (bool, tea.Cmd)
}

func (m *Model) activateJumpPicker() tea.Cmd {
	if m.OpenJumpPickerModal == nil || len(m.tabs) == 0 {
		return nil
	}
	provider, ok := m.tabs[m.activeTab].(JumpTargetProvider)
	if !ok {
		return StatusCmd("No jump targets on this view")
	}
	targets := provider.JumpTargets()
	if len(targets) == 0 {
		return StatusCmd("No jump targets on this view")
	}
	m.screens.Push(m.OpenJumpPickerModal(m, targets))
	return nil
}
