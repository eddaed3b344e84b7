package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

// StateChangedMsg is broadcast after any store mutation so the header
// counts and wallet refresh alongside the re-rendered tab.
type StateChangedMsg struct {
	Note string
}

// OpenTaskMsg asks the router to push the annotation screen for a task.
type OpenTaskMsg struct {
	TaskID string
}

// OpenNewTaskMsg asks the router to push the client new-task form.
type OpenNewTaskMsg struct{}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

type TabSwitchMsg struct {
	Index int
}

type JumpTargetSelectedMsg struct {
	Key string
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

func StateChangedCmd(note string) tea.Cmd {
	return func() tea.Msg { return StateChangedMsg{Note: note} }
}
