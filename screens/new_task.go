package screens

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"crowdtrain/core"
	"crowdtrain/internal/store"
)

var taskTypes = []store.TaskType{store.TaskText, store.TaskRating, store.TaskImage}

// NewTaskScreen is the client's posting form. Every field may be left
// blank; the store fills in defaults.
type NewTaskScreen struct {
	st       *store.Store
	clientID string
	title    textinput.Model
	content  textinput.Model
	reward   textinput.Model
	typeIdx  int
	focus    int
}

const (
	fieldTitle = iota
	fieldType
	fieldContent
	fieldReward
	fieldCount
)

func NewNewTaskScreen(st *store.Store, clientID string) *NewTaskScreen {
	title := textinput.New()
	title.Placeholder = "Untitled Task"
	title.Prompt = "Title:   "
	title.Focus()
	content := textinput.New()
	content.Placeholder = "No content"
	content.Prompt = "Content: "
	reward := textinput.New()
	reward.Placeholder = "5"
	reward.Prompt = "Reward:  "
	return &NewTaskScreen{st: st, clientID: clientID, title: title, content: content, reward: reward}
}

func (s *NewTaskScreen) Title() string { return "New Task" }
func (s *NewTaskScreen) Scope() string { return "screen:new-task" }

func (s *NewTaskScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return s, s.updateFocused(msg), false
	}

	switch keyMsg.String() {
	case "esc":
		return s, nil, true
	case "ctrl+s":
		return s.submit()
	case "tab", "down", "enter":
		if keyMsg.String() == "enter" && s.focus == fieldReward {
			return s.submit()
		}
		s.setFocus((s.focus + 1) % fieldCount)
		return s, nil, false
	case "shift+tab", "up":
		s.setFocus((s.focus - 1 + fieldCount) % fieldCount)
		return s, nil, false
	}

	if s.focus == fieldType {
		switch keyMsg.String() {
		case "left", "h":
			s.typeIdx = (s.typeIdx - 1 + len(taskTypes)) % len(taskTypes)
		case "right", "l", " ", "space":
			s.typeIdx = (s.typeIdx + 1) % len(taskTypes)
		}
		return s, nil, false
	}
	return s, s.updateFocused(msg), false
}

func (s *NewTaskScreen) setFocus(idx int) {
	s.focus = idx
	s.title.Blur()
	s.content.Blur()
	s.reward.Blur()
	switch idx {
	case fieldTitle:
		s.title.Focus()
	case fieldContent:
		s.content.Focus()
	case fieldReward:
		s.reward.Focus()
	}
}

func (s *NewTaskScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case fieldTitle:
		s.title, cmd = s.title.Update(msg)
	case fieldContent:
		s.content, cmd = s.content.Update(msg)
	case fieldReward:
		s.reward, cmd = s.reward.Update(msg)
	}
	return cmd
}

// Draft builds the task draft from current form state. A reward that
// does not parse is left zero so the store default applies.
func (s *NewTaskScreen) Draft() store.TaskDraft {
	reward := 0
	if v, err := strconv.Atoi(strings.TrimSpace(s.reward.Value())); err == nil {
		reward = v
	}
	return store.TaskDraft{
		Title:   s.title.Value(),
		Type:    taskTypes[s.typeIdx],
		Content: s.content.Value(),
		Reward:  reward,
	}
}

func (s *NewTaskScreen) submit() (core.Screen, tea.Cmd, bool) {
	task, err := s.st.CreateTask(context.Background(), s.clientID, s.Draft())
	if err != nil {
		return s, core.ErrorCmd(err), false
	}
	return s, core.StateChangedCmd("Task created: " + task.Title), true
}

func (s *NewTaskScreen) View(width, height int) string {
	typeLine := "Type:    "
	for i, tt := range taskTypes {
		label := string(tt)
		if i == s.typeIdx {
			label = "[" + label + "]"
		}
		typeLine += label + " "
	}
	if s.focus == fieldType {
		typeLine += " ◀▶"
	}
	lines := []string{
		"New Task",
		"",
		s.title.View(),
		typeLine,
		s.content.View(),
		s.reward.View(),
		"",
		fmt.Sprintf("Posting as %s", s.clientID),
		"",
		"ctrl+s create · tab next field · esc cancel",
	}
	view := strings.Join(lines, "\n")
	return core.ClipHeight(core.TrimToWidth(view, max(20, width)), max(8, height))
}
