package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"crowdtrain/core"
	"crowdtrain/internal/store"
)

type annotateState int

const (
	annotatePresenting annotateState = iota
	annotateResolved
)

// AnnotateScreen walks a contributor through one task: present the
// payload, collect a result, then show the credit earned. Submitting an
// empty result keeps the screen open with an error status.
type AnnotateScreen struct {
	st       *store.Store
	identity core.Identity
	task     store.Task
	input    textarea.Model
	state    annotateState
	earned   int
}

func NewAnnotateScreen(st *store.Store, identity core.Identity, task store.Task) *AnnotateScreen {
	input := textarea.New()
	input.Placeholder = resultPlaceholder(task.Type)
	input.SetWidth(56)
	input.SetHeight(4)
	input.Focus()
	return &AnnotateScreen{st: st, identity: identity, task: task, input: input}
}

func (s *AnnotateScreen) Title() string { return "Annotate: " + s.task.Title }
func (s *AnnotateScreen) Scope() string { return "screen:annotate" }

func (s *AnnotateScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd, false
	}

	if s.state == annotateResolved {
		switch keyMsg.String() {
		case "enter", "esc":
			return s, nil, true
		}
		return s, nil, false
	}

	switch keyMsg.String() {
	case "esc":
		return s, nil, true
	case "ctrl+k":
		return s, core.StatusCmd("Task skipped"), true
	case "ctrl+s":
		return s.submit()
	case "enter":
		// single-line answers submit on enter; free text needs ctrl+s
		if s.task.Type != store.TaskText {
			return s.submit()
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

func (s *AnnotateScreen) submit() (core.Screen, tea.Cmd, bool) {
	earned, err := s.st.RecordSubmission(context.Background(), s.task.ID, s.identity.ContributorID, s.identity.ContributorName, s.input.Value())
	if err != nil {
		return s, core.ErrorCmd(err), false
	}
	s.state = annotateResolved
	s.earned = earned
	return s, core.StateChangedCmd(fmt.Sprintf("You earned %d credits", earned)), false
}

func (s *AnnotateScreen) View(width, height int) string {
	lines := []string{s.Title(), ""}
	switch s.task.Type {
	case store.TaskImage:
		lines = append(lines, "Image: "+s.task.Content)
	default:
		lines = append(lines, s.task.Content)
	}
	lines = append(lines, "", fmt.Sprintf("Reward: %d credits", s.task.Reward), "")
	if s.state == annotateResolved {
		lines = append(lines,
			fmt.Sprintf("Submitted. You earned %d credits.", s.earned),
			"",
			"Enter or Esc to close.")
	} else {
		lines = append(lines, s.input.View(), "", submitHint(s.task.Type))
	}
	view := strings.Join(lines, "\n")
	return core.ClipHeight(core.TrimToWidth(view, max(20, width)), max(8, height))
}

func resultPlaceholder(t store.TaskType) string {
	switch t {
	case store.TaskRating:
		return "Rate 1-5"
	case store.TaskImage:
		return "What do you see?"
	default:
		return "Your annotation"
	}
}

func submitHint(t store.TaskType) string {
	if t == store.TaskText {
		return "ctrl+s submit · ctrl+k skip · esc close"
	}
	return "enter submit · ctrl+k skip · esc close"
}
