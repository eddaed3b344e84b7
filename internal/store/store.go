// Package store owns the task, submission and user collections. All
// mutation goes through its API and is followed by a persist of the full
// state to the snapshot capability; views only read.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"crowdtrain/internal/snapshot"
)

var (
	// ErrEmptyResult rejects a submission whose result is empty after
	// trimming. No state changes.
	ErrEmptyResult = errors.New("submission result is empty")
	// ErrTaskNotFound reports a submission against a task id that does
	// not exist. Tasks are never deleted, so this indicates a bug in the
	// caller rather than a normal condition.
	ErrTaskNotFound = errors.New("task not found")
)

const (
	defaultReward       = 5
	defaultTitle        = "Untitled Task"
	defaultContent      = "No content"
	defaultImageContent = "https://via.placeholder.com/300"
)

// Store holds the in-memory state and the snapshot capability it loads
// from and persists to. Single-threaded by construction: every operation
// runs to completion inside one update-loop event.
type Store struct {
	kv    snapshot.Store
	key   string
	now   func() time.Time
	newID func() string
	state State
}

// Option adjusts a Store, mainly for deterministic tests.
type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDFunc(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New builds a Store over kv. The state is empty until Load is called.
func New(kv snapshot.Store, key string, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		key:   key,
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Second) },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the snapshot. An absent snapshot is first run: the store
// seeds the demonstration state and persists it. An unreadable snapshot
// also falls back to the seeded state, but the parse failure is reported
// so the caller can surface it.
func (s *Store) Load(ctx context.Context, contributorID, contributorName string) error {
	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if !found {
		s.state = seedState(s.now(), contributorID, contributorName)
		return s.Persist(ctx)
	}
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		s.state = seedState(s.now(), contributorID, contributorName)
		if perr := s.Persist(ctx); perr != nil {
			return perr
		}
		return fmt.Errorf("snapshot unreadable, reseeded demo state: %w", err)
	}
	s.state = state
	return nil
}

// Persist serializes the full state and writes it under the snapshot key.
func (s *Store) Persist(ctx context.Context) error {
	raw, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}

// CreateTask appends a new open task, applying defaults for blank input,
// and persists. The created task is returned.
func (s *Store) CreateTask(ctx context.Context, clientID string, draft TaskDraft) (Task, error) {
	taskType := draft.Type
	switch taskType {
	case TaskText, TaskRating, TaskImage:
	default:
		taskType = TaskText
	}
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		title = defaultTitle
	}
	content := strings.TrimSpace(draft.Content)
	if content == "" {
		content = defaultContent
		if taskType == TaskImage {
			content = defaultImageContent
		}
	}
	reward := draft.Reward
	if reward <= 0 {
		reward = defaultReward
	}
	task := Task{
		ID:        s.newID(),
		Title:     title,
		Type:      taskType,
		Content:   content,
		Reward:    reward,
		CreatedBy: clientID,
		CreatedAt: s.now(),
		Status:    StatusOpen,
	}
	s.state.Tasks = append(s.state.Tasks, task)
	if err := s.Persist(ctx); err != nil {
		return Task{}, err
	}
	return task, nil
}

// RecordSubmission validates the result, appends a submission, ensures a
// user record exists for userID, credits the task's reward and persists.
// Repeat submissions to the same task credit each time; that is the
// defined behavior, not an oversight.
func (s *Store) RecordSubmission(ctx context.Context, taskID, userID, userName, result string) (int, error) {
	result = strings.TrimSpace(result)
	if result == "" {
		return 0, ErrEmptyResult
	}
	task, ok := s.TaskByID(taskID)
	if !ok {
		return 0, fmt.Errorf("record submission for %q: %w", taskID, ErrTaskNotFound)
	}
	s.state.Submissions = append(s.state.Submissions, Submission{
		ID:        s.newID(),
		TaskID:    task.ID,
		UserID:    userID,
		Result:    result,
		CreatedAt: s.now(),
	})
	idx := s.userIndex(userID)
	if idx < 0 {
		s.state.Users = append(s.state.Users, User{ID: userID, Name: userName, Balance: 0})
		idx = len(s.state.Users) - 1
	}
	s.state.Users[idx].Balance += task.Reward
	if err := s.Persist(ctx); err != nil {
		return 0, err
	}
	return task.Reward, nil
}

// FindUser returns the user with the given id.
func (s *Store) FindUser(userID string) (User, bool) {
	if idx := s.userIndex(userID); idx >= 0 {
		return s.state.Users[idx], true
	}
	return User{}, false
}

// Balance returns the credit balance for userID, zero if unknown.
func (s *Store) Balance(userID string) int {
	u, _ := s.FindUser(userID)
	return u.Balance
}

// OpenTasks returns tasks with status open, in insertion order.
func (s *Store) OpenTasks() []Task {
	out := make([]Task, 0, len(s.state.Tasks))
	for _, t := range s.state.Tasks {
		if t.Status == StatusOpen {
			out = append(out, t)
		}
	}
	return out
}

// TaskByID looks a task up by id.
func (s *Store) TaskByID(taskID string) (Task, bool) {
	for _, t := range s.state.Tasks {
		if t.ID == taskID {
			return t, true
		}
	}
	return Task{}, false
}

// TasksCreatedBy returns tasks posted by clientID, in insertion order.
func (s *Store) TasksCreatedBy(clientID string) []Task {
	var out []Task
	for _, t := range s.state.Tasks {
		if t.CreatedBy == clientID {
			out = append(out, t)
		}
	}
	return out
}

// SubmissionsBy returns submissions made by userID, newest last.
func (s *Store) SubmissionsBy(userID string) []Submission {
	var out []Submission
	for _, sub := range s.state.Submissions {
		if sub.UserID == userID {
			out = append(out, sub)
		}
	}
	return out
}

// TaskStats aggregates the per-task submission counts for the admin view.
// Recomputed on every call; datasets are demonstration-sized.
func (s *Store) TaskStats() []TaskStat {
	counts := make(map[string]int, len(s.state.Tasks))
	for _, sub := range s.state.Submissions {
		counts[sub.TaskID]++
	}
	out := make([]TaskStat, 0, len(s.state.Tasks))
	for _, t := range s.state.Tasks {
		out = append(out, TaskStat{Task: t, Submissions: counts[t.ID]})
	}
	return out
}

// UserStats aggregates per-user balances and contribution counts.
func (s *Store) UserStats() []UserStat {
	counts := make(map[string]int, len(s.state.Users))
	for _, sub := range s.state.Submissions {
		counts[sub.UserID]++
	}
	out := make([]UserStat, 0, len(s.state.Users))
	for _, u := range s.state.Users {
		out = append(out, UserStat{User: u, Submissions: counts[u.ID]})
	}
	return out
}

// Counts reports collection sizes for the header and home view.
func (s *Store) Counts() (tasks, submissions, users int) {
	return len(s.state.Tasks), len(s.state.Submissions), len(s.state.Users)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	return State{
		Tasks:       append([]Task(nil), s.state.Tasks...),
		Submissions: append([]Submission(nil), s.state.Submissions...),
		Users:       append([]User(nil), s.state.Users...),
	}
}

func (s *Store) userIndex(userID string) int {
	for i, u := range s.state.Users {
		if u.ID == userID {
			return i
		}
	}
	return -1
}
