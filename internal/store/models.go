package store

import "time"

// TaskType determines how a task's content payload is interpreted.
type TaskType string

const (
	TaskText   TaskType = "text"
	TaskRating TaskType = "rating"
	TaskImage  TaskType = "image"
)

// TaskStatus is the task lifecycle. Nothing currently transitions a task
// to closed; the status exists so the catalog can filter on it.
type TaskStatus string

const (
	StatusOpen   TaskStatus = "open"
	StatusClosed TaskStatus = "closed"
)

// Task is a unit of work posted by a client. Immutable after creation
// except for Status; never deleted.
type Task struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Type      TaskType   `json:"type"`
	Content   string     `json:"content"`
	Reward    int        `json:"reward"`
	CreatedBy string     `json:"createdBy"`
	CreatedAt time.Time  `json:"createdAt"`
	Status    TaskStatus `json:"status"`
}

// Submission is a contributor's completed response to a task. Immutable;
// never deleted.
type Submission struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"taskId"`
	UserID    string    `json:"userId"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"createdAt"`
}

// User tracks a contributor and their credit balance.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance int    `json:"balance"`
}

// State is the full persisted shape: the single snapshot value.
type State struct {
	Tasks       []Task       `json:"tasks"`
	Submissions []Submission `json:"submissions"`
	Users       []User       `json:"users"`
}

// TaskDraft carries client-console form input into CreateTask. Blank
// fields fall back to defaults rather than failing.
type TaskDraft struct {
	Title   string
	Type    TaskType
	Content string
	Reward  int
}

// TaskStat is an admin aggregate row for one task.
type TaskStat struct {
	Task        Task
	Submissions int
}

// UserStat is an admin aggregate row for one user.
type UserStat struct {
	User        User
	Submissions int
}
