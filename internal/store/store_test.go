package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crowdtrain/internal/snapshot"
)

const (
	testContribID   = "contrib-1"
	testContribName = "You (demo contributor)"
	testKey         = "crowdtrain.v1"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	seq := 0
	s := New(snapshot.NewMemory(), testKey,
		WithClock(func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }),
		WithIDFunc(func() string { seq++; return fmt.Sprintf("id-%03d", seq) }),
	)
	require.NoError(t, s.Load(context.Background(), testContribID, testContribName))
	return s
}

func TestLoadSeedsOnFirstRun(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	tasks, subs, users := s.Counts()
	require.Equal(t, 3, tasks)
	require.Equal(t, 0, subs)
	require.Equal(t, 1, users)

	u, ok := s.FindUser(testContribID)
	require.True(t, ok)
	require.Equal(t, 0, u.Balance)

	open := s.OpenTasks()
	require.Len(t, open, 3)
	require.Equal(t, TaskText, open[0].Type)
	require.Equal(t, TaskRating, open[1].Type)
	require.Equal(t, TaskImage, open[2].Type)
}

func TestLoadSeedIsDeterministic(t *testing.T) {
	t.Parallel()

	a := newTestStore(t)
	b := newTestStore(t)
	require.Equal(t, a.Snapshot().Tasks, b.Snapshot().Tasks)
}

func TestCreateTaskAppearsInCatalog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	task, err := s.CreateTask(ctx, DemoClientID, TaskDraft{
		Title: "Label X", Type: TaskText, Content: "hi", Reward: 5,
	})
	require.NoError(t, err)

	open := s.OpenTasks()
	require.Len(t, open, 4)
	require.Equal(t, task, open[3])
	require.Equal(t, "Label X", open[3].Title)
	require.Equal(t, 5, open[3].Reward)
	require.Equal(t, StatusOpen, open[3].Status)
}

func TestCreateTaskCountTracksCreations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := s.CreateTask(ctx, DemoClientID, TaskDraft{Title: fmt.Sprintf("t%d", i)})
		require.NoError(t, err)
	}
	require.Len(t, s.OpenTasks(), 3+5)
}

func TestCreateTaskDefaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	task, err := s.CreateTask(ctx, DemoClientID, TaskDraft{})
	require.NoError(t, err)
	require.Equal(t, "Untitled Task", task.Title)
	require.Equal(t, TaskText, task.Type)
	require.Equal(t, "No content", task.Content)
	require.Equal(t, 5, task.Reward)

	img, err := s.CreateTask(ctx, DemoClientID, TaskDraft{Type: TaskImage, Reward: -3})
	require.NoError(t, err)
	require.Equal(t, "https://via.placeholder.com/300", img.Content)
	require.Equal(t, 5, img.Reward)
}

func TestRecordSubmissionCreditsReward(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	task, err := s.CreateTask(ctx, DemoClientID, TaskDraft{Title: "Rate", Reward: 5})
	require.NoError(t, err)

	reward, err := s.RecordSubmission(ctx, task.ID, "user-1", "User One", "positive")
	require.NoError(t, err)
	require.Equal(t, 5, reward)

	u, ok := s.FindUser("user-1")
	require.True(t, ok, "user created lazily on first submission")
	require.Equal(t, 5, u.Balance)

	stats := taskStatByID(t, s, task.ID)
	require.Equal(t, 1, stats.Submissions)
}

func TestRecordSubmissionEmptyResultIsRejected(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	task := s.OpenTasks()[0]
	before := s.Snapshot()

	for _, result := range []string{"", "   ", "\n\t"} {
		_, err := s.RecordSubmission(ctx, task.ID, testContribID, testContribName, result)
		require.ErrorIs(t, err, ErrEmptyResult)
	}
	require.Equal(t, before, s.Snapshot(), "rejected submission must not change state")
}

func TestRecordSubmissionUnknownTaskFailsLoudly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	before := s.Snapshot()

	_, err := s.RecordSubmission(ctx, "no-such-task", testContribID, testContribName, "x")
	require.ErrorIs(t, err, ErrTaskNotFound)
	require.Equal(t, before, s.Snapshot())
}

func TestRepeatSubmissionsCreditEachTime(t *testing.T) {
	t.Parallel()

	// Duplicate crediting is the defined behavior: there is no dedup.
	ctx := context.Background()
	s := newTestStore(t)
	task, err := s.CreateTask(ctx, DemoClientID, TaskDraft{Title: "Twice", Reward: 4})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := s.RecordSubmission(ctx, task.ID, "user-2", "User Two", "again")
		require.NoError(t, err)
	}
	require.Equal(t, 2*4, s.Balance("user-2"))
	require.Equal(t, 2, taskStatByID(t, s, task.ID).Submissions)
}

func TestPersistLoadRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := snapshot.NewMemory()
	s := New(kv, testKey)
	require.NoError(t, s.Load(ctx, testContribID, testContribName))

	task, err := s.CreateTask(ctx, DemoClientID, TaskDraft{Title: "Round", Reward: 7})
	require.NoError(t, err)
	_, err = s.RecordSubmission(ctx, task.ID, "user-3", "User Three", "result")
	require.NoError(t, err)

	reloaded := New(kv, testKey)
	require.NoError(t, reloaded.Load(ctx, testContribID, testContribName))
	require.Equal(t, s.Snapshot(), reloaded.Snapshot())
}

func TestLoadCorruptSnapshotReseedsAndReports(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := snapshot.NewMemory()
	require.NoError(t, kv.Set(ctx, testKey, []byte("{not json")))

	s := New(kv, testKey)
	err := s.Load(ctx, testContribID, testContribName)
	require.Error(t, err, "parse failure is reported")

	tasks, _, users := s.Counts()
	require.Equal(t, 3, tasks, "falls back to seeded state")
	require.Equal(t, 1, users)

	// The reseeded state was persisted; a second load is clean.
	again := New(kv, testKey)
	require.NoError(t, again.Load(ctx, testContribID, testContribName))
}

func TestTaskStatsMatchSubmissionFilter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	open := s.OpenTasks()

	_, err := s.RecordSubmission(ctx, open[0].ID, "u1", "U1", "a")
	require.NoError(t, err)
	_, err = s.RecordSubmission(ctx, open[0].ID, "u2", "U2", "b")
	require.NoError(t, err)
	_, err = s.RecordSubmission(ctx, open[1].ID, "u1", "U1", "c")
	require.NoError(t, err)

	state := s.Snapshot()
	for _, stat := range s.TaskStats() {
		want := 0
		for _, sub := range state.Submissions {
			if sub.TaskID == stat.Task.ID {
				want++
			}
		}
		require.Equal(t, want, stat.Submissions, "task %s", stat.Task.Title)
	}
}

func TestUserStatsCountContributions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	open := s.OpenTasks()

	_, err := s.RecordSubmission(ctx, open[0].ID, "u1", "U1", "a")
	require.NoError(t, err)
	_, err = s.RecordSubmission(ctx, open[1].ID, "u1", "U1", "b")
	require.NoError(t, err)

	var found bool
	for _, stat := range s.UserStats() {
		if stat.User.ID != "u1" {
			continue
		}
		found = true
		require.Equal(t, 2, stat.Submissions)
		require.Equal(t, open[0].Reward+open[1].Reward, stat.User.Balance)
	}
	require.True(t, found)
}

func TestTasksCreatedByFiltersOnClient(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.CreateTask(ctx, "someone-else", TaskDraft{Title: "Other"})
	require.NoError(t, err)
	mine, err := s.CreateTask(ctx, DemoClientID, TaskDraft{Title: "Mine"})
	require.NoError(t, err)

	tasks := s.TasksCreatedBy(DemoClientID)
	require.Len(t, tasks, 4) // 3 seeded + 1 created
	require.Equal(t, mine.ID, tasks[3].ID)
}

func taskStatByID(t *testing.T, s *Store, taskID string) TaskStat {
	t.Helper()
	for _, stat := range s.TaskStats() {
		if stat.Task.ID == taskID {
			return stat
		}
	}
	t.Fatalf("no stat for task %s", taskID)
	return TaskStat{}
}
