package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-tasks/internal/model"
	"daily-tasks/internal/repository"
)

func TestAddTask(t *testing.T) {
	s := newTestStore(t, nil)

	s.AddTask(TaskInput{Text: "  Buy groceries  "})

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "id-1", tasks[0].ID)
	assert.Equal(t, "Buy groceries", tasks[0].Text)
	assert.False(t, tasks[0].Completed)
	assert.Nil(t, tasks[0].Priority)
	assert.Nil(t, tasks[0].CategoryID)
	assert.Equal(t, int64(1_700_000_000_001), tasks[0].CreatedAt)
}

func TestAddTaskWithPriorityAndCategory(t *testing.T) {
	s := newTestStore(t, nil)

	s.AddTask(TaskInput{Text: "Ship it", Priority: prio(model.PriorityHigh), CategoryID: strPtr("cat-9")})

	task := s.Tasks()[0]
	require.NotNil(t, task.Priority)
	assert.Equal(t, model.PriorityHigh, *task.Priority)
	require.NotNil(t, task.CategoryID)
	assert.Equal(t, "cat-9", *task.CategoryID, "unknown category ids are accepted as-is")
}

func TestAddTaskIgnoresBlankText(t *testing.T) {
	s := newTestStore(t, nil)

	for _, text := range []string{"", " ", "   ", "\t\n"} {
		s.AddTask(TaskInput{Text: text})
	}
	assert.Empty(t, s.Tasks())
}

func TestRemoveTask(t *testing.T) {
	s := newTestStore(t, nil)
	s.AddTask(TaskInput{Text: "Task to remove"})
	s.AddTask(TaskInput{Text: "Keep this"})

	s.RemoveTask("id-1")
	assert.Equal(t, []string{"Keep this"}, texts(s.Tasks()))

	s.RemoveTask("nonexistent-id")
	assert.Len(t, s.Tasks(), 1)
}

func TestToggleTaskIsInvolution(t *testing.T) {
	s := newTestStore(t, nil)
	s.AddTask(TaskInput{Text: "Toggle me"})

	s.ToggleTask("id-1")
	task, ok := s.Task("id-1")
	require.True(t, ok)
	assert.True(t, task.Completed)

	s.ToggleTask("id-1")
	task, _ = s.Task("id-1")
	assert.False(t, task.Completed)

	s.ToggleTask("missing")
	assert.Len(t, s.Tasks(), 1)
}

func TestEditTask(t *testing.T) {
	s := newTestStore(t, nil)
	s.AddTask(TaskInput{Text: "Old text"})

	s.EditTask("id-1", "  Trimmed  ")
	assert.Equal(t, []string{"Trimmed"}, texts(s.Tasks()))

	s.EditTask("missing", "whatever")
	assert.Equal(t, []string{"Trimmed"}, texts(s.Tasks()))
}

func TestEditTaskToBlankRemovesIt(t *testing.T) {
	s := newTestStore(t, nil)
	s.AddTask(TaskInput{Text: "Stays"})
	before := len(s.Tasks())

	s.AddTask(TaskInput{Text: "Will be deleted"})
	s.EditTask("id-2", "   ")

	assert.Len(t, s.Tasks(), before)
	assert.Equal(t, []string{"Stays"}, texts(s.Tasks()))
}

func TestSetPriority(t *testing.T) {
	s := newTestStore(t, nil)
	s.AddTask(TaskInput{Text: "Task"})

	s.SetPriority("id-1", prio(model.PriorityLow))
	task, _ := s.Task("id-1")
	require.NotNil(t, task.Priority)
	assert.Equal(t, model.PriorityLow, *task.Priority)

	s.SetPriority("id-1", nil)
	task, _ = s.Task("id-1")
	assert.Nil(t, task.Priority)
}

func TestSetTaskCategory(t *testing.T) {
	s := newTestStore(t, nil)
	s.AddTask(TaskInput{Text: "Task"})

	s.SetTaskCategory("id-1", strPtr("orphan"))
	task, _ := s.Task("id-1")
	require.NotNil(t, task.CategoryID)
	assert.Equal(t, "orphan", *task.CategoryID)

	s.SetTaskCategory("id-1", nil)
	task, _ = s.Task("id-1")
	assert.Nil(t, task.CategoryID)
}

func TestClearCompleted(t *testing.T) {
	s := newTestStore(t, nil)
	s.AddTask(TaskInput{Text: "Active task"})
	s.AddTask(TaskInput{Text: "Done task"})
	s.AddTask(TaskInput{Text: "Another active"})
	s.ToggleTask("id-2")

	s.ClearCompleted()

	assert.Equal(t, []string{"Active task", "Another active"}, texts(s.Tasks()))
	assert.False(t, s.HasCompleted())
}

func TestReturnedTasksAreCopies(t *testing.T) {
	s := newTestStore(t, nil)
	s.AddTask(TaskInput{Text: "Original", Priority: prio(model.PriorityHigh)})

	tasks := s.Tasks()
	tasks[0].Text = "Mutated"
	*tasks[0].Priority = model.PriorityLow

	task, _ := s.Task("id-1")
	assert.Equal(t, "Original", task.Text)
	assert.Equal(t, model.PriorityHigh, *task.Priority)
}

func TestResolveTaskID(t *testing.T) {
	s := NewTaskStore(context.Background(), repository.NewMemoryStorage(),
		WithIDSource(&listIDs{ids: []string{"abc123", "abd456", "xyz789"}}))
	s.AddTask(TaskInput{Text: "one"})
	s.AddTask(TaskInput{Text: "two"})
	s.AddTask(TaskInput{Text: "three"})

	id, err := s.ResolveTaskID("xyz789")
	require.NoError(t, err)
	assert.Equal(t, "xyz789", id)

	id, err = s.ResolveTaskID("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	_, err = s.ResolveTaskID("ab")
	assert.ErrorIs(t, err, ErrAmbiguous)

	_, err = s.ResolveTaskID("zzz")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.ResolveTaskID(" ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReset(t *testing.T) {
	storage := repository.NewMemoryStorage()
	s := newTestStore(t, storage)
	s.AddTask(TaskInput{Text: "Task"})
	require.True(t, s.AddCategory("Work"))
	s.SetFilter(model.StatusCompleted)
	s.SetPriorityFilter(model.PriorityFilterNone)
	s.SetCategoryFilter(model.CategoryFilterUncategorized)

	s.Reset()

	assert.Empty(t, s.Tasks())
	assert.Empty(t, s.Categories())
	assert.Equal(t, model.StatusAll, s.Filter())
	assert.Equal(t, model.PriorityFilterAll, s.PriorityFilter())
	assert.Equal(t, model.CategoryFilterAll, s.CategoryFilter())

	for _, key := range []string{"tasks", "categories"} {
		_, ok, err := storage.Load(context.Background(), key)
		require.NoError(t, err)
		assert.False(t, ok, "record %q should be erased", key)
	}

	reloaded := newTestStore(t, storage)
	assert.Empty(t, reloaded.Tasks())
	assert.Empty(t, reloaded.Categories())
}

func TestDefaultCollaborators(t *testing.T) {
	s := NewTaskStore(context.Background(), repository.NewMemoryStorage())
	before := time.Now().UnixMilli()

	s.AddTask(TaskInput{Text: "a"})
	s.AddTask(TaskInput{Text: "b"})
	require.True(t, s.AddCategory("Work"))

	tasks := s.Tasks()
	assert.NotEqual(t, tasks[0].ID, tasks[1].ID)
	assert.Len(t, tasks[0].ID, 36)
	assert.GreaterOrEqual(t, tasks[0].CreatedAt, before)
	assert.Contains(t, Palette, s.Categories()[0].Color)
}

// listIDs hands out a fixed list of ids in order.
type listIDs struct {
	ids []string
	n   int
}

func (l *listIDs) NewID() string {
	id := l.ids[l.n]
	l.n++
	return id
}
