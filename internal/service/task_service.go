package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"daily-tasks/internal/model"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrAmbiguous = errors.New("ambiguous reference")
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Text       string
	Priority   *model.Priority
	CategoryID *string
}

// TaskStore owns the task and category collections plus the three filter
// selectors. There is one store per process: build it once at startup and
// pass it to whatever needs it.
//
// Mutators never return errors. Invalid input and unknown ids are silently
// ignored, and persistence failures are logged rather than surfaced.
type TaskStore struct {
	storage Storage
	ids     IDSource
	clock   Clock
	rnd     Random
	log     zerolog.Logger

	mu             sync.RWMutex
	tasks          []model.Task
	categories     []model.Category
	filter         model.StatusFilter
	priorityFilter model.PriorityFilter
	categoryFilter model.CategoryFilter
}

type Option func(*TaskStore)

func WithIDSource(ids IDSource) Option { return func(s *TaskStore) { s.ids = ids } }

func WithClock(clock Clock) Option { return func(s *TaskStore) { s.clock = clock } }

func WithRandom(rnd Random) Option { return func(s *TaskStore) { s.rnd = rnd } }

func WithLogger(log zerolog.Logger) Option { return func(s *TaskStore) { s.log = log } }

// NewTaskStore builds a store and loads both collections from storage.
// Missing or unreadable records start out empty.
func NewTaskStore(ctx context.Context, storage Storage, opts ...Option) *TaskStore {
	s := &TaskStore{
		storage:        storage,
		ids:            UUIDSource{},
		clock:          SystemClock{},
		rnd:            globalRandom{},
		log:            zerolog.Nop(),
		filter:         model.StatusAll,
		priorityFilter: model.PriorityFilterAll,
		categoryFilter: model.CategoryFilterAll,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.tasks = loadCollection[model.Task](ctx, s.storage, s.log, tasksKey)
	s.categories = loadCollection[model.Category](ctx, s.storage, s.log, categoriesKey)
	s.log.Debug().
		Int("tasks", len(s.tasks)).
		Int("categories", len(s.categories)).
		Msg("loaded store")
	return s
}

// AddTask appends a new open task. Text is trimmed; blank text is ignored.
func (s *TaskStore) AddTask(input TaskInput) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return
	}

	s.mutate(func() changeSet {
		task := model.Task{
			ID:         s.ids.NewID(),
			Text:       text,
			Priority:   input.Priority,
			CategoryID: input.CategoryID,
			CreatedAt:  s.clock.Now().UnixMilli(),
		}
		s.tasks = append(s.tasks, task.Clone())
		s.log.Info().Str("task_id", task.ID).Msg("created task")
		return tasksChanged
	})
}

func (s *TaskStore) RemoveTask(id string) {
	s.mutate(func() changeSet {
		return s.removeTaskLocked(id)
	})
}

func (s *TaskStore) removeTaskLocked(id string) changeSet {
	i := s.indexOfTask(id)
	if i < 0 {
		return 0
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.log.Info().Str("task_id", id).Msg("removed task")
	return tasksChanged
}

func (s *TaskStore) ToggleTask(id string) {
	s.mutate(func() changeSet {
		i := s.indexOfTask(id)
		if i < 0 {
			return 0
		}
		s.tasks[i].Completed = !s.tasks[i].Completed
		return tasksChanged
	})
}

// EditTask replaces the task text. Editing to blank text deletes the task.
func (s *TaskStore) EditTask(id, text string) {
	text = strings.TrimSpace(text)
	s.mutate(func() changeSet {
		if text == "" {
			return s.removeTaskLocked(id)
		}
		i := s.indexOfTask(id)
		if i < 0 || s.tasks[i].Text == text {
			return 0
		}
		s.tasks[i].Text = text
		return tasksChanged
	})
}

// SetPriority sets or, with nil, clears the task priority.
func (s *TaskStore) SetPriority(id string, priority *model.Priority) {
	s.mutate(func() changeSet {
		i := s.indexOfTask(id)
		if i < 0 || equalPtr(s.tasks[i].Priority, priority) {
			return 0
		}
		s.tasks[i].Priority = clonePtr(priority)
		return tasksChanged
	})
}

// SetTaskCategory sets or, with nil, clears the task category. The category
// id is not checked against existing categories.
func (s *TaskStore) SetTaskCategory(taskID string, categoryID *string) {
	s.mutate(func() changeSet {
		i := s.indexOfTask(taskID)
		if i < 0 || equalPtr(s.tasks[i].CategoryID, categoryID) {
			return 0
		}
		s.tasks[i].CategoryID = clonePtr(categoryID)
		return tasksChanged
	})
}

// ClearCompleted drops every completed task, keeping the order of the rest.
func (s *TaskStore) ClearCompleted() {
	s.mutate(func() changeSet {
		before := len(s.tasks)
		s.tasks = slices.DeleteFunc(s.tasks, func(t model.Task) bool { return t.Completed })
		if len(s.tasks) == before {
			return 0
		}
		s.log.Info().Int("removed", before-len(s.tasks)).Msg("cleared completed tasks")
		return tasksChanged
	})
}

// Tasks returns a copy of all tasks in insertion order.
func (s *TaskStore) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTasks(s.tasks)
}

func (s *TaskStore) Task(id string) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOfTask(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i].Clone(), true
}

// ResolveTaskID maps a full id or a unique id prefix to the task id.
func (s *TaskStore) ResolveTaskID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	s.mu.RLock()
	defer s.mu.RUnlock()

	if ref == "" {
		return "", fmt.Errorf("task %q: %w", ref, ErrNotFound)
	}
	if i := s.indexOfTask(ref); i >= 0 {
		return ref, nil
	}

	var match string
	for _, t := range s.tasks {
		if !strings.HasPrefix(t.ID, ref) {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("task %q: %w", ref, ErrAmbiguous)
		}
		match = t.ID
	}
	if match == "" {
		return "", fmt.Errorf("task %q: %w", ref, ErrNotFound)
	}
	return match, nil
}

// Reset empties both collections, restores default filters and erases the
// persisted records.
func (s *TaskStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = []model.Task{}
	s.categories = []model.Category{}
	s.filter = model.StatusAll
	s.priorityFilter = model.PriorityFilterAll
	s.categoryFilter = model.CategoryFilterAll

	for _, key := range []string{tasksKey, categoriesKey} {
		if err := s.storage.Erase(context.Background(), key); err != nil {
			s.log.Error().
				Err(err).
				Str("key", key).
				Msg("failed to erase record")
		}
	}
	s.log.Info().Msg("reset store")
}

func (s *TaskStore) indexOfTask(id string) int {
	return slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
}

func cloneTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
