package service

import (
	"slices"
	"sort"

	"daily-tasks/internal/model"
)

// Snapshot is a consistent read of the whole store.
type Snapshot struct {
	Tasks          []model.Task
	Categories     []model.Category
	Filter         model.StatusFilter
	PriorityFilter model.PriorityFilter
	CategoryFilter model.CategoryFilter
	Filtered       []model.Task
	ActiveCount    int
	HasCompleted   bool
}

func (s *TaskStore) SetFilter(value model.StatusFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = value
}

func (s *TaskStore) SetPriorityFilter(value model.PriorityFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.priorityFilter = value
}

func (s *TaskStore) SetCategoryFilter(value model.CategoryFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categoryFilter = value
}

func (s *TaskStore) Filter() model.StatusFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

func (s *TaskStore) PriorityFilter() model.PriorityFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.priorityFilter
}

func (s *TaskStore) CategoryFilter() model.CategoryFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categoryFilter
}

// FilteredTasks applies all three filters and sorts the result by priority,
// then by creation time.
func (s *TaskStore) FilteredTasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterTasks(s.tasks, s.filter, s.priorityFilter, s.categoryFilter)
}

// ActiveCount counts open tasks, ignoring filters.
func (s *TaskStore) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return activeCount(s.tasks)
}

// HasCompleted reports whether any task is done, ignoring filters.
func (s *TaskStore) HasCompleted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return activeCount(s.tasks) < len(s.tasks)
}

func (s *TaskStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := activeCount(s.tasks)
	return Snapshot{
		Tasks:          cloneTasks(s.tasks),
		Categories:     slices.Clone(s.categories),
		Filter:         s.filter,
		PriorityFilter: s.priorityFilter,
		CategoryFilter: s.categoryFilter,
		Filtered:       filterTasks(s.tasks, s.filter, s.priorityFilter, s.categoryFilter),
		ActiveCount:    active,
		HasCompleted:   active < len(s.tasks),
	}
}

func filterTasks(tasks []model.Task, status model.StatusFilter, priority model.PriorityFilter, category model.CategoryFilter) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if matchStatus(t, status) && matchPriority(t, priority) && matchCategory(t, category) {
			out = append(out, t.Clone())
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := model.Rank(out[i].Priority), model.Rank(out[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return out[i].CreatedAt < out[j].CreatedAt
	})
	return out
}

// matchStatus keeps everything for "all" and for values it does not know.
func matchStatus(t model.Task, f model.StatusFilter) bool {
	switch f {
	case model.StatusActive:
		return !t.Completed
	case model.StatusCompleted:
		return t.Completed
	default:
		return true
	}
}

func matchPriority(t model.Task, f model.PriorityFilter) bool {
	switch f {
	case model.PriorityFilterAll:
		return true
	case model.PriorityFilterNone:
		return t.Priority == nil
	default:
		return t.Priority != nil && string(*t.Priority) == string(f)
	}
}

func matchCategory(t model.Task, f model.CategoryFilter) bool {
	switch f {
	case model.CategoryFilterAll:
		return true
	case model.CategoryFilterUncategorized:
		return t.CategoryID == nil
	default:
		return t.CategoryID != nil && *t.CategoryID == string(f)
	}
}

func activeCount(tasks []model.Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}
