package service

import (
	"fmt"
	"slices"
	"strings"

	"daily-tasks/internal/model"
)

// AddCategory creates a category with a palette colour. It reports false,
// changing nothing, when the trimmed name is blank or already taken
// (case-insensitively).
func (s *TaskStore) AddCategory(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	var added bool
	s.mutate(func() changeSet {
		if s.indexOfCategoryName(name) >= 0 {
			return 0
		}

		used := make([]string, 0, len(s.categories))
		for _, c := range s.categories {
			used = append(used, c.Color)
		}
		category := model.Category{
			ID:    s.ids.NewID(),
			Name:  name,
			Color: pickColor(s.rnd, used),
		}
		s.categories = append(s.categories, category)
		added = true

		s.log.Info().
			Str("category_id", category.ID).
			Str("color", category.Color).
			Msg("created category")
		return categoriesChanged
	})
	return added
}

// RemoveCategory deletes the category, detaches every task that referenced
// it and falls back to the "all" category filter if it was selected.
func (s *TaskStore) RemoveCategory(id string) {
	s.mutate(func() changeSet {
		i := slices.IndexFunc(s.categories, func(c model.Category) bool { return c.ID == id })
		if i < 0 {
			return 0
		}
		s.categories = slices.Delete(s.categories, i, i+1)
		changed := categoriesChanged

		detached := 0
		for j := range s.tasks {
			if s.tasks[j].CategoryID != nil && *s.tasks[j].CategoryID == id {
				s.tasks[j].CategoryID = nil
				detached++
			}
		}
		if detached > 0 {
			changed |= tasksChanged
		}

		if s.categoryFilter == model.CategoryFilter(id) {
			s.categoryFilter = model.CategoryFilterAll
		}

		s.log.Info().
			Str("category_id", id).
			Int("detached_tasks", detached).
			Msg("removed category")
		return changed
	})
}

// Categories returns a copy of all categories in insertion order.
func (s *TaskStore) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

func (s *TaskStore) Category(id string) (model.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// ResolveCategory finds a category by id, by name (case-insensitively) or by
// unique id prefix, in that order.
func (s *TaskStore) ResolveCategory(ref string) (model.Category, error) {
	ref = strings.TrimSpace(ref)
	s.mu.RLock()
	defer s.mu.RUnlock()

	if ref == "" {
		return model.Category{}, fmt.Errorf("category %q: %w", ref, ErrNotFound)
	}
	for _, c := range s.categories {
		if c.ID == ref {
			return c, nil
		}
	}
	if i := s.indexOfCategoryName(ref); i >= 0 {
		return s.categories[i], nil
	}

	var (
		match model.Category
		found bool
	)
	for _, c := range s.categories {
		if !strings.HasPrefix(c.ID, ref) {
			continue
		}
		if found {
			return model.Category{}, fmt.Errorf("category %q: %w", ref, ErrAmbiguous)
		}
		match, found = c, true
	}
	if !found {
		return model.Category{}, fmt.Errorf("category %q: %w", ref, ErrNotFound)
	}
	return match, nil
}

func (s *TaskStore) indexOfCategoryName(name string) int {
	return slices.IndexFunc(s.categories, func(c model.Category) bool {
		return strings.EqualFold(c.Name, name)
	})
}
