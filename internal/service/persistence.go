package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"daily-tasks/internal/model"
)

const (
	tasksKey      = "tasks"
	categoriesKey = "categories"
)

// changeSet tells the persistence hook which collections a mutation touched.
type changeSet uint8

const (
	tasksChanged changeSet = 1 << iota
	categoriesChanged
)

// mutate is the single entry point for state changes: fn runs under the
// write lock, then every collection it reports as changed is saved.
func (s *TaskStore) mutate(fn func() changeSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := fn()
	if changed&tasksChanged != 0 {
		s.save(tasksKey, s.tasks)
	}
	if changed&categoriesChanged != 0 {
		s.save(categoriesKey, s.categories)
	}
}

// save writes one collection. Failures are logged, never returned.
func (s *TaskStore) save(key string, collection any) {
	data, err := json.Marshal(collection)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("failed to encode record")
		return
	}
	if err := s.storage.Save(context.Background(), key, data); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("failed to save record")
		return
	}
	s.log.Debug().Str("key", key).Int("bytes", len(data)).Msg("saved record")
}

// Reload replaces both collections with what storage currently holds,
// picking up writes made by other processes. Filters are left alone.
func (s *TaskStore) Reload(ctx context.Context) {
	tasks := loadCollection[model.Task](ctx, s.storage, s.log, tasksKey)
	categories := loadCollection[model.Category](ctx, s.storage, s.log, categoriesKey)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	s.categories = categories
}

// loadCollection reads one collection. Missing, unreadable and malformed
// records all come back as an empty, non-nil slice.
func loadCollection[T any](ctx context.Context, storage Storage, log zerolog.Logger, key string) []T {
	data, ok, err := storage.Load(ctx, key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to load record, starting empty")
		return []T{}
	}
	if !ok {
		return []T{}
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("malformed record, starting empty")
		return []T{}
	}
	if out == nil {
		out = []T{}
	}
	return out
}
