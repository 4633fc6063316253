package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"daily-tasks/internal/model"
	"daily-tasks/internal/repository"
)

// seqIDs hands out "id-1", "id-2", ...
type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

// stepClock advances one millisecond per call.
type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

// frozenClock always reports the same instant.
type frozenClock struct{ now time.Time }

func (c frozenClock) Now() time.Time { return c.now }

// firstRandom always picks index 0.
type firstRandom struct{}

func (firstRandom) IntN(int) int { return 0 }

// brokenStorage fails every call.
type brokenStorage struct{}

var errBroken = errors.New("disk on fire")

func (brokenStorage) Load(context.Context, string) ([]byte, bool, error) {
	return nil, false, errBroken
}
func (brokenStorage) Save(context.Context, string, []byte) error { return errBroken }
func (brokenStorage) Erase(context.Context, string) error        { return errBroken }

func newTestStore(t *testing.T, storage Storage) *TaskStore {
	t.Helper()
	if storage == nil {
		storage = repository.NewMemoryStorage()
	}
	return NewTaskStore(context.Background(), storage,
		WithIDSource(&seqIDs{}),
		WithClock(&stepClock{now: time.UnixMilli(1_700_000_000_000)}),
		WithRandom(firstRandom{}),
	)
}

func texts(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Text)
	}
	return out
}

func prio(p model.Priority) *model.Priority { return &p }

func strPtr(s string) *string { return &s }
