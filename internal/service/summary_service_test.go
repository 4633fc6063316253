package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-tasks/internal/model"
)

func TestSummary(t *testing.T) {
	s := newTestStore(t, nil)
	require.True(t, s.AddCategory("Work")) // id-1
	s.AddTask(TaskInput{Text: "Water plants"})
	s.AddTask(TaskInput{Text: "Write report", Priority: prio(model.PriorityHigh), CategoryID: strPtr("id-1")})
	s.AddTask(TaskInput{Text: "Old chore", Priority: prio(model.PriorityLow)})
	s.ToggleTask("id-4")
	s.SetFilter(model.StatusCompleted)

	got := NewSummaryService(s).Summary(time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC))

	want := "Daily summary 2026-10-18\n" +
		"2 items left\n" +
		"\n" +
		"Open tasks\n" +
		"[!!!] Write report (Work)\n" +
		"[   ] Water plants\n" +
		"\n" +
		"Done: 1 (clear them with \"todo clear\")"
	assert.Equal(t, want, got)
}

func TestSummaryEmpty(t *testing.T) {
	s := newTestStore(t, nil)

	got := NewSummaryService(s).Summary(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "Daily summary 2026-01-02\n0 items left\n\nOpen tasks\n- nothing to do", got)
}

func TestItemsLeft(t *testing.T) {
	assert.Equal(t, "0 items left", ItemsLeft(0))
	assert.Equal(t, "1 item left", ItemsLeft(1))
	assert.Equal(t, "7 items left", ItemsLeft(7))
}

func TestPriorityMarker(t *testing.T) {
	assert.Equal(t, "[!!!]", PriorityMarker(prio(model.PriorityHigh)))
	assert.Equal(t, "[!! ]", PriorityMarker(prio(model.PriorityMedium)))
	assert.Equal(t, "[!  ]", PriorityMarker(prio(model.PriorityLow)))
	assert.Equal(t, "[   ]", PriorityMarker(nil))
}
