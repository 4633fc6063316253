package render

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"daily-tasks/internal/model"
	"daily-tasks/internal/service"
)

func TestShortID(t *testing.T) {
	assert.Equal(t, "0f8fad5b", ShortID("0f8fad5b-d9cb-469f-a165-70867728950e"))
	assert.Equal(t, "abc", ShortID("abc"))
}

func TestTask(t *testing.T) {
	high := model.PriorityHigh
	catID := "c1"
	r := New(&bytes.Buffer{}, []model.Category{{ID: "c1", Name: "Work", Color: "#3b82f6"}})

	line := plain(r.Task(model.Task{ID: "0f8fad5b-d9cb", Text: "Write report", Priority: &high, CategoryID: &catID}))
	assert.Contains(t, line, "[ ] 0f8fad5b")
	assert.Contains(t, line, "[!!!]")
	assert.Contains(t, line, "Write report")
	assert.Contains(t, line, "Work")

	done := plain(r.Task(model.Task{ID: "t2", Text: "Done", Completed: true, CategoryID: strPtr("gone")}))
	assert.Contains(t, done, "[x] t2")
	assert.Contains(t, done, "[   ]")
	assert.NotContains(t, done, "gone")
}

func TestList(t *testing.T) {
	r := New(&bytes.Buffer{}, []model.Category{{ID: "c1", Name: "Work", Color: "#3b82f6"}})

	out := plain(r.List(service.Snapshot{
		Filtered:       []model.Task{{ID: "a", Text: "first"}, {ID: "b", Text: "second"}},
		Filter:         model.StatusActive,
		PriorityFilter: model.PriorityFilterAll,
		CategoryFilter: "c1",
		ActiveCount:    2,
		HasCompleted:   true,
	}))
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Contains(t, out, "2 items left")
	assert.Contains(t, out, "category: Work")
	assert.Contains(t, out, "todo clear")

	empty := plain(r.List(service.Snapshot{Filter: model.StatusAll, PriorityFilter: "all", CategoryFilter: "all"}))
	assert.Contains(t, empty, "No tasks found.")
	assert.Contains(t, empty, "0 items left")
	assert.NotContains(t, empty, "todo clear")
}

func strPtr(s string) *string { return &s }

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func plain(s string) string { return ansi.ReplaceAllString(s, "") }
