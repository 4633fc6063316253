package service

import (
	"fmt"
	"strings"
	"time"

	"daily-tasks/internal/model"
)

// SummaryService builds human-readable reports of the task list.
type SummaryService struct {
	store *TaskStore
}

func NewSummaryService(store *TaskStore) *SummaryService {
	return &SummaryService{store: store}
}

// Summary lists open tasks in priority order regardless of the filters
// currently selected on the store.
func (s *SummaryService) Summary(now time.Time) string {
	snap := s.store.Snapshot()

	catNames := make(map[string]string, len(snap.Categories))
	for _, cat := range snap.Categories {
		catNames[cat.ID] = cat.Name
	}

	open := filterTasks(snap.Tasks, model.StatusActive, model.PriorityFilterAll, model.CategoryFilterAll)

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Daily summary %s\n", now.Format("2006-01-02")))
	builder.WriteString(ItemsLeft(snap.ActiveCount))
	builder.WriteString("\n\nOpen tasks\n")
	if len(open) == 0 {
		builder.WriteString("- nothing to do\n")
	} else {
		for _, task := range open {
			builder.WriteString(formatTask(task, catNames))
		}
	}

	if done := len(snap.Tasks) - snap.ActiveCount; done > 0 {
		builder.WriteString(fmt.Sprintf("\nDone: %d (clear them with \"todo clear\")\n", done))
	}

	return strings.TrimSpace(builder.String())
}

// ItemsLeft renders the active counter the way the list footer shows it.
func ItemsLeft(n int) string {
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}

// PriorityMarker is a short fixed-width tag for a task priority.
func PriorityMarker(p *model.Priority) string {
	switch model.Rank(p) {
	case 0:
		return "[!!!]"
	case 1:
		return "[!! ]"
	case 2:
		return "[!  ]"
	default:
		return "[   ]"
	}
}

func formatTask(task model.Task, catNames map[string]string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s", PriorityMarker(task.Priority), task.Text))

	if task.CategoryID != nil {
		if name, ok := catNames[*task.CategoryID]; ok {
			sb.WriteString(fmt.Sprintf(" (%s)", name))
		}
	}

	sb.WriteByte('\n')
	return sb.String()
}
