// Package render draws tasks and categories for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"daily-tasks/internal/model"
	"daily-tasks/internal/service"
)

// ShortIDLen is how many id characters the CLI shows and accepts as a prefix.
const ShortIDLen = 8

var priorityColors = map[model.Priority]lipgloss.Color{
	model.PriorityHigh:   lipgloss.Color("#ef4444"),
	model.PriorityMedium: lipgloss.Color("#f59e0b"),
	model.PriorityLow:    lipgloss.Color("#3b82f6"),
}

type Renderer struct {
	lg         *lipgloss.Renderer
	categories map[string]model.Category
}

// New returns a renderer whose colour support is detected from w.
func New(w io.Writer, categories []model.Category) *Renderer {
	byID := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	return &Renderer{lg: lipgloss.NewRenderer(w), categories: byID}
}

func ShortID(id string) string {
	if len(id) <= ShortIDLen {
		return id
	}
	return id[:ShortIDLen]
}

// Task renders one list line: checkbox, short id, priority, text, category.
func (r *Renderer) Task(t model.Task) string {
	box := "[ ]"
	text := r.lg.NewStyle().Render(t.Text)
	if t.Completed {
		box = "[x]"
		text = r.lg.NewStyle().Strikethrough(true).Faint(true).Render(t.Text)
	}

	marker := service.PriorityMarker(t.Priority)
	if t.Priority != nil {
		if c, ok := priorityColors[*t.Priority]; ok {
			marker = r.lg.NewStyle().Foreground(c).Bold(true).Render(marker)
		}
	}

	line := fmt.Sprintf("%s %s %s %s", box, ShortID(t.ID), marker, text)
	if t.CategoryID != nil {
		if c, ok := r.categories[*t.CategoryID]; ok {
			line += "  " + r.Category(c)
		}
	}
	return line
}

// Category renders the category name in its palette colour.
func (r *Renderer) Category(c model.Category) string {
	return r.lg.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("● " + c.Name)
}

// List renders the filtered view followed by a footer with the counters.
func (r *Renderer) List(snap service.Snapshot) string {
	var sb strings.Builder
	if len(snap.Filtered) == 0 {
		sb.WriteString("No tasks found.\n")
	}
	for _, t := range snap.Filtered {
		sb.WriteString(r.Task(t))
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
	sb.WriteString(service.ItemsLeft(snap.ActiveCount))
	sb.WriteString(r.lg.NewStyle().Faint(true).Render(fmt.Sprintf(
		"  (status: %s, priority: %s, category: %s)",
		snap.Filter, snap.PriorityFilter, r.categoryFilterLabel(snap.CategoryFilter))))
	if snap.HasCompleted {
		sb.WriteString("\nRun \"todo clear\" to remove completed tasks.")
	}
	sb.WriteByte('\n')
	return sb.String()
}

func (r *Renderer) categoryFilterLabel(f model.CategoryFilter) string {
	if c, ok := r.categories[string(f)]; ok {
		return c.Name
	}
	return string(f)
}
