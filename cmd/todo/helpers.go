package main

import (
	"fmt"
	"strings"

	"daily-tasks/internal/model"
)

// parsePriority accepts high, medium, low, or none/empty for no priority.
func parsePriority(raw string) (*model.Priority, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" || raw == "none" {
		return nil, nil
	}
	p := model.Priority(raw)
	if !p.Valid() {
		return nil, fmt.Errorf("unknown priority %q (use high, medium, low or none)", raw)
	}
	return model.PriorityPtr(p), nil
}

// categoryRef resolves a category name or id; "none" and empty mean no category.
func (a *app) categoryRef(raw string) (*string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "none") {
		return nil, nil
	}
	c, err := a.store.ResolveCategory(raw)
	if err != nil {
		return nil, err
	}
	return &c.ID, nil
}

func priorityLabel(p *model.Priority) string {
	if p == nil {
		return "none"
	}
	return string(*p)
}
