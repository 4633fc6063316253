package model

// Priority is an optional urgency level attached to a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank orders priorities for sorting: high first, unprioritized last.
func Rank(p *Priority) int {
	if p == nil {
		return 3
	}
	switch *p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// PriorityPtr returns a pointer to p, handy for optional task fields.
func PriorityPtr(p Priority) *Priority {
	return &p
}

// Task represents a single item in the list.
type Task struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Completed  bool      `json:"completed"`
	Priority   *Priority `json:"priority"`
	CategoryID *string   `json:"categoryId"`
	CreatedAt  int64     `json:"createdAt"` // ms since epoch
}

// Clone returns a copy that shares no pointers with t.
func (t Task) Clone() Task {
	if t.Priority != nil {
		p := *t.Priority
		t.Priority = &p
	}
	if t.CategoryID != nil {
		id := *t.CategoryID
		t.CategoryID = &id
	}
	return t
}
