package model

// StatusFilter selects tasks by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// PriorityFilter selects tasks by priority; PriorityFilterNone keeps
// unprioritized tasks, any other non-"all" value is matched exactly.
type PriorityFilter string

const (
	PriorityFilterAll  PriorityFilter = "all"
	PriorityFilterNone PriorityFilter = "none"
)

// CategoryFilter selects tasks by category; any value other than the two
// constants below is treated as a category id.
type CategoryFilter string

const (
	CategoryFilterAll           CategoryFilter = "all"
	CategoryFilterUncategorized CategoryFilter = "uncategorized"
)
