package domain

import (
	"time"
)

// Task represents one trackable line item on the schedule.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID        int64
	Category  string
	TaskName  string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTask creates a new Task in the given category.
func NewTask(category, name string, sortOrder int) Task {
	return Task{
		Category:  category,
		TaskName:  name,
		SortOrder: sortOrder,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Category != "" && t.TaskName != ""
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.TaskName
}
