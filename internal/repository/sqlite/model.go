package sqlite

import "time"

// Task represents a schedule line item row.
type Task struct {
	ID        int64
	Category  string
	TaskName  string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Event represents a dated schedule event row. Start and end dates are
// inclusive calendar dates stored without a time component.
type Event struct {
	ID        int64
	TaskID    int64
	StartDate time.Time
	EndDate   time.Time
	Label     string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomEventType represents a reusable label/color preset row.
type CustomEventType struct {
	ID        int64
	Label     string
	Color     string
	CreatedAt time.Time
}
