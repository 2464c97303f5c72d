package domain

import (
	"time"
)

// Event is one contiguous date range during which a task carries one label.
// Start and end dates are inclusive; a single-day event has StartDate == EndDate.
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

// NewEvent creates a new Event for the given task. The color is derived
// from the label when no explicit color is supplied.
func NewEvent(taskID int64, startDate, endDate time.Time, label, color string) Event {
	if color == "" {
		color = ColorForLabel(label)
	}
	return Event{
		TaskID:    taskID,
		StartDate: startDate,
		EndDate:   endDate,
		Label:     label,
		Color:     color,
	}
}

// IsSingleDay returns true if the event covers exactly one date.
func (e Event) IsSingleDay() bool {
	return e.StartDate.Equal(e.EndDate)
}

// IsValid checks if the event has valid data.
func (e Event) IsValid() bool {
	if e.TaskID <= 0 {
		return false
	}
	if e.StartDate.IsZero() || e.EndDate.IsZero() {
		return false
	}
	return !e.EndDate.Before(e.StartDate)
}
