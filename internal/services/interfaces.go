package services

import (
	"context"
	"time"

	"timeline-tracker/internal/domain"
)

// TaskUpdate is a partial task patch; nil fields are left unchanged.
type TaskUpdate struct {
	Category  *string
	TaskName  *string
	SortOrder *int
}

// EventUpdate is a partial event patch; nil fields are left unchanged.
// When the label changes and no explicit color is supplied, the color is
// recomputed from the new label.
type EventUpdate struct {
	StartDate *time.Time
	EndDate   *time.Time
	Label     *string
	Color     *string
}

// EventTypeUpdate is a partial custom event type patch.
type EventTypeUpdate struct {
	Label *string
	Color *string
}

// TimelineView is the read-time structure consumed by the UI: tasks grouped
// by category, events grouped by owning task, and the derived week axis.
type TimelineView struct {
	Tasks           []*domain.Task             `json:"tasks"`
	TasksByCategory map[string][]*domain.Task  `json:"tasks_by_category"`
	Events          []*domain.Event            `json:"events"`
	EventsByTask    map[int64][]*domain.Event  `json:"events_by_task"`
	Categories      []string                   `json:"categories"`
	EventTypes      []*domain.CustomEventType  `json:"event_types"`
	WeekDates       []string                   `json:"week_dates"`
	LastUpdated     time.Time                  `json:"last_updated"`
}

// TaskService handles task lifecycle operations
type TaskService interface {
	CreateTask(ctx context.Context, category, name string, sortOrder int) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, update TaskUpdate) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) (*domain.Task, error)
}

// EventService handles event lifecycle operations
type EventService interface {
	CreateEvent(ctx context.Context, taskID int64, start, end time.Time, label, color string) (*domain.Event, error)
	GetEvent(ctx context.Context, id int64) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]*domain.Event, error)
	UpdateEvent(ctx context.Context, id int64, update EventUpdate) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id int64) (*domain.Event, error)
}

// CategoryService handles operations on the virtual category set. Categories
// exist only as the distinct Task.category values, so every operation here is
// a bulk operation over tasks.
type CategoryService interface {
	ListCategories(ctx context.Context) ([]string, error)
	RenameCategory(ctx context.Context, oldName, newName string) (int64, error)
	DeleteCategory(ctx context.Context, name string) (int64, error)
}

// EventTypeService handles custom event type presets
type EventTypeService interface {
	CreateEventType(ctx context.Context, label, color string) (*domain.CustomEventType, error)
	GetEventType(ctx context.Context, id int64) (*domain.CustomEventType, error)
	ListEventTypes(ctx context.Context) ([]*domain.CustomEventType, error)
	UpdateEventType(ctx context.Context, id int64, update EventTypeUpdate) (*domain.CustomEventType, error)
	DeleteEventType(ctx context.Context, id int64) (*domain.CustomEventType, error)
}

// TimelineService assembles the read model
type TimelineService interface {
	GetTimeline(ctx context.Context) (*TimelineView, error)
}
