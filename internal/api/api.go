package api

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"timeline-tracker/internal/domain"
	"timeline-tracker/internal/importer"
	"timeline-tracker/internal/repository/sqlite"
	"timeline-tracker/internal/services"
	"timeline-tracker/internal/source"
)

// API is the single surface the CLI talks to. It bundles the import pipeline,
// the timeline read model, and the editing operations behind one interface so
// command handlers never reach into the repository directly.
type API interface {
	// Import replaces the stored schedule with the configured source's grid.
	Import(ctx context.Context) (*importer.Summary, error)

	// GetTimeline assembles the full read model for display.
	GetTimeline(ctx context.Context) (*services.TimelineView, error)

	// Task operations
	CreateTask(ctx context.Context, category, name string, sortOrder int) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, update services.TaskUpdate) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) (*domain.Task, error)

	// Event operations
	CreateEvent(ctx context.Context, taskID int64, start, end time.Time, label, color string) (*domain.Event, error)
	GetEvent(ctx context.Context, id int64) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]*domain.Event, error)
	UpdateEvent(ctx context.Context, id int64, update services.EventUpdate) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id int64) (*domain.Event, error)

	// Category operations
	ListCategories(ctx context.Context) ([]string, error)
	RenameCategory(ctx context.Context, oldName, newName string) (int64, error)
	DeleteCategory(ctx context.Context, name string) (int64, error)

	// Custom event type operations
	CreateEventType(ctx context.Context, label, color string) (*domain.CustomEventType, error)
	GetEventType(ctx context.Context, id int64) (*domain.CustomEventType, error)
	ListEventTypes(ctx context.Context) ([]*domain.CustomEventType, error)
	UpdateEventType(ctx context.Context, id int64, update services.EventTypeUpdate) (*domain.CustomEventType, error)
	DeleteEventType(ctx context.Context, id int64) (*domain.CustomEventType, error)
}

type apiImpl struct {
	services.TaskService
	services.EventService
	services.CategoryService
	services.EventTypeService

	timeline services.TimelineService
	importer *importer.Importer
}

// New creates an API instance wired to the given store and import source.
func New(repo sqlite.Repository, src source.Tabular, logger zerolog.Logger) API {
	return &apiImpl{
		TaskService:      services.NewTaskService(repo),
		EventService:     services.NewEventService(repo),
		CategoryService:  services.NewCategoryService(repo),
		EventTypeService: services.NewEventTypeService(repo),
		timeline:         services.NewTimelineService(repo),
		importer:         importer.New(repo, src, logger),
	}
}

func (a *apiImpl) Import(ctx context.Context) (*importer.Summary, error) {
	return a.importer.Run(ctx)
}

func (a *apiImpl) GetTimeline(ctx context.Context) (*services.TimelineView, error) {
	return a.timeline.GetTimeline(ctx)
}
