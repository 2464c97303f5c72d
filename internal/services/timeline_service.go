package services

import (
	"context"
	"sort"
	"time"

	"timeline-tracker/internal/domain"
	"timeline-tracker/internal/importer"
	"timeline-tracker/internal/repository/sqlite"
)

// timelineServiceImpl implements the TimelineService interface
type timelineServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
	now    func() time.Time
}

// NewTimelineService creates a new TimelineService instance
func NewTimelineService(repo sqlite.Repository) TimelineService {
	return &timelineServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
		now:    time.Now,
	}
}

// NewTimelineServiceWithClock creates a TimelineService with a fixed clock,
// which pins the fallback week axis in tests.
func NewTimelineServiceWithClock(repo sqlite.Repository, now func() time.Time) TimelineService {
	return &timelineServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
		now:    now,
	}
}

// GetTimeline assembles the read model from live store data. The week axis
// is always reconstructed from the stored events, never persisted.
func (t *timelineServiceImpl) GetTimeline(ctx context.Context) (*TimelineView, error) {
	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	dbEvents, err := t.repo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	dbTypes, err := t.repo.ListEventTypes(ctx)
	if err != nil {
		return nil, err
	}

	tasks := t.mapper.Task.FromDatabaseSlice(dbTasks)
	events := t.mapper.Event.FromDatabaseSlice(dbEvents)

	view := &TimelineView{
		Tasks:           tasks,
		TasksByCategory: make(map[string][]*domain.Task),
		Events:          events,
		EventsByTask:    make(map[int64][]*domain.Event),
		EventTypes:      t.mapper.EventType.FromDatabaseSlice(dbTypes),
		WeekDates:       weekAxis(events, t.now),
	}

	seen := make(map[string]bool)
	for _, task := range tasks {
		view.TasksByCategory[task.Category] = append(view.TasksByCategory[task.Category], task)
		if !seen[task.Category] {
			seen[task.Category] = true
			view.Categories = append(view.Categories, task.Category)
		}
	}

	for _, event := range events {
		view.EventsByTask[event.TaskID] = append(view.EventsByTask[event.TaskID], event)
	}

	view.LastUpdated = lastUpdated(tasks, events)

	return view, nil
}

// weekAxis derives the date columns the UI should draw: the sorted distinct
// union of every event's start and end dates. With no events stored yet it
// falls back to a generated weekly sequence so the empty state still has a
// grid to render.
func weekAxis(events []*domain.Event, now func() time.Time) []string {
	if len(events) == 0 {
		weeks := importer.FallbackWeeks(now())
		dates := make([]string, len(weeks))
		for i, week := range weeks {
			dates[i] = sqlite.FormatDateForDB(week)
		}
		return dates
	}

	distinct := make(map[string]bool)
	for _, event := range events {
		distinct[sqlite.FormatDateForDB(event.StartDate)] = true
		distinct[sqlite.FormatDateForDB(event.EndDate)] = true
	}

	dates := make([]string, 0, len(distinct))
	for date := range distinct {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// lastUpdated returns the most recent update timestamp across tasks and events
func lastUpdated(tasks []*domain.Task, events []*domain.Event) time.Time {
	var last time.Time
	for _, task := range tasks {
		if task.UpdatedAt.After(last) {
			last = task.UpdatedAt
		}
	}
	for _, event := range events {
		if event.UpdatedAt.After(last) {
			last = event.UpdatedAt
		}
	}
	return last
}
