package services

import (
	"context"
	"time"

	"timeline-tracker/internal/domain"
	"timeline-tracker/internal/errors"
	"timeline-tracker/internal/repository/sqlite"
	"timeline-tracker/internal/validation"
)

// eventServiceImpl implements the EventService interface
type eventServiceImpl struct {
	repo           sqlite.Repository
	mapper         *domain.Mapper
	eventValidator *validation.EventValidator
}

// NewEventService creates a new EventService instance
func NewEventService(repo sqlite.Repository) EventService {
	return &eventServiceImpl{
		repo:           repo,
		mapper:         domain.NewMapper(),
		eventValidator: validation.NewEventValidator(),
	}
}

// CreateEvent creates a new event on an existing task. A zero end date
// defaults to the start date (single-day event); an empty color is derived
// from the label.
func (e *eventServiceImpl) CreateEvent(ctx context.Context, taskID int64, start, end time.Time, label, color string) (*domain.Event, error) {
	if err := e.eventValidator.ValidateEventForCreation(taskID, start, end); err != nil {
		return nil, errors.NewValidationError("invalid event", err)
	}

	// The owning task must exist; a miss surfaces as not found.
	if _, err := e.repo.GetTask(ctx, taskID); err != nil {
		return nil, err
	}

	if end.IsZero() {
		end = start
	}
	if color == "" {
		color = domain.ColorForLabel(label)
	}

	dbEvent := &sqlite.Event{
		TaskID:    taskID,
		StartDate: start,
		EndDate:   end,
		Label:     label,
		Color:     color,
	}

	if err := e.repo.CreateEvent(ctx, dbEvent); err != nil {
		return nil, err
	}

	domainEvent := e.mapper.Event.FromDatabase(*dbEvent)
	return &domainEvent, nil
}

// GetEvent retrieves an event by its ID
func (e *eventServiceImpl) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	if err := e.eventValidator.ValidateEventID(id); err != nil {
		return nil, errors.NewValidationError("invalid event ID", err)
	}

	dbEvent, err := e.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	domainEvent := e.mapper.Event.FromDatabase(*dbEvent)
	return &domainEvent, nil
}

// ListEvents retrieves all events ordered by start date
func (e *eventServiceImpl) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	dbEvents, err := e.repo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	return e.mapper.Event.FromDatabaseSlice(dbEvents), nil
}

// UpdateEvent applies a partial update to an event. When the label changes
// without an explicit color, the color is recomputed from the new label.
func (e *eventServiceImpl) UpdateEvent(ctx context.Context, id int64, update EventUpdate) (*domain.Event, error) {
	if err := e.eventValidator.ValidateEventID(id); err != nil {
		return nil, errors.NewValidationError("invalid event ID", err)
	}

	dbEvent, err := e.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.StartDate != nil {
		dbEvent.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		dbEvent.EndDate = *update.EndDate
	}
	if update.Label != nil {
		dbEvent.Label = *update.Label
		if update.Color == nil {
			dbEvent.Color = domain.ColorForLabel(*update.Label)
		}
	}
	if update.Color != nil {
		dbEvent.Color = *update.Color
	}

	if err := e.eventValidator.ValidateDateRange(dbEvent.StartDate, dbEvent.EndDate); err != nil {
		return nil, errors.NewValidationError("invalid event dates", err)
	}

	if err := e.repo.UpdateEvent(ctx, dbEvent); err != nil {
		return nil, err
	}

	domainEvent := e.mapper.Event.FromDatabase(*dbEvent)
	return &domainEvent, nil
}

// DeleteEvent deletes an event by its ID and returns the deleted event
func (e *eventServiceImpl) DeleteEvent(ctx context.Context, id int64) (*domain.Event, error) {
	if err := e.eventValidator.ValidateEventID(id); err != nil {
		return nil, errors.NewValidationError("invalid event ID", err)
	}

	dbEvent, err := e.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := e.repo.DeleteEvent(ctx, id); err != nil {
		return nil, err
	}

	domainEvent := e.mapper.Event.FromDatabase(*dbEvent)
	return &domainEvent, nil
}
