package services

import (
	"context"

	"timeline-tracker/internal/domain"
	"timeline-tracker/internal/errors"
	"timeline-tracker/internal/repository/sqlite"
	"timeline-tracker/internal/validation"
)

// eventTypeServiceImpl implements the EventTypeService interface
type eventTypeServiceImpl struct {
	repo           sqlite.Repository
	mapper         *domain.Mapper
	eventValidator *validation.EventValidator
}

// NewEventTypeService creates a new EventTypeService instance
func NewEventTypeService(repo sqlite.Repository) EventTypeService {
	return &eventTypeServiceImpl{
		repo:           repo,
		mapper:         domain.NewMapper(),
		eventValidator: validation.NewEventValidator(),
	}
}

// CreateEventType creates a new label/color preset
func (s *eventTypeServiceImpl) CreateEventType(ctx context.Context, label, color string) (*domain.CustomEventType, error) {
	if err := s.eventValidator.ValidateEventTypeForCreation(label, color); err != nil {
		return nil, errors.NewValidationError("invalid event type", err)
	}

	dbType := &sqlite.CustomEventType{Label: label, Color: color}
	if err := s.repo.CreateEventType(ctx, dbType); err != nil {
		return nil, err
	}

	domainType := s.mapper.EventType.FromDatabase(*dbType)
	return &domainType, nil
}

// GetEventType retrieves a preset by its ID
func (s *eventTypeServiceImpl) GetEventType(ctx context.Context, id int64) (*domain.CustomEventType, error) {
	dbType, err := s.repo.GetEventType(ctx, id)
	if err != nil {
		return nil, err
	}

	domainType := s.mapper.EventType.FromDatabase(*dbType)
	return &domainType, nil
}

// ListEventTypes retrieves all presets
func (s *eventTypeServiceImpl) ListEventTypes(ctx context.Context) ([]*domain.CustomEventType, error) {
	dbTypes, err := s.repo.ListEventTypes(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.EventType.FromDatabaseSlice(dbTypes), nil
}

// UpdateEventType applies a partial update to a preset. Existing events keep
// whatever label and color they copied from it.
func (s *eventTypeServiceImpl) UpdateEventType(ctx context.Context, id int64, update EventTypeUpdate) (*domain.CustomEventType, error) {
	dbType, err := s.repo.GetEventType(ctx, id)
	if err != nil {
		return nil, err
	}

	validator := validation.NewValidator()
	if update.Label != nil {
		if !validator.IsNonEmptyString(*update.Label) {
			return nil, errors.NewInvalidInputError("label", *update.Label, "must not be empty")
		}
		dbType.Label = *update.Label
	}
	if update.Color != nil {
		if !validator.IsValidHexColor(*update.Color) {
			return nil, errors.NewInvalidInputError("color", *update.Color, "must be a #rrggbb hex color")
		}
		dbType.Color = *update.Color
	}

	if err := s.repo.UpdateEventType(ctx, dbType); err != nil {
		return nil, err
	}

	domainType := s.mapper.EventType.FromDatabase(*dbType)
	return &domainType, nil
}

// DeleteEventType deletes a preset by its ID and returns the deleted preset
func (s *eventTypeServiceImpl) DeleteEventType(ctx context.Context, id int64) (*domain.CustomEventType, error) {
	dbType, err := s.repo.GetEventType(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteEventType(ctx, id); err != nil {
		return nil, err
	}

	domainType := s.mapper.EventType.FromDatabase(*dbType)
	return &domainType, nil
}
