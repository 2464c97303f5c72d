package domain

import (
	"timeline-tracker/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:        domainTask.ID,
		Category:  domainTask.Category,
		TaskName:  domainTask.TaskName,
		SortOrder: domainTask.SortOrder,
		CreatedAt: domainTask.CreatedAt,
		UpdatedAt: domainTask.UpdatedAt,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:        dbTask.ID,
		Category:  dbTask.Category,
		TaskName:  dbTask.TaskName,
		SortOrder: dbTask.SortOrder,
		CreatedAt: dbTask.CreatedAt,
		UpdatedAt: dbTask.UpdatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []*Task {
	domainTasks := make([]*Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTask := m.FromDatabase(*task)
		domainTasks[i] = &domainTask
	}
	return domainTasks
}

// EventMapper handles conversion between domain and database Event models.
type EventMapper struct{}

// NewEventMapper creates a new EventMapper instance.
func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

// ToDatabase converts a domain Event to a database Event.
func (m *EventMapper) ToDatabase(domainEvent Event) sqlite.Event {
	return sqlite.Event{
		ID:        domainEvent.ID,
		TaskID:    domainEvent.TaskID,
		StartDate: domainEvent.StartDate,
		EndDate:   domainEvent.EndDate,
		Label:     domainEvent.Label,
		Color:     domainEvent.Color,
		CreatedAt: domainEvent.CreatedAt,
		UpdatedAt: domainEvent.UpdatedAt,
	}
}

// FromDatabase converts a database Event to a domain Event.
func (m *EventMapper) FromDatabase(dbEvent sqlite.Event) Event {
	return Event{
		ID:        dbEvent.ID,
		TaskID:    dbEvent.TaskID,
		StartDate: dbEvent.StartDate,
		EndDate:   dbEvent.EndDate,
		Label:     dbEvent.Label,
		Color:     dbEvent.Color,
		CreatedAt: dbEvent.CreatedAt,
		UpdatedAt: dbEvent.UpdatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Events to domain Events.
func (m *EventMapper) FromDatabaseSlice(dbEvents []*sqlite.Event) []*Event {
	domainEvents := make([]*Event, len(dbEvents))
	for i, event := range dbEvents {
		domainEvent := m.FromDatabase(*event)
		domainEvents[i] = &domainEvent
	}
	return domainEvents
}

// EventTypeMapper handles conversion between domain and database
// CustomEventType models.
type EventTypeMapper struct{}

// NewEventTypeMapper creates a new EventTypeMapper instance.
func NewEventTypeMapper() *EventTypeMapper {
	return &EventTypeMapper{}
}

// ToDatabase converts a domain CustomEventType to a database CustomEventType.
func (m *EventTypeMapper) ToDatabase(domainType CustomEventType) sqlite.CustomEventType {
	return sqlite.CustomEventType{
		ID:        domainType.ID,
		Label:     domainType.Label,
		Color:     domainType.Color,
		CreatedAt: domainType.CreatedAt,
	}
}

// FromDatabase converts a database CustomEventType to a domain CustomEventType.
func (m *EventTypeMapper) FromDatabase(dbType sqlite.CustomEventType) CustomEventType {
	return CustomEventType{
		ID:        dbType.ID,
		Label:     dbType.Label,
		Color:     dbType.Color,
		CreatedAt: dbType.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database CustomEventTypes to domain models.
func (m *EventTypeMapper) FromDatabaseSlice(dbTypes []*sqlite.CustomEventType) []*CustomEventType {
	domainTypes := make([]*CustomEventType, len(dbTypes))
	for i, eventType := range dbTypes {
		domainType := m.FromDatabase(*eventType)
		domainTypes[i] = &domainType
	}
	return domainTypes
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task      *TaskMapper
	Event     *EventMapper
	EventType *EventTypeMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:      NewTaskMapper(),
		Event:     NewEventMapper(),
		EventType: NewEventTypeMapper(),
	}
}
