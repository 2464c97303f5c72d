package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"timeline-tracker/internal/errors"
	"timeline-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Task operations
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	ListTasksByCategory(ctx context.Context, category string) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id int64) error
	DeleteAllTasks(ctx context.Context) error

	// Event operations
	CreateEvent(ctx context.Context, event *Event) error
	GetEvent(ctx context.Context, id int64) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	ListEventsByTask(ctx context.Context, taskID int64) ([]*Event, error)
	UpdateEvent(ctx context.Context, event *Event) error
	DeleteEvent(ctx context.Context, id int64) error
	DeleteEventsByTask(ctx context.Context, taskID int64) (int64, error)
	DeleteEventsByCategory(ctx context.Context, category string) (int64, error)
	DeleteAllEvents(ctx context.Context) error

	// Category operations (categories are the distinct task category strings)
	RenameCategory(ctx context.Context, oldName, newName string) (int64, error)
	DeleteTasksByCategory(ctx context.Context, category string) (int64, error)

	// Custom event type operations
	CreateEventType(ctx context.Context, eventType *CustomEventType) error
	GetEventType(ctx context.Context, id int64) (*CustomEventType, error)
	ListEventTypes(ctx context.Context) ([]*CustomEventType, error)
	UpdateEventType(ctx context.Context, eventType *CustomEventType) error
	DeleteEventType(ctx context.Context, id int64) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	query := `
	INSERT INTO tasks (category, task_name, sort_order, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.Category, task.TaskName, task.SortOrder,
		FormatTimeForDB(task.CreatedAt), FormatTimeForDB(task.UpdatedAt))
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `
	SELECT id, category, task_name, sort_order, created_at, updated_at
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks in display order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `
	SELECT id, category, task_name, sort_order, created_at, updated_at
	FROM tasks
	ORDER BY sort_order ASC, id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// ListTasksByCategory retrieves all tasks carrying the given category
func (r *SQLiteRepository) ListTasksByCategory(ctx context.Context, category string) ([]*Task, error) {
	query := `
	SELECT id, category, task_name, sort_order, created_at, updated_at
	FROM tasks
	WHERE category = ?
	ORDER BY sort_order ASC, id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", category)
}

// UpdateTask updates an existing task and refreshes its update timestamp
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	task.UpdatedAt = time.Now().UTC()

	query := `
	UPDATE tasks
	SET category = ?, task_name = ?, sort_order = ?, updated_at = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID),
		task.Category, task.TaskName, task.SortOrder,
		FormatTimeForDB(task.UpdatedAt), task.ID)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}

// DeleteAllTasks deletes every task row
func (r *SQLiteRepository) DeleteAllTasks(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return HandleDatabaseError("delete all tasks", err)
	}
	return nil
}

// CreateEvent creates a new event
func (r *SQLiteRepository) CreateEvent(ctx context.Context, event *Event) error {
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	query := `
	INSERT INTO events (task_id, start_date, end_date, label, color, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		event.TaskID, FormatDateForDB(event.StartDate), FormatDateForDB(event.EndDate),
		event.Label, event.Color,
		FormatTimeForDB(event.CreatedAt), FormatTimeForDB(event.UpdatedAt))
	if err != nil {
		return err
	}

	event.ID = id
	return nil
}

// GetEvent retrieves an event by ID
func (r *SQLiteRepository) GetEvent(ctx context.Context, id int64) (*Event, error) {
	query := `
	SELECT id, task_id, start_date, end_date, label, color, created_at, updated_at
	FROM events
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanEvent, "event", fmt.Sprintf("%d", id), id)
}

// ListEvents retrieves all events ordered by start date
func (r *SQLiteRepository) ListEvents(ctx context.Context) ([]*Event, error) {
	query := `
	SELECT id, task_id, start_date, end_date, label, color, created_at, updated_at
	FROM events
	ORDER BY start_date ASC, id ASC`

	return QueryMultiple(ctx, r.db, query, ScanEvents, "events")
}

// ListEventsByTask retrieves all events owned by the given task
func (r *SQLiteRepository) ListEventsByTask(ctx context.Context, taskID int64) ([]*Event, error) {
	query := `
	SELECT id, task_id, start_date, end_date, label, color, created_at, updated_at
	FROM events
	WHERE task_id = ?
	ORDER BY start_date ASC, id ASC`

	return QueryMultiple(ctx, r.db, query, ScanEvents, "events", taskID)
}

// UpdateEvent updates an existing event and refreshes its update timestamp
func (r *SQLiteRepository) UpdateEvent(ctx context.Context, event *Event) error {
	event.UpdatedAt = time.Now().UTC()

	query := `
	UPDATE events
	SET task_id = ?, start_date = ?, end_date = ?, label = ?, color = ?, updated_at = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "event", fmt.Sprintf("%d", event.ID),
		event.TaskID, FormatDateForDB(event.StartDate), FormatDateForDB(event.EndDate),
		event.Label, event.Color, FormatTimeForDB(event.UpdatedAt), event.ID)
}

// DeleteEvent deletes an event by ID
func (r *SQLiteRepository) DeleteEvent(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "event", fmt.Sprintf("%d", id), id)
}

// DeleteEventsByTask deletes all events owned by the given task and returns
// the number of events removed. Removing zero events is not an error here;
// a task with no schedule yet is a valid state.
func (r *SQLiteRepository) DeleteEventsByTask(ctx context.Context, taskID int64) (int64, error) {
	query := `DELETE FROM events WHERE task_id = ?`
	return ExecuteCountingRows(ctx, r.db, query, taskID)
}

// DeleteEventsByCategory deletes all events owned by any task in the category
func (r *SQLiteRepository) DeleteEventsByCategory(ctx context.Context, category string) (int64, error) {
	query := `DELETE FROM events WHERE task_id IN (SELECT id FROM tasks WHERE category = ?)`
	return ExecuteCountingRows(ctx, r.db, query, category)
}

// DeleteAllEvents deletes every event row
func (r *SQLiteRepository) DeleteAllEvents(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return HandleDatabaseError("delete all events", err)
	}
	return nil
}

// RenameCategory updates every task carrying oldName to carry newName and
// returns the number of tasks updated. A category with no tasks does not
// exist, so renaming it is a not found error.
func (r *SQLiteRepository) RenameCategory(ctx context.Context, oldName, newName string) (int64, error) {
	query := `UPDATE tasks SET category = ?, updated_at = ? WHERE category = ?`
	count, err := ExecuteCountingRows(ctx, r.db, query, newName, FormatTimeForDB(time.Now().UTC()), oldName)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, errors.NewNotFoundError("category", oldName)
	}
	return count, nil
}

// DeleteTasksByCategory deletes every task carrying the category and returns
// the number removed. Callers must delete the category's events first.
func (r *SQLiteRepository) DeleteTasksByCategory(ctx context.Context, category string) (int64, error) {
	query := `DELETE FROM tasks WHERE category = ?`
	count, err := ExecuteCountingRows(ctx, r.db, query, category)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, errors.NewNotFoundError("category", category)
	}
	return count, nil
}

// CreateEventType creates a new custom event type
func (r *SQLiteRepository) CreateEventType(ctx context.Context, eventType *CustomEventType) error {
	eventType.CreatedAt = time.Now().UTC()

	query := `INSERT INTO custom_event_types (label, color, created_at) VALUES (?, ?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		eventType.Label, eventType.Color, FormatTimeForDB(eventType.CreatedAt))
	if err != nil {
		return err
	}

	eventType.ID = id
	return nil
}

// GetEventType retrieves a custom event type by ID
func (r *SQLiteRepository) GetEventType(ctx context.Context, id int64) (*CustomEventType, error) {
	query := `SELECT id, label, color, created_at FROM custom_event_types WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanEventType, "custom event type", fmt.Sprintf("%d", id), id)
}

// ListEventTypes retrieves all custom event types
func (r *SQLiteRepository) ListEventTypes(ctx context.Context) ([]*CustomEventType, error) {
	query := `SELECT id, label, color, created_at FROM custom_event_types ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanEventTypes, "custom event types")
}

// UpdateEventType updates an existing custom event type
func (r *SQLiteRepository) UpdateEventType(ctx context.Context, eventType *CustomEventType) error {
	query := `UPDATE custom_event_types SET label = ?, color = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "custom event type", fmt.Sprintf("%d", eventType.ID),
		eventType.Label, eventType.Color, eventType.ID)
}

// DeleteEventType deletes a custom event type by ID
func (r *SQLiteRepository) DeleteEventType(ctx context.Context, id int64) error {
	query := `DELETE FROM custom_event_types WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "custom event type", fmt.Sprintf("%d", id), id)
}
