package services

import (
	"context"

	"timeline-tracker/internal/domain"
	"timeline-tracker/internal/errors"
	"timeline-tracker/internal/repository/sqlite"
	"timeline-tracker/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// CreateTask creates a new task in the given category
func (t *taskServiceImpl) CreateTask(ctx context.Context, category, name string, sortOrder int) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskForCreation(category, name); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}

	validator := validation.NewValidator()
	dbTask := &sqlite.Task{
		Category:  validator.TrimmedString(category),
		TaskName:  validator.TrimmedString(name),
		SortOrder: sortOrder,
	}

	if err := t.repo.CreateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// ListTasks retrieves all tasks in display order
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// UpdateTask applies a partial update to a task and refreshes its update
// timestamp. Fields left nil in the update are unchanged.
func (t *taskServiceImpl) UpdateTask(ctx context.Context, id int64, update TaskUpdate) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	validator := validation.NewValidator()
	if update.Category != nil {
		if !validator.IsNonEmptyString(*update.Category) {
			return nil, errors.NewInvalidInputError("category", *update.Category, "must not be empty")
		}
		dbTask.Category = validator.TrimmedString(*update.Category)
	}
	if update.TaskName != nil {
		if !validator.IsNonEmptyString(*update.TaskName) {
			return nil, errors.NewInvalidInputError("task_name", *update.TaskName, "must not be empty")
		}
		dbTask.TaskName = validator.TrimmedString(*update.TaskName)
	}
	if update.SortOrder != nil {
		dbTask.SortOrder = *update.SortOrder
	}

	if err := t.repo.UpdateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// DeleteTask deletes a task and cascades its events first, so no event is
// ever left referencing a missing task. Returns the deleted task.
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := t.repo.DeleteEventsByTask(ctx, id); err != nil {
		return nil, err
	}
	if err := t.repo.DeleteTask(ctx, id); err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}
