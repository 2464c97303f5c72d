package cli

import (
	"context"

	"timeline-tracker/internal/services"
)

// TaskCommand handles the task subcommands
type TaskCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewTaskCommand creates a new task command handler
func NewTaskCommand(app *App) *TaskCommand {
	return &TaskCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Add creates a new task in the given category
func (c *TaskCommand) Add(ctx context.Context, category, name string, sortOrder int) error {
	task, err := c.app.api.CreateTask(ctx, category, name, sortOrder)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	c.app.printf("Added task [%d] %s / %s\n", task.ID, task.Category, task.TaskName)
	return nil
}

// Update applies the given patch to a task
func (c *TaskCommand) Update(ctx context.Context, id int64, update services.TaskUpdate) error {
	task, err := c.app.api.UpdateTask(ctx, id, update)
	if err != nil {
		return c.errorHandler.Handle("update task", err)
	}

	c.app.printf("Updated task [%d] %s / %s\n", task.ID, task.Category, task.TaskName)
	return nil
}

// Remove deletes a task and its events
func (c *TaskCommand) Remove(ctx context.Context, id int64) error {
	task, err := c.app.api.DeleteTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("remove task", err)
	}

	c.app.printf("Removed task [%d] %s / %s\n", task.ID, task.Category, task.TaskName)
	return nil
}

// List prints all tasks in display order
func (c *TaskCommand) List(ctx context.Context) error {
	tasks, err := c.app.api.ListTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	if len(tasks) == 0 {
		c.app.printf("No tasks found.\n")
		return nil
	}

	for _, task := range tasks {
		c.app.printf("[%d] %s / %s (order %d)\n", task.ID, task.Category, task.TaskName, task.SortOrder)
	}
	return nil
}
