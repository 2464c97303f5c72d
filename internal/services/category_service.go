package services

import (
	"context"

	"timeline-tracker/internal/errors"
	"timeline-tracker/internal/repository/sqlite"
	"timeline-tracker/internal/validation"
)

// categoryServiceImpl implements the CategoryService interface. A category
// is nothing but the set of tasks carrying its exact string, so renames and
// deletes are bulk task operations behind one interface.
type categoryServiceImpl struct {
	repo          sqlite.Repository
	taskValidator *validation.TaskValidator
}

// NewCategoryService creates a new CategoryService instance
func NewCategoryService(repo sqlite.Repository) CategoryService {
	return &categoryServiceImpl{
		repo:          repo,
		taskValidator: validation.NewTaskValidator(),
	}
}

// ListCategories returns the distinct task categories in display order
// (first appearance when walking tasks by sort order).
func (c *categoryServiceImpl) ListCategories(ctx context.Context) ([]string, error) {
	tasks, err := c.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var categories []string
	for _, task := range tasks {
		if !seen[task.Category] {
			seen[task.Category] = true
			categories = append(categories, task.Category)
		}
	}
	return categories, nil
}

// RenameCategory moves every task from oldName to newName and returns the
// number of tasks updated. Renaming a category no task carries is not found.
func (c *categoryServiceImpl) RenameCategory(ctx context.Context, oldName, newName string) (int64, error) {
	if err := c.taskValidator.ValidateCategoryName(oldName); err != nil {
		return 0, errors.NewValidationError("invalid category name", err)
	}
	if err := c.taskValidator.ValidateCategoryName(newName); err != nil {
		return 0, errors.NewValidationError("invalid category name", err)
	}

	return c.repo.RenameCategory(ctx, oldName, newName)
}

// DeleteCategory removes every task in the category, cascading their events
// first, and returns the number of tasks removed.
func (c *categoryServiceImpl) DeleteCategory(ctx context.Context, name string) (int64, error) {
	if err := c.taskValidator.ValidateCategoryName(name); err != nil {
		return 0, errors.NewValidationError("invalid category name", err)
	}

	if _, err := c.repo.DeleteEventsByCategory(ctx, name); err != nil {
		return 0, err
	}

	return c.repo.DeleteTasksByCategory(ctx, name)
}
