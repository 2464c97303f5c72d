package cli

import (
	"context"
)

// CategoryCommand handles the category subcommands
type CategoryCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewCategoryCommand creates a new category command handler
func NewCategoryCommand(app *App) *CategoryCommand {
	return &CategoryCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// List prints the distinct categories in display order
func (c *CategoryCommand) List(ctx context.Context) error {
	categories, err := c.app.api.ListCategories(ctx)
	if err != nil {
		return c.errorHandler.Handle("list categories", err)
	}

	if len(categories) == 0 {
		c.app.printf("No categories found.\n")
		return nil
	}

	for _, category := range categories {
		c.app.printf("%s\n", category)
	}
	return nil
}

// Rename moves every task from oldName to newName
func (c *CategoryCommand) Rename(ctx context.Context, oldName, newName string) error {
	count, err := c.app.api.RenameCategory(ctx, oldName, newName)
	if err != nil {
		return c.errorHandler.Handle("rename category", err)
	}

	c.app.printf("Renamed category %q to %q (%d tasks updated)\n", oldName, newName, count)
	return nil
}

// Remove deletes every task in the category along with their events
func (c *CategoryCommand) Remove(ctx context.Context, name string) error {
	count, err := c.app.api.DeleteCategory(ctx, name)
	if err != nil {
		return c.errorHandler.Handle("remove category", err)
	}

	c.app.printf("Removed category %q (%d tasks deleted)\n", name, count)
	return nil
}
