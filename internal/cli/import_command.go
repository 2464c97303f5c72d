package cli

import (
	"context"
)

// ImportCommand handles the import command
type ImportCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewImportCommand creates a new import command handler
func NewImportCommand(app *App) *ImportCommand {
	return &ImportCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the import, replacing all stored tasks and events with the
// contents of the configured schedule source.
func (c *ImportCommand) Execute(ctx context.Context) error {
	summary, err := c.app.api.Import(ctx)
	if err != nil {
		return c.errorHandler.Handle("import schedule", err)
	}

	c.app.printf("%s\n", summary.Message)
	return nil
}
