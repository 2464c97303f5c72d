package cli

import (
	"context"

	"timeline-tracker/internal/repository/sqlite"
)

// ShowCommand handles the show command
type ShowCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute prints the assembled timeline grouped by category
func (c *ShowCommand) Execute(ctx context.Context) error {
	view, err := c.app.api.GetTimeline(ctx)
	if err != nil {
		return c.errorHandler.Handle("load timeline", err)
	}

	if len(view.Tasks) == 0 {
		c.app.printf("No tasks found. Run 'tl import' to load a schedule.\n")
		return nil
	}

	if len(view.WeekDates) > 0 {
		c.app.printf("Weeks: %s .. %s (%d columns)\n\n",
			view.WeekDates[0], view.WeekDates[len(view.WeekDates)-1], len(view.WeekDates))
	}

	for _, category := range view.Categories {
		c.app.printf("%s\n", category)
		for _, task := range view.TasksByCategory[category] {
			c.app.printf("  [%d] %s\n", task.ID, task.TaskName)
			for _, event := range view.EventsByTask[task.ID] {
				if event.IsSingleDay() {
					c.app.printf("      %s  %s (%s)\n",
						sqlite.FormatDateForDB(event.StartDate), event.Label, event.Color)
					continue
				}
				c.app.printf("      %s .. %s  %s (%s)\n",
					sqlite.FormatDateForDB(event.StartDate),
					sqlite.FormatDateForDB(event.EndDate),
					event.Label, event.Color)
			}
		}
		c.app.printf("\n")
	}

	if len(view.EventTypes) > 0 {
		c.app.printf("Event types:\n")
		for _, preset := range view.EventTypes {
			c.app.printf("  [%d] %s (%s)\n", preset.ID, preset.Label, preset.Color)
		}
	}

	return nil
}
