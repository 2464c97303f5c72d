package cli

import (
	"context"
	"time"

	"timeline-tracker/internal/repository/sqlite"
	"timeline-tracker/internal/services"
)

// EventCommand handles the event subcommands
type EventCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewEventCommand creates a new event command handler
func NewEventCommand(app *App) *EventCommand {
	return &EventCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Add creates a new event on an existing task. An empty end argument makes a
// single-day event; an empty color derives one from the label.
func (c *EventCommand) Add(ctx context.Context, taskID int64, startArg, endArg, label, color string) error {
	start, err := parseDate(startArg)
	if err != nil {
		return c.errorHandler.Handle("add event", err)
	}

	var end time.Time
	if endArg != "" {
		end, err = parseDate(endArg)
		if err != nil {
			return c.errorHandler.Handle("add event", err)
		}
	}

	event, err := c.app.api.CreateEvent(ctx, taskID, start, end, label, color)
	if err != nil {
		return c.errorHandler.Handle("add event", err)
	}

	c.app.printf("Added event [%d] %s (%s .. %s)\n", event.ID, event.Label,
		sqlite.FormatDateForDB(event.StartDate), sqlite.FormatDateForDB(event.EndDate))
	return nil
}

// Update applies the given patch to an event
func (c *EventCommand) Update(ctx context.Context, id int64, startArg, endArg string, label, color *string) error {
	update := services.EventUpdate{Label: label, Color: color}

	if startArg != "" {
		start, err := parseDate(startArg)
		if err != nil {
			return c.errorHandler.Handle("update event", err)
		}
		update.StartDate = &start
	}
	if endArg != "" {
		end, err := parseDate(endArg)
		if err != nil {
			return c.errorHandler.Handle("update event", err)
		}
		update.EndDate = &end
	}

	event, err := c.app.api.UpdateEvent(ctx, id, update)
	if err != nil {
		return c.errorHandler.Handle("update event", err)
	}

	c.app.printf("Updated event [%d] %s (%s .. %s)\n", event.ID, event.Label,
		sqlite.FormatDateForDB(event.StartDate), sqlite.FormatDateForDB(event.EndDate))
	return nil
}

// Remove deletes an event
func (c *EventCommand) Remove(ctx context.Context, id int64) error {
	event, err := c.app.api.DeleteEvent(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("remove event", err)
	}

	c.app.printf("Removed event [%d] %s\n", event.ID, event.Label)
	return nil
}

// List prints all events ordered by start date
func (c *EventCommand) List(ctx context.Context) error {
	events, err := c.app.api.ListEvents(ctx)
	if err != nil {
		return c.errorHandler.Handle("list events", err)
	}

	if len(events) == 0 {
		c.app.printf("No events found.\n")
		return nil
	}

	for _, event := range events {
		c.app.printf("[%d] task %d  %s .. %s  %s (%s)\n", event.ID, event.TaskID,
			sqlite.FormatDateForDB(event.StartDate), sqlite.FormatDateForDB(event.EndDate),
			event.Label, event.Color)
	}
	return nil
}
