package cli

import (
	"context"

	"timeline-tracker/internal/services"
)

// EventTypeCommand handles the eventtype subcommands
type EventTypeCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewEventTypeCommand creates a new eventtype command handler
func NewEventTypeCommand(app *App) *EventTypeCommand {
	return &EventTypeCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Add creates a new label/color preset
func (c *EventTypeCommand) Add(ctx context.Context, label, color string) error {
	preset, err := c.app.api.CreateEventType(ctx, label, color)
	if err != nil {
		return c.errorHandler.Handle("add event type", err)
	}

	c.app.printf("Added event type [%d] %s (%s)\n", preset.ID, preset.Label, preset.Color)
	return nil
}

// Update applies the given patch to a preset
func (c *EventTypeCommand) Update(ctx context.Context, id int64, update services.EventTypeUpdate) error {
	preset, err := c.app.api.UpdateEventType(ctx, id, update)
	if err != nil {
		return c.errorHandler.Handle("update event type", err)
	}

	c.app.printf("Updated event type [%d] %s (%s)\n", preset.ID, preset.Label, preset.Color)
	return nil
}

// Remove deletes a preset. Events that copied its label and color keep them.
func (c *EventTypeCommand) Remove(ctx context.Context, id int64) error {
	preset, err := c.app.api.DeleteEventType(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("remove event type", err)
	}

	c.app.printf("Removed event type [%d] %s\n", preset.ID, preset.Label)
	return nil
}

// List prints all presets
func (c *EventTypeCommand) List(ctx context.Context) error {
	presets, err := c.app.api.ListEventTypes(ctx)
	if err != nil {
		return c.errorHandler.Handle("list event types", err)
	}

	if len(presets) == 0 {
		c.app.printf("No event types found.\n")
		return nil
	}

	for _, preset := range presets {
		c.app.printf("[%d] %s (%s)\n", preset.ID, preset.Label, preset.Color)
	}
	return nil
}
