package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline-tracker/internal/api"
	"timeline-tracker/internal/repository/sqlite"
	"timeline-tracker/internal/services"
	"timeline-tracker/internal/source"
)

const testScheduleCSV = `Category,Task,Nov 14,Nov 21,Nov 28
Sitework,Clear lot,Begins,Begins,Complete
Foundation,Pour footings,,,Pour
`

func setupTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "schedule.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(testScheduleCSV), 0o644))

	repo, err := sqlite.New(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
	})

	var buf bytes.Buffer
	apiInstance := api.New(repo, source.NewCSVSource(csvPath), zerolog.Nop())
	return NewAppWithWriter(apiInstance, &buf), &buf
}

func TestImportCommand(t *testing.T) {
	app, buf := setupTestApp(t)

	err := NewImportCommand(app).Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "imported 2 tasks and 3 events")
}

func TestShowCommand(t *testing.T) {
	app, buf := setupTestApp(t)
	ctx := context.Background()

	require.NoError(t, NewImportCommand(app).Execute(ctx))
	buf.Reset()

	err := NewShowCommand(app).Execute(ctx)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Sitework")
	assert.Contains(t, out, "Clear lot")
	// header years come from the current date, so match month-day only
	assert.Contains(t, out, "-11-14 .. ")
	assert.Contains(t, out, "-11-21")
	assert.Contains(t, out, "Complete")
}

func TestShowCommand_Empty(t *testing.T) {
	app, buf := setupTestApp(t)

	err := NewShowCommand(app).Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No tasks found")
}

func TestTaskCommand(t *testing.T) {
	app, buf := setupTestApp(t)
	ctx := context.Background()
	handler := NewTaskCommand(app)

	require.NoError(t, handler.Add(ctx, "Roofing", "Install shingles", 2))
	assert.Contains(t, buf.String(), "Roofing / Install shingles")

	buf.Reset()
	require.NoError(t, handler.Update(ctx, 1, services.TaskUpdate{TaskName: strPtr("Install metal roof")}))
	assert.Contains(t, buf.String(), "Install metal roof")

	buf.Reset()
	require.NoError(t, handler.List(ctx))
	assert.Contains(t, buf.String(), "Install metal roof")

	buf.Reset()
	require.NoError(t, handler.Remove(ctx, 1))
	assert.Contains(t, buf.String(), "Removed task [1]")

	err := handler.Remove(ctx, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to remove task")
}

func TestEventCommand(t *testing.T) {
	app, buf := setupTestApp(t)
	ctx := context.Background()
	require.NoError(t, NewTaskCommand(app).Add(ctx, "Concrete", "Pour slab", 0))

	handler := NewEventCommand(app)

	buf.Reset()
	require.NoError(t, handler.Add(ctx, 1, "2025-11-14", "2025-11-21", "Pour Begins", ""))
	assert.Contains(t, buf.String(), "2025-11-14 .. 2025-11-21")

	err := handler.Add(ctx, 1, "not-a-date", "", "x", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add event")

	buf.Reset()
	require.NoError(t, handler.Update(ctx, 1, "", "", strPtr("Pour Complete"), nil))
	assert.Contains(t, buf.String(), "Pour Complete")

	buf.Reset()
	require.NoError(t, handler.List(ctx))
	assert.Contains(t, buf.String(), "task 1")

	buf.Reset()
	require.NoError(t, handler.Remove(ctx, 1))
	assert.Contains(t, buf.String(), "Removed event [1]")
}

func TestCategoryCommand(t *testing.T) {
	app, buf := setupTestApp(t)
	ctx := context.Background()

	require.NoError(t, NewImportCommand(app).Execute(ctx))
	handler := NewCategoryCommand(app)

	buf.Reset()
	require.NoError(t, handler.List(ctx))
	assert.Contains(t, buf.String(), "Sitework")

	buf.Reset()
	require.NoError(t, handler.Rename(ctx, "Sitework", "Site Prep"))
	assert.Contains(t, buf.String(), "1 tasks updated")

	buf.Reset()
	require.NoError(t, handler.Remove(ctx, "Site Prep"))
	assert.Contains(t, buf.String(), "1 tasks deleted")

	err := handler.Remove(ctx, "Site Prep")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to remove category")
}

func TestEventTypeCommand(t *testing.T) {
	app, buf := setupTestApp(t)
	ctx := context.Background()
	handler := NewEventTypeCommand(app)

	require.NoError(t, handler.Add(ctx, "Permit Approved", "#33691e"))
	assert.Contains(t, buf.String(), "Permit Approved")

	err := handler.Add(ctx, "Bad Color", "green")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add event type")

	buf.Reset()
	require.NoError(t, handler.Update(ctx, 1, services.EventTypeUpdate{Color: strPtr("#ff8f00")}))
	assert.Contains(t, buf.String(), "#ff8f00")

	buf.Reset()
	require.NoError(t, handler.List(ctx))
	assert.Contains(t, buf.String(), "Permit Approved")

	buf.Reset()
	require.NoError(t, handler.Remove(ctx, 1))
	assert.Contains(t, buf.String(), "Removed event type [1]")
}

func strPtr(s string) *string { return &s }
