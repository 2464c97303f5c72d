package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"timeline-tracker/internal/repository/sqlite"
)

func setupTestRepo(t *testing.T) *sqlite.SQLiteRepository {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	repo, err := sqlite.New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

func testDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedTask(t *testing.T, repo *sqlite.SQLiteRepository, category, name string, sortOrder int) *sqlite.Task {
	t.Helper()

	task := &sqlite.Task{Category: category, TaskName: name, SortOrder: sortOrder}
	require.NoError(t, repo.CreateTask(context.Background(), task))
	return task
}

func seedEvent(t *testing.T, repo *sqlite.SQLiteRepository, taskID int64, start, end time.Time, label string) *sqlite.Event {
	t.Helper()

	event := &sqlite.Event{
		TaskID:    taskID,
		StartDate: start,
		EndDate:   end,
		Label:     label,
		Color:     "#2e7d32",
	}
	require.NoError(t, repo.CreateEvent(context.Background(), event))
	return event
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }
