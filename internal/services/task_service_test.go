package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline-tracker/internal/errors"
)

func TestTaskService_CreateTask(t *testing.T) {
	tests := []struct {
		name      string
		category  string
		taskName  string
		sortOrder int
		wantErr   bool
		errType   errors.ErrorType
	}{
		{
			name:      "valid task",
			category:  "Electrical",
			taskName:  "Rough-in wiring",
			sortOrder: 3,
		},
		{
			name:     "trims surrounding whitespace",
			category: "  Plumbing  ",
			taskName: "  Set fixtures  ",
		},
		{
			name:     "empty category",
			category: "",
			taskName: "Set fixtures",
			wantErr:  true,
			errType:  errors.ErrorTypeValidation,
		},
		{
			name:     "empty task name",
			category: "Plumbing",
			taskName: "   ",
			wantErr:  true,
			errType:  errors.ErrorTypeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := setupTestRepo(t)
			service := NewTaskService(repo)

			task, err := service.CreateTask(context.Background(), tt.category, tt.taskName, tt.sortOrder)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, tt.errType))
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, task.ID)
			assert.Equal(t, tt.sortOrder, task.SortOrder)
			assert.NotContains(t, task.Category, " Plumbing")
			assert.False(t, task.CreatedAt.IsZero())
		})
	}
}

func TestTaskService_GetTask(t *testing.T) {
	repo := setupTestRepo(t)
	service := NewTaskService(repo)
	seeded := seedTask(t, repo, "Framing", "Frame second floor", 0)

	task, err := service.GetTask(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Framing", task.Category)
	assert.Equal(t, "Frame second floor", task.TaskName)

	_, err = service.GetTask(context.Background(), 9999)
	assert.True(t, errors.IsNotFound(err))

	_, err = service.GetTask(context.Background(), 0)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestTaskService_ListTasks(t *testing.T) {
	repo := setupTestRepo(t)
	service := NewTaskService(repo)

	seedTask(t, repo, "Sitework", "Grade lot", 2)
	seedTask(t, repo, "Sitework", "Clear lot", 0)
	seedTask(t, repo, "Foundation", "Pour footings", 1)

	tasks, err := service.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Clear lot", tasks[0].TaskName)
	assert.Equal(t, "Pour footings", tasks[1].TaskName)
	assert.Equal(t, "Grade lot", tasks[2].TaskName)
}

func TestTaskService_UpdateTask(t *testing.T) {
	repo := setupTestRepo(t)
	service := NewTaskService(repo)
	seeded := seedTask(t, repo, "Roofing", "Install shingles", 4)

	updated, err := service.UpdateTask(context.Background(), seeded.ID, TaskUpdate{
		TaskName: strPtr("Install metal roof"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Install metal roof", updated.TaskName)
	assert.Equal(t, "Roofing", updated.Category)
	assert.Equal(t, 4, updated.SortOrder)

	updated, err = service.UpdateTask(context.Background(), seeded.ID, TaskUpdate{
		Category:  strPtr("Exterior"),
		SortOrder: intPtr(7),
	})
	require.NoError(t, err)
	assert.Equal(t, "Exterior", updated.Category)
	assert.Equal(t, 7, updated.SortOrder)

	_, err = service.UpdateTask(context.Background(), seeded.ID, TaskUpdate{
		TaskName: strPtr("   "),
	})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))

	_, err = service.UpdateTask(context.Background(), 9999, TaskUpdate{TaskName: strPtr("x")})
	assert.True(t, errors.IsNotFound(err))
}

func TestTaskService_DeleteTask(t *testing.T) {
	repo := setupTestRepo(t)
	service := NewTaskService(repo)
	seeded := seedTask(t, repo, "Drywall", "Hang drywall", 0)
	seedEvent(t, repo, seeded.ID, testDate(2025, 11, 14), testDate(2025, 11, 21), "Begins")
	seedEvent(t, repo, seeded.ID, testDate(2025, 11, 28), testDate(2025, 11, 28), "Complete")

	deleted, err := service.DeleteTask(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hang drywall", deleted.TaskName)

	_, err = service.GetTask(context.Background(), seeded.ID)
	assert.True(t, errors.IsNotFound(err))

	// cascade removed the events too
	events, err := repo.ListEventsByTask(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Empty(t, events)

	_, err = service.DeleteTask(context.Background(), seeded.ID)
	assert.True(t, errors.IsNotFound(err))
}
