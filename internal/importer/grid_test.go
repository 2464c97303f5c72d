package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline-tracker/internal/errors"
)

var gridNow = time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)

func TestParseGridTooFewRows(t *testing.T) {
	_, err := ParseGrid(nil, gridNow)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeSourceData))

	_, err = ParseGrid([][]string{{"Category", "Task", "Nov 14"}}, gridNow)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeSourceData))
}

func TestParseGridNormalRows(t *testing.T) {
	rows := [][]string{
		{"Category", "Task", "Nov 14", "Nov 21", "Nov 28"},
		{"Flooring", "Install carpet", "Begins", "Begins", "Complete"},
		{"", "Demo old tile", "", "Demo", ""},
	}

	result, err := ParseGrid(rows, gridNow)
	require.NoError(t, err)
	require.Len(t, result.Tasks, 2)

	first := result.Tasks[0]
	assert.Equal(t, "Flooring", first.Category)
	assert.Equal(t, "Install carpet", first.TaskName)
	require.Len(t, first.Cells, 3)
	assert.True(t, first.Cells[0].Date.Equal(time.Date(2023, time.November, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Begins", first.Cells[0].Text)

	// Category carries forward to rows that omit it
	second := result.Tasks[1]
	assert.Equal(t, "Flooring", second.Category)
	assert.Equal(t, "Demo old tile", second.TaskName)
}

func TestParseGridMilestoneRow(t *testing.T) {
	rows := [][]string{
		{"Category", "Task", "Nov 14", "Nov 21"},
		{"FINISHES", "", "Begins", ""},
	}

	result, err := ParseGrid(rows, gridNow)
	require.NoError(t, err)
	require.Len(t, result.Tasks, 1)

	// A category-only row with date cells doubles as its own task
	assert.Equal(t, "FINISHES", result.Tasks[0].Category)
	assert.Equal(t, "FINISHES", result.Tasks[0].TaskName)
}

func TestParseGridSectionHeaderRow(t *testing.T) {
	rows := [][]string{
		{"Category", "Task", "Nov 14", "Nov 21"},
		{"Flooring", "", "", ""},
		{"", "Install carpet", "Begins", ""},
	}

	result, err := ParseGrid(rows, gridNow)
	require.NoError(t, err)
	require.Len(t, result.Tasks, 1)

	// The header row contributed no task but its category carried forward
	assert.Equal(t, "Flooring", result.Tasks[0].Category)
	assert.Equal(t, "Install carpet", result.Tasks[0].TaskName)
}

func TestParseGridSkipsBadHeadersAndRows(t *testing.T) {
	rows := [][]string{
		{"Category", "Task", "Nov 14", "not a date", "Nov 28"},
		{"", "Orphan task", "Begins", "", ""},
	}

	result, err := ParseGrid(rows, gridNow)
	require.NoError(t, err)

	assert.Equal(t, []string{"not a date"}, result.SkippedHeaders)
	assert.Empty(t, result.Tasks)
	assert.Equal(t, 1, result.SkippedRows)
}

func TestParseGridDropsUnparseableColumn(t *testing.T) {
	rows := [][]string{
		{"Category", "Task", "Nov 14", "???", "Nov 28"},
		{"Flooring", "Install carpet", "Begins", "Begins", "Begins"},
	}

	result, err := ParseGrid(rows, gridNow)
	require.NoError(t, err)
	require.Len(t, result.Tasks, 1)

	// The bad column is excluded entirely, leaving two cells
	require.Len(t, result.Tasks[0].Cells, 2)
	assert.True(t, result.Tasks[0].Cells[1].Date.Equal(time.Date(2023, time.November, 28, 0, 0, 0, 0, time.UTC)))
}

func TestParseGridRaggedRows(t *testing.T) {
	rows := [][]string{
		{"Category", "Task", "Nov 14", "Nov 21", "Nov 28"},
		{"Flooring", "Install carpet", "Begins"},
	}

	result, err := ParseGrid(rows, gridNow)
	require.NoError(t, err)
	require.Len(t, result.Tasks, 1)

	// Missing trailing cells read as empty
	require.Len(t, result.Tasks[0].Cells, 3)
	assert.Equal(t, "Begins", result.Tasks[0].Cells[0].Text)
	assert.Equal(t, "", result.Tasks[0].Cells[1].Text)
	assert.Equal(t, "", result.Tasks[0].Cells[2].Text)
}

func TestParseGridTaskWithNoCellsIsKept(t *testing.T) {
	rows := [][]string{
		{"Category", "Task", "Nov 14"},
		{"Flooring", "Install carpet", ""},
	}

	result, err := ParseGrid(rows, gridNow)
	require.NoError(t, err)
	require.Len(t, result.Tasks, 1)
	assert.Empty(t, BuildRuns(result.Tasks[0].Cells))
}
