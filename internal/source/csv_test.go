package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline-tracker/internal/errors"
)

func TestCSVSource_Rows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timeline.csv")
	content := "Category,Task,Nov 14,Nov 21\nFlooring,Install carpet,Begins,Complete\nFinishes\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rows, err := NewCSVSource(path).Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Category", "Task", "Nov 14", "Nov 21"}, rows[0])
	assert.Equal(t, []string{"Flooring", "Install carpet", "Begins", "Complete"}, rows[1])
	// Ragged rows are returned as-is
	assert.Equal(t, []string{"Finishes"}, rows[2])
}

func TestCSVSource_RowsUnconfigured(t *testing.T) {
	_, err := NewCSVSource("").Rows(context.Background())
	assert.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConfiguration))
}

func TestCSVSource_RowsMissingFile(t *testing.T) {
	_, err := NewCSVSource(filepath.Join(t.TempDir(), "missing.csv")).Rows(context.Background())
	assert.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeSourceData))
}
