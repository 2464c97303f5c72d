package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekOf(day int) time.Time {
	return time.Date(2023, time.November, day, 0, 0, 0, 0, time.UTC)
}

func cells(texts ...string) []Cell {
	result := make([]Cell, len(texts))
	for i, text := range texts {
		result[i] = Cell{Date: weekOf(1 + i), Text: text}
	}
	return result
}

func TestBuildRuns(t *testing.T) {
	tests := []struct {
		name  string
		cells []Cell
		want  []Run
	}{
		{
			name:  "empty row produces no runs",
			cells: cells("", "", ""),
			want:  nil,
		},
		{
			name:  "no cells produces no runs",
			cells: nil,
			want:  nil,
		},
		{
			name:  "single cell",
			cells: cells("Begins"),
			want: []Run{
				{Label: "Begins", StartDate: weekOf(1), EndDate: weekOf(1)},
			},
		},
		{
			name:  "repeated label merges into one run",
			cells: cells("Begins", "Begins", "Begins"),
			want: []Run{
				{Label: "Begins", StartDate: weekOf(1), EndDate: weekOf(3)},
			},
		},
		{
			name:  "label change closes the run",
			cells: cells("Begins", "Begins", "Complete"),
			want: []Run{
				{Label: "Begins", StartDate: weekOf(1), EndDate: weekOf(2)},
				{Label: "Complete", StartDate: weekOf(3), EndDate: weekOf(3)},
			},
		},
		{
			name:  "empty cell splits runs of the same label",
			cells: cells("A", "A", "B", "B", "B", "", "A"),
			want: []Run{
				{Label: "A", StartDate: weekOf(1), EndDate: weekOf(2)},
				{Label: "B", StartDate: weekOf(3), EndDate: weekOf(5)},
				{Label: "A", StartDate: weekOf(7), EndDate: weekOf(7)},
			},
		},
		{
			name:  "leading and trailing empties are ignored",
			cells: cells("", "Install", "Install", ""),
			want: []Run{
				{Label: "Install", StartDate: weekOf(2), EndDate: weekOf(3)},
			},
		},
		{
			name:  "whitespace-only cells are empty",
			cells: cells("Begins", "   ", "Begins"),
			want: []Run{
				{Label: "Begins", StartDate: weekOf(1), EndDate: weekOf(1)},
				{Label: "Begins", StartDate: weekOf(3), EndDate: weekOf(3)},
			},
		},
		{
			name:  "labels are trimmed before comparison",
			cells: cells("Begins", " Begins ", "Begins"),
			want: []Run{
				{Label: "Begins", StartDate: weekOf(1), EndDate: weekOf(3)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildRuns(tt.cells)
			require.Len(t, got, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.Label, got[i].Label)
				assert.True(t, got[i].StartDate.Equal(want.StartDate), "run %d start", i)
				assert.True(t, got[i].EndDate.Equal(want.EndDate), "run %d end", i)
			}
		})
	}
}

func TestBuildRunsEmitsChronologically(t *testing.T) {
	runs := BuildRuns(cells("A", "", "B", "", "C"))
	require.Len(t, runs, 3)
	assert.True(t, runs[0].StartDate.Before(runs[1].StartDate))
	assert.True(t, runs[1].StartDate.Before(runs[2].StartDate))
}
