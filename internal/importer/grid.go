package importer

import (
	"strings"
	"time"

	"timeline-tracker/internal/errors"
)

// Grid geometry: column 0 is the category, column 1 the task name, and up to
// 26 weekly date columns follow.
const (
	categoryColumn  = 0
	taskColumn      = 1
	firstWeekColumn = 2
	maxWeekColumns  = 26
)

// TaskRow is one parsed schedule row: a resolved category, a task name, and
// the task's week cells in column order.
type TaskRow struct {
	Category string
	TaskName string
	Cells    []Cell
}

// GridResult is the outcome of parsing a source grid. Skipped headers and
// rows are counted rather than failing the parse; a partially readable grid
// still imports.
type GridResult struct {
	Tasks          []TaskRow
	SkippedHeaders []string
	SkippedRows    int
}

// weekColumn pairs a grid column index with its resolved date.
type weekColumn struct {
	index int
	date  time.Time
}

// ParseGrid interprets a raw source grid: row 0 holds the date headers,
// subsequent rows hold one task each. The category carries forward from the
// most recent row that supplied one, so task rows may omit it. A row with
// only a category but non-empty week cells becomes a task named after its
// category; a row with only a category and no week cells is a section
// header and contributes nothing.
func ParseGrid(rows [][]string, now time.Time) (*GridResult, error) {
	if len(rows) < 2 {
		return nil, errors.NewSourceDataError("grid needs a header row and at least one data row", nil)
	}

	result := &GridResult{}
	header := rows[0]

	var weeks []weekColumn
	lastColumn := firstWeekColumn + maxWeekColumns
	for col := firstWeekColumn; col < len(header) && col < lastColumn; col++ {
		date, err := ResolveHeader(header[col], now)
		if err != nil {
			result.SkippedHeaders = append(result.SkippedHeaders, header[col])
			continue
		}
		weeks = append(weeks, weekColumn{index: col, date: date})
	}

	currentCategory := ""
	for _, row := range rows[1:] {
		category := strings.TrimSpace(cellAt(row, categoryColumn))
		task := strings.TrimSpace(cellAt(row, taskColumn))

		if category != "" {
			currentCategory = category
		}

		cells := make([]Cell, 0, len(weeks))
		hasDates := false
		for _, week := range weeks {
			text := cellAt(row, week.index)
			if strings.TrimSpace(text) != "" {
				hasDates = true
			}
			cells = append(cells, Cell{Date: week.date, Text: text})
		}

		if task == "" {
			if category != "" && hasDates {
				// Milestone row: the category cell doubles as the task name.
				task = category
			} else {
				// Pure section header or blank row.
				if category == "" {
					result.SkippedRows++
				}
				continue
			}
		}

		if currentCategory == "" {
			result.SkippedRows++
			continue
		}

		result.Tasks = append(result.Tasks, TaskRow{
			Category: currentCategory,
			TaskName: task,
			Cells:    cells,
		})
	}

	return result, nil
}

func cellAt(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return row[index]
}
