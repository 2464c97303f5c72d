package importer

import (
	"strings"
	"time"
)

// Cell is one resolved week cell of a task row: the column's calendar date
// and the raw cell text. Cells are ordered chronologically because headers
// run left to right in the source grid.
type Cell struct {
	Date time.Time
	Text string
}

// Run is one maximal run of identical non-empty labels: the event the
// importer will store. Start and end dates are inclusive.
type Run struct {
	Label     string
	StartDate time.Time
	EndDate   time.Time
}

// BuildRuns collapses a task's ordered week cells into runs. A single
// forward pass carries the open run: empty cells close it, matching labels
// extend it, differing labels close it and open a new one.
func BuildRuns(cells []Cell) []Run {
	var runs []Run
	var open *Run

	for _, cell := range cells {
		label := strings.TrimSpace(cell.Text)

		if label == "" {
			if open != nil {
				runs = append(runs, *open)
				open = nil
			}
			continue
		}

		if open != nil && open.Label == label {
			open.EndDate = cell.Date
			continue
		}

		if open != nil {
			runs = append(runs, *open)
		}
		open = &Run{Label: label, StartDate: cell.Date, EndDate: cell.Date}
	}

	if open != nil {
		runs = append(runs, *open)
	}

	return runs
}
