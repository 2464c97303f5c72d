package source

import (
	"context"
)

// Tabular is a rectangular grid of string cells from an external source.
// Row 0 is the header row; an empty string cell means "no value". The
// spreadsheet fetch itself lives behind this interface so the importer
// never knows where the grid came from.
type Tabular interface {
	// Rows returns every row of the grid. Rows may be ragged; callers
	// must treat missing trailing cells as empty.
	Rows(ctx context.Context) ([][]string, error)
}
