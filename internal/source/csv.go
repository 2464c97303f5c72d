package source

import (
	"context"
	"encoding/csv"
	"os"

	"timeline-tracker/internal/errors"
)

// CSVSource reads a grid from a local CSV file. It is the reference Tabular
// implementation used by the CLI; the hosted spreadsheet fetch plugs in
// behind the same interface.
type CSVSource struct {
	path string
}

// NewCSVSource creates a CSV-backed tabular source for the given file path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Rows reads and returns every row of the CSV file.
func (s *CSVSource) Rows(ctx context.Context) ([][]string, error) {
	if s.path == "" {
		return nil, errors.NewConfigurationError("source_path", "no source file configured")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		return nil, errors.NewSourceDataError("open source file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // rows may be ragged

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewSourceDataError("read source file", err)
	}

	return rows, nil
}
