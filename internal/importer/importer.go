package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"timeline-tracker/internal/domain"
	"timeline-tracker/internal/repository/sqlite"
	"timeline-tracker/internal/source"
)

// Summary reports what a completed import run stored.
type Summary struct {
	TasksImported  int    `json:"tasks_imported"`
	EventsImported int    `json:"events_imported"`
	Message        string `json:"message"`
}

// Importer converts a source grid into the stored task/event model. Each run
// is a destructive bulk replace: existing events and tasks are deleted
// before the freshly parsed rows are inserted. The replace is not atomic;
// a failure partway through is recovered by re-running the import.
type Importer struct {
	repo   sqlite.Repository
	src    source.Tabular
	logger zerolog.Logger
	now    func() time.Time
}

// New creates an importer reading from src and writing through repo.
func New(repo sqlite.Repository, src source.Tabular, logger zerolog.Logger) *Importer {
	return &Importer{
		repo:   repo,
		src:    src,
		logger: logger,
		now:    time.Now,
	}
}

// WithNow overrides the importer's reference clock, which drives the fiscal
// year inference for two-part date headers.
func (i *Importer) WithNow(now func() time.Time) *Importer {
	i.now = now
	return i
}

// Run fetches the source grid, parses it, and replaces the stored schedule.
// Writes happen in source-row order so sort order is assigned monotonically
// as rows are processed.
func (i *Importer) Run(ctx context.Context) (*Summary, error) {
	runID := uuid.New().String()
	logger := i.logger.With().Str("import_run", runID).Logger()

	rows, err := i.src.Rows(ctx)
	if err != nil {
		return nil, err
	}

	grid, err := ParseGrid(rows, i.now())
	if err != nil {
		return nil, err
	}

	for _, header := range grid.SkippedHeaders {
		logger.Warn().Str("header", header).Msg("skipping unparseable date header")
	}
	if grid.SkippedRows > 0 {
		logger.Warn().Int("rows", grid.SkippedRows).Msg("skipping rows without category or task")
	}

	// Bulk replace: events first so no event ever references a deleted task.
	if err := i.repo.DeleteAllEvents(ctx); err != nil {
		return nil, err
	}
	if err := i.repo.DeleteAllTasks(ctx); err != nil {
		return nil, err
	}

	tasksImported := 0
	eventsImported := 0
	for order, taskRow := range grid.Tasks {
		task := &sqlite.Task{
			Category:  taskRow.Category,
			TaskName:  taskRow.TaskName,
			SortOrder: order,
		}
		if err := i.repo.CreateTask(ctx, task); err != nil {
			return nil, err
		}
		tasksImported++

		for _, run := range BuildRuns(taskRow.Cells) {
			event := &sqlite.Event{
				TaskID:    task.ID,
				StartDate: run.StartDate,
				EndDate:   run.EndDate,
				Label:     run.Label,
				Color:     domain.ColorForLabel(run.Label),
			}
			if err := i.repo.CreateEvent(ctx, event); err != nil {
				return nil, err
			}
			eventsImported++
		}
	}

	logger.Info().
		Int("tasks", tasksImported).
		Int("events", eventsImported).
		Msg("import complete")

	return &Summary{
		TasksImported:  tasksImported,
		EventsImported: eventsImported,
		Message:        fmt.Sprintf("imported %d tasks and %d events (run %s)", tasksImported, eventsImported, runID),
	}, nil
}
