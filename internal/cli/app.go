package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"timeline-tracker/internal/api"
	"timeline-tracker/internal/errors"
)

const dateLayout = "2006-01-02"

// App bundles the shared dependencies of all command handlers
type App struct {
	api api.API
	out io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API) *App {
	return &App{
		api: apiInstance,
		out: os.Stdout,
	}
}

// NewAppWithWriter creates an App writing to the given writer. Used by tests
// to capture command output.
func NewAppWithWriter(apiInstance api.API, out io.Writer) *App {
	return &App{
		api: apiInstance,
		out: out,
	}
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// parseDate parses a YYYY-MM-DD argument
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError("date", value, "expected YYYY-MM-DD")
	}
	return t, nil
}
