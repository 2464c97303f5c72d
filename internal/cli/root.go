package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"timeline-tracker/internal/api"
	"timeline-tracker/internal/config"
	"timeline-tracker/internal/errors"
	"timeline-tracker/internal/logging"
	"timeline-tracker/internal/repository/sqlite"
	"timeline-tracker/internal/services"
	"timeline-tracker/internal/source"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
	app    *App
	repo   *sqlite.SQLiteRepository
}

// NewRootCommand creates the root cobra command with global flags. The store
// and API are opened lazily in PersistentPreRunE, after flag overrides have
// been applied to the configuration.
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tl",
		Short: "A command-line project timeline tracker",
		Long: `Timeline Tracker (tl) imports a project schedule grid and keeps it
editable as categorized tasks with dated events.

EXAMPLES:
  tl import --source schedule.csv          # Replace stored schedule from a CSV grid
  tl show                                  # Print the timeline grouped by category
  tl task add "Sitework" "Clear lot"       # Add a task
  tl event add 3 2025-11-14 --label Begins # Add a single-day event to task 3
  tl category rename "Sitework" "Site Prep"
  tl eventtype add "Permit Approved" "#33691e"

CONFIGURATION:
  Flags override environment variables, which override defaults.

    TL_DB_DIR               Database directory (default: ~/.tl)
    TL_DB_FILENAME          Database filename (default: tl.db)
    TL_DB_QUERY_TIMEOUT     Query timeout (default: 10s)
    TL_DB_WRITE_TIMEOUT     Write timeout (default: 5s)
    TL_SOURCE_CSV           Schedule CSV path for 'tl import'
    TL_APP_TIMEOUT          Application timeout (default: 60s)
    TL_APP_VERBOSE          Enable verbose logging (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.applyFlagOverrides(); err != nil {
				return err
			}
			return root.openApp()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Close releases the store if a command opened it
func (r *RootCommand) Close() error {
	if r.repo == nil {
		return nil
	}
	return r.repo.Close()
}

// SetArgs overrides os.Args for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides TL_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TL_DB_FILENAME)")
	flags.String("source", "", "Schedule CSV path (overrides TL_SOURCE_CSV)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides TL_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose logging (overrides TL_APP_VERBOSE)")
}

// applyFlagOverrides updates the configuration with values from command-line flags
func (r *RootCommand) applyFlagOverrides() error {
	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if csvPath, _ := flags.GetString("source"); csvPath != "" {
		r.config.Source.CSVPath = csvPath
	}
	if timeout, _ := flags.GetDuration("app-timeout"); timeout > 0 {
		r.config.Application.Timeout = timeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return r.config.Validate()
}

// openApp opens the store and wires the API once flags have been applied
func (r *RootCommand) openApp() error {
	repo, err := config.CreateRepository(r.config)
	if err != nil {
		return err
	}
	r.repo = repo

	logger := logging.New(r.config.Application.Verbose)
	apiInstance := api.New(repo, source.NewCSVSource(r.config.Source.CSVPath), logger)
	r.app = NewApp(apiInstance)
	return nil
}

func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.config.Application.Timeout)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("id", arg, "expected a numeric ID")
	}
	return id, nil
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.newImportCommand(),
		r.newShowCommand(),
		r.newTaskCommand(),
		r.newEventCommand(),
		r.newCategoryCommand(),
		r.newEventTypeCommand(),
	)
}

func (r *RootCommand) newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Import a schedule grid, replacing all stored tasks and events",
		Long: `Import the configured schedule CSV, replacing every stored task and
event. Rows keep their source order; labels spanning adjacent week columns
are merged into multi-week events.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewImportCommand(r.app).Execute(ctx)
		},
	}
}

func (r *RootCommand) newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the timeline grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewShowCommand(r.app).Execute(ctx)
		},
	}
}

func (r *RootCommand) newTaskCommand() *cobra.Command {
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	addCmd := &cobra.Command{
		Use:   "add [category] [name]",
		Short: "Add a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			sortOrder, _ := cmd.Flags().GetInt("order")
			return NewTaskCommand(r.app).Add(ctx, args[0], args[1], sortOrder)
		},
	}
	addCmd.Flags().Int("order", 0, "Display order position")

	updateCmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			update := services.TaskUpdate{}
			if cmd.Flags().Changed("category") {
				category, _ := cmd.Flags().GetString("category")
				update.Category = &category
			}
			if cmd.Flags().Changed("name") {
				name, _ := cmd.Flags().GetString("name")
				update.TaskName = &name
			}
			if cmd.Flags().Changed("order") {
				order, _ := cmd.Flags().GetInt("order")
				update.SortOrder = &order
			}

			return NewTaskCommand(r.app).Update(ctx, id, update)
		},
	}
	updateCmd.Flags().String("category", "", "New category")
	updateCmd.Flags().String("name", "", "New task name")
	updateCmd.Flags().Int("order", 0, "New display order position")

	rmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Remove a task and its events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return NewTaskCommand(r.app).Remove(ctx, id)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewTaskCommand(r.app).List(ctx)
		},
	}

	taskCmd.AddCommand(addCmd, updateCmd, rmCmd, listCmd)
	return taskCmd
}

func (r *RootCommand) newEventCommand() *cobra.Command {
	eventCmd := &cobra.Command{
		Use:   "event",
		Short: "Manage events",
	}

	addCmd := &cobra.Command{
		Use:   "add [task-id] [start-date]",
		Short: "Add an event to a task",
		Long: `Add an event to a task. Dates use YYYY-MM-DD. Without --end the event
is a single day; without --color the color is derived from the label.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			taskID, err := parseID(args[0])
			if err != nil {
				return err
			}

			end, _ := cmd.Flags().GetString("end")
			label, _ := cmd.Flags().GetString("label")
			color, _ := cmd.Flags().GetString("color")
			return NewEventCommand(r.app).Add(ctx, taskID, args[1], end, label, color)
		},
	}
	addCmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
	addCmd.Flags().String("label", "", "Event label")
	addCmd.Flags().String("color", "", "Hex color, e.g. #2e7d32")

	updateCmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")

			var label, color *string
			if cmd.Flags().Changed("label") {
				v, _ := cmd.Flags().GetString("label")
				label = &v
			}
			if cmd.Flags().Changed("color") {
				v, _ := cmd.Flags().GetString("color")
				color = &v
			}

			return NewEventCommand(r.app).Update(ctx, id, start, end, label, color)
		},
	}
	updateCmd.Flags().String("start", "", "New start date (YYYY-MM-DD)")
	updateCmd.Flags().String("end", "", "New end date (YYYY-MM-DD)")
	updateCmd.Flags().String("label", "", "New label")
	updateCmd.Flags().String("color", "", "New hex color")

	rmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Remove an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return NewEventCommand(r.app).Remove(ctx, id)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List events by start date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewEventCommand(r.app).List(ctx)
		},
	}

	eventCmd.AddCommand(addCmd, updateCmd, rmCmd, listCmd)
	return eventCmd
}

func (r *RootCommand) newCategoryCommand() *cobra.Command {
	categoryCmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List categories in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewCategoryCommand(r.app).List(ctx)
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename [old-name] [new-name]",
		Short: "Rename a category across all its tasks",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewCategoryCommand(r.app).Rename(ctx, args[0], args[1])
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm [name]",
		Short: "Remove a category, its tasks, and their events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewCategoryCommand(r.app).Remove(ctx, args[0])
		},
	}

	categoryCmd.AddCommand(listCmd, renameCmd, rmCmd)
	return categoryCmd
}

func (r *RootCommand) newEventTypeCommand() *cobra.Command {
	eventTypeCmd := &cobra.Command{
		Use:   "eventtype",
		Short: "Manage custom event type presets",
	}

	addCmd := &cobra.Command{
		Use:   "add [label] [color]",
		Short: "Add an event type preset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewEventTypeCommand(r.app).Add(ctx, args[0], args[1])
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update an event type preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			update := services.EventTypeUpdate{}
			if cmd.Flags().Changed("label") {
				v, _ := cmd.Flags().GetString("label")
				update.Label = &v
			}
			if cmd.Flags().Changed("color") {
				v, _ := cmd.Flags().GetString("color")
				update.Color = &v
			}

			return NewEventTypeCommand(r.app).Update(ctx, id, update)
		},
	}
	updateCmd.Flags().String("label", "", "New label")
	updateCmd.Flags().String("color", "", "New hex color")

	rmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Remove an event type preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return NewEventTypeCommand(r.app).Remove(ctx, id)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List event type presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewEventTypeCommand(r.app).List(ctx)
		},
	}

	eventTypeCmd.AddCommand(addCmd, updateCmd, rmCmd, listCmd)
	return eventTypeCmd
}
