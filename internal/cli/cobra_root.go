package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"say-to-plan/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd         *cobra.Command
	config      *config.Config
	factory     RepositoryFactory
	interactive *bool
}

// RootOption customises a RootCommand.
type RootOption func(*RootCommand)

// WithInteractive forces prompt behaviour regardless of whether stdin is a terminal.
func WithInteractive(interactive bool) RootOption {
	return func(r *RootCommand) {
		r.interactive = &interactive
	}
}

// NewRootCommand creates the root cobra command with global flags.
// factory opens the repository once flags have been applied to cfg.
func NewRootCommand(cfg *config.Config, factory RepositoryFactory, opts ...RootOption) *RootCommand {
	root := &RootCommand{
		config:  cfg,
		factory: factory,
	}
	for _, opt := range opts {
		opt(root)
	}

	root.cmd = &cobra.Command{
		Use:   "stp",
		Short: "Turn spoken or typed sentences into a task list",
		Long: `Say to Plan (stp) turns short sentences into tasks with optional due dates.

Dates are recognised in what you say: "today", "tomorrow", "next week" or a
month/day such as 3/14. Filler words like "remind me to" or "add a" are removed.

EXAMPLES:
  stp say                                  # Dictate a task and confirm it
  stp parse "remind me to call mom tomorrow"
  stp add "Buy milk" --due 2026-10-20      # Add typed text as-is
  stp add "pay rent next week" --parse     # Add typed text with date parsing
  stp list overdue                         # all, pending, completed, overdue, today
  stp done 1a2b3c4d                        # Toggle completion by id prefix
  stp edit 1a2b "Buy oat milk" --clear-due
  stp delete 1a2b
  stp stats

CONFIGURATION:
  Priority: command-line flags > environment variables > defaults

    STP_USER                               Signed-in owner of the task list
    STP_DB_DIR                             Database directory (default: ~/.stp)
    STP_DB_FILENAME                        Database filename (default: stp.db)
    STP_DB_QUERY_TIMEOUT                   Query timeout (default: 10s)
    STP_DB_WRITE_TIMEOUT                   Write timeout (default: 5s)
    STP_TIME_DISPLAY_FORMAT                Due date format (default: 2006-01-02 15:04)
    STP_DATE_INPUT_FORMAT                  --due format (default: 2006-01-02)
    STP_VALIDATION_DESCRIPTION_MAX         Max description length (default: 500)
    STP_VOICE_ENABLED                      Enable the say command (default: true)
    STP_VOICE_LOCALE                       Capture locale (default: en-US)
    STP_VOICE_CAPTURE_TIMEOUT              Give up listening after (default: 30s)
    STP_APP_TIMEOUT                        Application timeout (default: 60s)
    STP_APP_VERBOSE                        Enable verbose logging (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.applyFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command exposes the underlying cobra command.
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with ctx as the parent of every command context.
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("user", "", "Signed-in owner (overrides STP_USER)")

	flags.String("db-dir", "", "Database directory (overrides STP_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides STP_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides STP_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides STP_DB_WRITE_TIMEOUT)")

	flags.String("time-format", "", "Due date display format (overrides STP_TIME_DISPLAY_FORMAT)")
	flags.Int("description-max", 0, "Maximum description length (overrides STP_VALIDATION_DESCRIPTION_MAX)")
	flags.Bool("voice", true, "Enable speech capture (overrides STP_VOICE_ENABLED)")

	flags.Duration("app-timeout", 0, "Application timeout (overrides STP_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose logging (overrides STP_APP_VERBOSE)")
}

func (r *RootCommand) addSubcommands() {
	var (
		addDue    string
		addParse  bool
		sayYes    bool
		editDue   string
		editClear bool
	)

	addCmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a typed task",
		Long: `Add a task from typed text. The text is stored as written unless --parse
is given, in which case it goes through the same parsing as dictation.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, r.getAppTimeout(), func(ctx context.Context, app *App) error {
				h := NewAddCommand(app)
				h.Due, h.Parse = addDue, addParse
				return h.Execute(ctx, args)
			})
		},
	}
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date, e.g. 2026-10-20")
	addCmd.Flags().BoolVar(&addParse, "parse", false, "Extract the due date and strip filler words")

	sayCmd := &cobra.Command{
		Use:   "say",
		Short: "Dictate a task",
		Long: `Capture one utterance, show the parsed task and save it after confirmation.
Without a terminal, --yes is required to save.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// capture plus confirmation may outlast a plain command
			return r.run(cmd, r.getAppTimeout()*2, func(ctx context.Context, app *App) error {
				h := NewSayCommand(app)
				h.Yes = sayYes
				return h.Execute(ctx, args)
			})
		},
	}
	sayCmd.Flags().BoolVarP(&sayYes, "yes", "y", false, "Save without asking for confirmation")

	parseCmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Show how text would be turned into a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, r.getAppTimeout(), func(ctx context.Context, app *App) error {
				return NewParseCommand(app).Execute(ctx, args)
			})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list [view]",
		Short: "List tasks, newest first",
		Long: `List tasks in one of the views:
  all        every task (default)
  pending    not completed
  completed  completed
  overdue    not completed and past due
  today      not completed and due today`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, r.getAppTimeout(), func(ctx context.Context, app *App) error {
				return NewListCommand(app).Execute(ctx, args)
			})
		},
	}

	doneCmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Toggle completion of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, r.getAppTimeout(), func(ctx context.Context, app *App) error {
				return NewDoneCommand(app).Execute(ctx, args)
			})
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit [id] [text]",
		Short: "Change the description or due date of a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, r.getAppTimeout(), func(ctx context.Context, app *App) error {
				h := NewEditCommand(app)
				h.Due, h.ClearDue = editDue, editClear
				return h.Execute(ctx, args)
			})
		},
	}
	editCmd.Flags().StringVar(&editDue, "due", "", "New due date, e.g. 2026-10-20")
	editCmd.Flags().BoolVar(&editClear, "clear-due", false, "Remove the due date")

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, r.getAppTimeout(), func(ctx context.Context, app *App) error {
				return NewDeleteCommand(app).Execute(ctx, args)
			})
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task counts and completion rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, r.getAppTimeout(), func(ctx context.Context, app *App) error {
				return NewStatsCommand(app).Execute(ctx, args)
			})
		},
	}

	r.cmd.AddCommand(addCmd, sayCmd, parseCmd, listCmd, doneCmd, editCmd, deleteCmd, statsCmd)
}

// run opens the repository, builds the App for cmd's streams and calls fn
// with a context bounded by timeout.
func (r *RootCommand) run(cmd *cobra.Command, timeout time.Duration, fn func(ctx context.Context, app *App) error) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	repo, err := r.factory(r.config)
	if err != nil {
		return fmt.Errorf("failed to open task storage: %w", err)
	}

	app, err := NewApp(ctx, r.config, repo, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		_ = repo.Close()
		return err
	}
	defer app.Close()

	if r.interactive != nil {
		app.interactive = *r.interactive
	}
	return fn(ctx, app)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// applyFlags copies explicitly set global flags into the configuration.
func (r *RootCommand) applyFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("user") {
		v, _ := flags.GetString("user")
		overrides.User = &v
	}
	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("db-query-timeout") {
		v, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &v
	}
	if flags.Changed("db-write-timeout") {
		v, _ := flags.GetDuration("db-write-timeout")
		overrides.DBWriteTimeout = &v
	}
	if flags.Changed("time-format") {
		v, _ := flags.GetString("time-format")
		overrides.TimeFormat = &v
	}
	if flags.Changed("description-max") {
		v, _ := flags.GetInt("description-max")
		overrides.DescriptionMaxLength = &v
	}
	if flags.Changed("voice") {
		v, _ := flags.GetBool("voice")
		overrides.VoiceEnabled = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	config.ApplyOverrides(r.config, overrides)
	return r.config.Validate()
}
