package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"task-manager/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand() *RootCommand {
	root := &RootCommand{}

	root.cmd = &cobra.Command{
		Use:   "tm",
		Short: "A command-line task list manager",
		Long: `Task Manager (tm) keeps a single task list in durable storage.

Every task has a unique ID, a description and a datetime. The list is
always shown sorted by datetime; tasks whose datetime cannot be parsed
sort last.

EXAMPLES:
  tm add T1 "Write report" 2025-07-20T09:00    # Add a task
  tm list                                      # Show the sorted task list
  tm get T1                                    # Look up one task by ID
  tm remove T1                                 # Delete a task (prompts first)
  tm clear --yes                               # Delete every task, no prompt
  tm export --format csv --output tasks.csv    # Export the list
  tm ui                                        # Interactive terminal UI

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

    TM_CONFIG            Config file (default: ~/.task-manager/config.toml)
    TM_BACKEND           Storage backend: sqlite or memory
    TM_DB_PATH           Database file (default: ~/.task-manager/tasks.db)
    TM_DATETIME_FORMAT   Display layout for task datetimes
    TM_NOTIFY_DELAY      Notification dismiss delay in the terminal UI
    TM_LOG_LEVEL         Log level: debug, info, warn, error
    TM_LOG_FORMAT        Log format: text or json

GETTING HELP:
  tm [command] --help   # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with the given context
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (overrides TM_CONFIG)")
	flags.String("backend", "", "Storage backend: sqlite or memory (overrides TM_BACKEND)")
	flags.String("db", "", "Database file path (overrides TM_DB_PATH)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides TM_LOG_LEVEL)")
	flags.String("log-format", "", "Log format: text or json (overrides TM_LOG_FORMAT)")
}

// overridesFromFlags collects changed global flags into loader overrides
func (r *RootCommand) overridesFromFlags() *config.Overrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.Overrides{}

	if flags.Changed("config") {
		v, _ := flags.GetString("config")
		overrides.ConfigFile = &v
	}
	if flags.Changed("backend") {
		v, _ := flags.GetString("backend")
		overrides.Backend = &v
	}
	if flags.Changed("db") {
		v, _ := flags.GetString("db")
		overrides.DBPath = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}
	if flags.Changed("log-format") {
		v, _ := flags.GetString("log-format")
		overrides.LogFormat = &v
	}

	return overrides
}

// newApp loads configuration, applies flag overrides and wires the
// application for a single command invocation
func (r *RootCommand) newApp(ctx context.Context) (*App, error) {
	cfg, err := config.NewLoader().LoadWithOverrides(r.overridesFromFlags())
	if err != nil {
		return nil, err
	}
	return NewApp(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add <id> <description> <datetime>",
		Short: "Add a new task",
		Long: `Add a task with a unique ID, a description and a datetime.

The datetime is stored exactly as given. ISO 8601 forms such as
2025-07-20T09:00 parse for chronological sorting; anything else is kept
verbatim and sorts after parseable dates.

Examples:
  tm add T1 "Write report" 2025-07-20T09:00
  tm add errand "Pick up keys" "2025-07-21 08:30"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			return NewAddCommand(app).Execute(cmd.Context(), args)
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Look up a task by its exact ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			return NewGetCommand(app).Execute(cmd.Context(), args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show all tasks sorted by datetime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			return NewListCommand(app).Execute(cmd.Context(), args)
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a task",
		Long:  "Delete the task with the given ID. Prompts for confirmation unless --yes is set.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			yes, _ := cmd.Flags().GetBool("yes")
			app.Surface.AssumeYes = yes
			return NewRemoveCommand(app).Execute(cmd.Context(), args)
		},
	}
	removeCmd.Flags().Bool("yes", false, "Delete without prompting")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every task",
		Long:  "Delete all tasks at once. Prompts for confirmation unless --yes is set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			yes, _ := cmd.Flags().GetBool("yes")
			app.Surface.AssumeYes = yes
			return NewClearCommand(app).Execute(cmd.Context(), args)
		},
	}
	clearCmd.Flags().Bool("yes", false, "Clear without prompting")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the task list to a file",
		Long: `Export the sorted task list.

Supported formats: json, csv, pdf.

Examples:
  tm export --format json
  tm export --format csv --output /tmp/tasks.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")
			return NewExportCommand(app).Execute(cmd.Context(), format, output)
		},
	}
	exportCmd.Flags().String("format", "json", "Export format: json, csv or pdf")
	exportCmd.Flags().String("output", "", "Output file (default tasks.<format>)")

	uiCmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive terminal UI",
		Long: `Open a full-screen terminal UI over the same task list.

Keys: a adds, / searches, d deletes the selected task, r refreshes,
q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			return NewUICommand(app).Execute(cmd.Context(), args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		getCmd,
		listCmd,
		removeCmd,
		clearCmd,
		exportCmd,
		uiCmd,
	)
}
