package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"foodlist-cli/internal/config"
	"foodlist-cli/internal/format"
	"foodlist-cli/internal/handoff"
	"foodlist-cli/internal/logging"
	"foodlist-cli/internal/model"
	"foodlist-cli/internal/tui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	PrettyJSON bool
	Format     string
	Currency   string
	LogLevel   string
	LogFile    string
	Print      bool

	cfg config.Config
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "foodlist",
		Short:        "Build a priced food list in the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive list
  foodlist

  # Print the final list as JSON when you quit
  foodlist --print --pretty

  # Build a list without the TUI
  foodlist render --item "Rice=12.50" --item "Dal=8"
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd, app)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return logging.Close()
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr(config.EnvConfig, ""), "Path to config.yaml (default: $XDG_CONFIG_HOME/foodlist/config.yaml)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("FOODLIST_FORMAT", "json"), "Output format (json|edn|table)")
	cmd.PersistentFlags().StringVar(&app.Currency, "currency", "", "ISO 4217 currency for displayed prices (overrides config; env FOODLIST_CURRENCY)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Write rotated JSON logs to this file")
	cmd.Flags().BoolVar(&app.Print, "print", false, "On quit, print the last finalized list to stdout")

	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig resolves defaults, file and environment, then applies flags.
func loadConfig(cmd *cobra.Command, app *App) error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return writeErr(cmd, err)
	}
	if app.Currency != "" {
		cfg.Currency = app.Currency
	}
	if app.LogLevel != "" {
		cfg.Logging.Level = app.LogLevel
	}
	if app.LogFile != "" {
		cfg.Logging.File = app.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return writeErr(cmd, err)
	}
	app.cfg = cfg
	return nil
}

// initLogging sets up logging for a command. Scripted commands log to stderr,
// but only warnings and up unless a level was asked for explicitly.
func (app *App) initLogging(cmd *cobra.Command, console io.Writer) {
	opts := logging.Options{
		Level:  app.cfg.Logging.Level,
		Format: app.cfg.Logging.Format,
		File:   app.cfg.Logging.File,
	}
	if console != io.Discard && !cmd.Flags().Changed("log-level") && os.Getenv(logging.EnvLevel) == "" {
		if logging.ParseLevel(opts.Level) < slog.LevelWarn {
			opts.Level = "warn"
		}
	}
	logging.Init(opts, console)
}

func runTUI(cmd *cobra.Command, app *App) error {
	// The TUI owns the terminal; console logs would corrupt it.
	app.initLogging(cmd, io.Discard)
	snap, err := tui.Run(app.cfg, logging.WithComponent("tui"))
	if err != nil {
		return writeErr(cmd, err)
	}
	if !app.Print || len(snap) == 0 {
		return nil
	}
	return writeFoodItems(cmd, app, snap)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

// writeFoodItems prints a finalized list in the payload shape the summary
// view receives, or as a text table with a total row.
func writeFoodItems(cmd *cobra.Command, app *App, snap model.Snapshot) error {
	if !strings.EqualFold(strings.TrimSpace(app.Format), "table") {
		return writeOut(cmd, app, handoff.Params{handoff.ParamFoodItems: snap})
	}
	rows := make([][]string, 0, len(snap)+1)
	for _, e := range snap {
		rows = append(rows, []string{e.Name, model.FormatPrice(e.Price, app.cfg.Currency)})
	}
	rows = append(rows, []string{"TOTAL", model.FormatPrice(snap.Total(), app.cfg.Currency)})
	return format.WriteTable(cmd.OutOrStdout(), []string{"FOOD ITEM", "PRICE"}, rows, 1)
}

var errColor = color.New(color.FgRed)

func writeErr(cmd *cobra.Command, err error) error {
	errColor.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
