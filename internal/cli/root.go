package cli

import (
	"os"
	"strings"
	"time"

	"staffdesk-cli/internal/config"
	"staffdesk-cli/internal/format"
	"staffdesk-cli/internal/store"
	"staffdesk-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	PrettyJSON bool
	Format     string

	cfg config.Config
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "staffdesk",
		Short:        "Employee self-service dashboard (TUI) + scriptable projections",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive dashboard
  staffdesk

  # Scriptable projections
  staffdesk attendance --status Eligible --sort timeOut --desc
  staffdesk calendar --month 2025-10
  staffdesk payday
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		app.cfg = config.Load()
	}

	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("STAFFDESK_FORMAT", "json"), "Output format (json)")

	cmd.AddCommand(newAttendanceCmd(app))
	cmd.AddCommand(newCalendarCmd(app))
	cmd.AddCommand(newPaydayCmd(app))

	return cmd
}

func runTUI(app *App) error {
	st := store.Seed(time.Now(), app.cfg.EmployeeName)
	return tui.Run(store.New(st), app.cfg)
}

// loadStore seeds the in-memory state for scriptable commands. Each
// invocation starts fresh; there is no persistence layer.
func loadStore(app *App) *store.Store {
	return store.New(store.Seed(time.Now(), app.cfg.EmployeeName))
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
