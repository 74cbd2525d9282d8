package cli

import (
	"github.com/alexanderramin/jornada/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Clock     service.ClockService
	History   service.HistoryService
	Retention service.RetentionService

	// IsInteractive reports whether stdin is a terminal. When true and no
	// subcommand is given, the root command opens the live dashboard.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "jornada" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "jornada",
		Short: "Personal work-hours clock",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runDashboard(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newStartCmd(app),
		newBreakfastCmd(app),
		newSnackCmd(app),
		newEndCmd(app),
		newStatusCmd(app),
		newHistoryCmd(app),
		newCleanupCmd(app),
		newServeCmd(app),
	)

	return root
}
