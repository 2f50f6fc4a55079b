package cli

import (
	"github.com/spf13/cobra"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/ledger"
)

// App holds everything the CLI commands need.
type App struct {
	Store *ledger.Store

	// IsInteractive reports whether stdin is a terminal. Interactive runs
	// get huh forms for missing flags and the TUI dashboard on a bare
	// invocation.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "modledger" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "modledger",
		Short: "Commission ledger for freelance mod work",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runDashboard(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newCreatorCmd(app),
		newModCmd(app),
		newPaymentCmd(app),
		newTodoCmd(app),
		newApproveCmd(app),
		newStatsCmd(app),
		newEarningsCmd(app),
		newDashboardCmd(app),
	)

	return root
}
