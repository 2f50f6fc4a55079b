package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/cli/formatter"
)

func newEarningsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "earnings",
		Short: "Show the earnings report",
		Long: `Break earnings down three ways: per calendar month of the recorded
payments, per creator, and per mod with its payment status.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%s\n", formatter.FormatEarnings(app.Store.Creators(), app.Store.Mods()))
			return nil
		},
	}
}
