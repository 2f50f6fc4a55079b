package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/cli/formatter"
)

func newApproveCmd(app *App) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "approve <mod>",
		Short: "Mark a mod approved with a sign-off note",
		Long: `Record the client's sign-off. Approval is one-way: there is no
un-approve. Approving again replaces the previous note. The first approval
also stamps the mod's start date.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveModID(app, args[0])
			if err != nil {
				return err
			}

			if note == "" && app.interactive() {
				if err := approvalNoteForm(&note).Run(); err != nil {
					return err
				}
			}

			if err := app.Store.ApproveMod(context.Background(), id, note); err != nil {
				return err
			}

			m, _ := app.Store.Mod(id)
			fmt.Printf("%s %s\n", formatter.ApprovalPill(m.ApprovalStatus), formatter.Dim("started "+formatter.HumanDate(m.StartDate)))
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Sign-off note")

	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show ledger totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%s\n", formatter.FormatStats(app.Store.Stats()))
			return nil
		},
	}
}
