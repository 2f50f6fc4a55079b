package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/cli/formatter"
	"github.com/1111MdTanvirAhmed1111/modledger/internal/ledger"
)

func newCreatorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creator",
		Short: "Manage creators (clients)",
	}

	cmd.AddCommand(
		newCreatorAddCmd(app),
		newCreatorListCmd(app),
		newCreatorInspectCmd(app),
		newCreatorUpdateCmd(app),
		newCreatorRemoveCmd(app),
	)

	return cmd
}

func newCreatorAddCmd(app *App) *cobra.Command {
	var name, email, phone, address string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new creator",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && app.interactive() {
				if err := creatorForm(&name, &email, &phone, &address).Run(); err != nil {
					return err
				}
			}

			c, err := app.Store.AddCreator(context.Background(), name, email, phone, address)
			if err != nil {
				return err
			}

			fmt.Printf("Added creator %s [%s]\n", c.Name, c.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Creator name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&address, "address", "", "Postal address")

	return cmd
}

func newCreatorListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List creators",
		RunE: func(cmd *cobra.Command, args []string) error {
			creators := app.Store.Creators()
			if len(creators) == 0 {
				fmt.Println("No creators yet.")
				return nil
			}

			counts := make(map[string]int, len(creators))
			dues := make(map[string]int, len(creators))
			for _, c := range creators {
				counts[c.ID] = len(app.Store.CreatorMods(c.ID))
				dues[c.ID] = app.Store.CreatorTotalDue(c.ID)
			}

			fmt.Printf("%s\n", formatter.FormatCreatorList(creators, counts, dues))
			return nil
		},
	}
}

func newCreatorInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <creator>",
		Short: "Show a creator with their mods and total due",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCreatorID(app, args[0])
			if err != nil {
				return err
			}

			c, ok := app.Store.Creator(id)
			if !ok {
				return fmt.Errorf("creator not found: %q", args[0])
			}

			mods := app.Store.CreatorMods(id)
			fmt.Printf("%s\n", formatter.FormatCreatorInspect(&c, mods, app.Store.CreatorTotalDue(id)))
			return nil
		},
	}
}

func newCreatorUpdateCmd(app *App) *cobra.Command {
	var name, email, phone, address string

	cmd := &cobra.Command{
		Use:   "update <creator>",
		Short: "Update creator fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCreatorID(app, args[0])
			if err != nil {
				return err
			}

			var u ledger.CreatorUpdate
			if cmd.Flags().Changed("name") {
				u.Name = &name
			}
			if cmd.Flags().Changed("email") {
				u.Email = &email
			}
			if cmd.Flags().Changed("phone") {
				u.Phone = &phone
			}
			if cmd.Flags().Changed("address") {
				u.Address = &address
			}

			if err := app.Store.UpdateCreator(context.Background(), id, u); err != nil {
				return err
			}

			fmt.Println("Creator updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&email, "email", "", "New email")
	cmd.Flags().StringVar(&phone, "phone", "", "New phone")
	cmd.Flags().StringVar(&address, "address", "", "New address")

	return cmd
}

func newCreatorRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <creator>",
		Short: "Remove a creator (refused while mods reference it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCreatorID(app, args[0])
			if err != nil {
				return err
			}

			if err := app.Store.DeleteCreator(context.Background(), id); err != nil {
				if errors.Is(err, ledger.ErrCreatorHasMods) {
					return fmt.Errorf("this creator still has mods; remove or reassign them first")
				}
				return err
			}

			fmt.Println("Creator removed.")
			return nil
		},
	}
}
