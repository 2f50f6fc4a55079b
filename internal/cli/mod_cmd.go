package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/cli/formatter"
	"github.com/1111MdTanvirAhmed1111/modledger/internal/domain"
	"github.com/1111MdTanvirAhmed1111/modledger/internal/ledger"
)

func newModCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mod",
		Short: "Manage mod commissions",
	}

	cmd.AddCommand(
		newModAddCmd(app),
		newModListCmd(app),
		newModInspectCmd(app),
		newModUpdateCmd(app),
		newModStatusCmd(app),
		newModRemoveCmd(app),
	)

	return cmd
}

func newModAddCmd(app *App) *cobra.Command {
	var title, creator string
	var price int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new mod commission",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" && app.interactive() {
				priceStr := ""
				if err := modForm(app, &title, &creator, &priceStr).Run(); err != nil {
					return err
				}
				parsed, err := strconv.Atoi(priceStr)
				if err != nil {
					return fmt.Errorf("invalid price %q: %w", priceStr, err)
				}
				price = parsed
			}

			creatorID, err := resolveCreatorID(app, creator)
			if err != nil {
				return err
			}

			m, err := app.Store.AddMod(context.Background(), title, creatorID, price)
			if err != nil {
				return err
			}

			fmt.Printf("Added mod %s [%s] at %s\n", m.Title, m.DisplayID(), formatter.Money(m.TotalPrice))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Mod title")
	cmd.Flags().StringVar(&creator, "creator", "", "Creator (ID, prefix, or name)")
	cmd.Flags().IntVar(&price, "price", 0, "Total price in currency units")

	return cmd
}

func newModListCmd(app *App) *cobra.Command {
	var pending, working bool
	var search, sortBy string
	var desc bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List mods",
		RunE: func(cmd *cobra.Command, args []string) error {
			mods := app.Store.Mods()
			names := creatorNames(app.Store.Creators())

			needle := strings.ToLower(search)
			filtered := mods[:0:0]
			for i := range mods {
				if pending && mods[i].ApprovalStatus != domain.ApprovalPending {
					continue
				}
				if working && mods[i].WorkStatus != domain.WorkInProgress {
					continue
				}
				if needle != "" &&
					!strings.Contains(strings.ToLower(mods[i].Title), needle) &&
					!strings.Contains(strings.ToLower(names[mods[i].CreatorID]), needle) {
					continue
				}
				filtered = append(filtered, mods[i])
			}

			if err := sortMods(filtered, sortBy, names); err != nil {
				return err
			}
			if desc {
				for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
					filtered[i], filtered[j] = filtered[j], filtered[i]
				}
			}

			if len(filtered) == 0 {
				fmt.Println("No mods found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatModList(filtered, names))
			return nil
		},
	}

	cmd.Flags().BoolVar(&pending, "pending", false, "Only mods awaiting approval")
	cmd.Flags().BoolVar(&working, "working", false, "Only mods in progress")
	cmd.Flags().StringVar(&search, "search", "", "Match against mod title or creator name")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort by date, name, or creator (default collection order)")
	cmd.Flags().BoolVar(&desc, "desc", false, "Reverse the sort order")

	return cmd
}

// sortMods orders mods in place by the given key; an empty key keeps the
// collection order.
func sortMods(mods []domain.Mod, key string, names map[string]string) error {
	switch key {
	case "":
	case "date":
		sort.SliceStable(mods, func(i, j int) bool { return mods[i].CreatedDate < mods[j].CreatedDate })
	case "name":
		sort.SliceStable(mods, func(i, j int) bool {
			return strings.ToLower(mods[i].Title) < strings.ToLower(mods[j].Title)
		})
	case "creator":
		sort.SliceStable(mods, func(i, j int) bool {
			return strings.ToLower(names[mods[i].CreatorID]) < strings.ToLower(names[mods[j].CreatorID])
		})
	default:
		return fmt.Errorf("unknown sort key %q (want date, name, or creator)", key)
	}
	return nil
}

func newModInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <mod>",
		Short: "Show a mod with payments, checklist, and approval state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveModID(app, args[0])
			if err != nil {
				return err
			}

			m, ok := app.Store.Mod(id)
			if !ok {
				return fmt.Errorf("mod not found: %q", args[0])
			}

			name := m.CreatorID
			if c, ok := app.Store.Creator(m.CreatorID); ok {
				name = c.Name
			}

			fmt.Printf("%s\n", formatter.FormatModInspect(&m, name))
			return nil
		},
	}
}

func newModUpdateCmd(app *App) *cobra.Command {
	var title string
	var price int

	cmd := &cobra.Command{
		Use:   "update <mod>",
		Short: "Update mod fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveModID(app, args[0])
			if err != nil {
				return err
			}

			var u ledger.ModUpdate
			if cmd.Flags().Changed("title") {
				u.Title = &title
			}
			if cmd.Flags().Changed("price") {
				u.TotalPrice = &price
			}

			if err := app.Store.UpdateMod(context.Background(), id, u); err != nil {
				return err
			}

			fmt.Println("Mod updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().IntVar(&price, "price", 0, "New total price")

	return cmd
}

func newModStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <mod> <pending|in_progress|done>",
		Short: "Set a mod's work status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveModID(app, args[0])
			if err != nil {
				return err
			}

			status := domain.WorkStatus(args[1])
			if !status.Valid() {
				return fmt.Errorf("unknown work status %q (want pending, in_progress, or done)", args[1])
			}

			if err := app.Store.UpdateMod(context.Background(), id, ledger.ModUpdate{WorkStatus: &status}); err != nil {
				return err
			}

			fmt.Printf("Work status set to %s\n", formatter.WorkStatusPill(status))
			return nil
		},
	}
}

func newModRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <mod>",
		Short: "Remove a mod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveModID(app, args[0])
			if err != nil {
				return err
			}

			if err := app.Store.DeleteMod(context.Background(), id); err != nil {
				return err
			}

			fmt.Println("Mod removed.")
			return nil
		},
	}
}
