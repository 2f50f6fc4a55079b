package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newTodoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage a mod's checklist",
	}

	cmd.AddCommand(
		newTodoAddCmd(app),
		newTodoToggleCmd(app),
		newTodoRemoveCmd(app),
	)

	return cmd
}

func newTodoAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <mod> <title>",
		Short: "Add a checklist item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveModID(app, args[0])
			if err != nil {
				return err
			}

			if err := app.Store.AddTodo(context.Background(), id, args[1]); err != nil {
				return err
			}

			fmt.Println("Todo added.")
			return nil
		},
	}
}

func newTodoToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <mod> <todo-id>",
		Short: "Flip a checklist item between done and not done",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveModID(app, args[0])
			if err != nil {
				return err
			}

			if err := app.Store.ToggleTodo(context.Background(), id, args[1]); err != nil {
				return err
			}

			fmt.Println("Todo toggled.")
			return nil
		},
	}
}

func newTodoRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <mod> <todo-id>",
		Short: "Delete a checklist item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveModID(app, args[0])
			if err != nil {
				return err
			}

			if err := app.Store.DeleteTodo(context.Background(), id, args[1]); err != nil {
				return err
			}

			fmt.Println("Todo removed.")
			return nil
		},
	}
}
