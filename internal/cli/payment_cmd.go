package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/cli/formatter"
	"github.com/1111MdTanvirAhmed1111/modledger/internal/ledger"
)

func newPaymentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Record and correct payments",
	}

	cmd.AddCommand(
		newPaymentAddCmd(app),
		newPaymentUpdateCmd(app),
		newPaymentRemoveCmd(app),
	)

	return cmd
}

func newPaymentAddCmd(app *App) *cobra.Command {
	var amount int
	var description string

	cmd := &cobra.Command{
		Use:   "add <mod>",
		Short: "Record a payment against a mod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveModID(app, args[0])
			if err != nil {
				return err
			}

			if err := app.Store.AddPayment(context.Background(), id, amount, description); err != nil {
				return err
			}

			m, _ := app.Store.Mod(id)
			fmt.Printf("Recorded %s; %s remaining\n", formatter.Money(amount), formatter.Money(m.AmountDue()))
			return nil
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "Payment amount")
	cmd.Flags().StringVar(&description, "desc", "", "What the payment covers")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newPaymentUpdateCmd(app *App) *cobra.Command {
	var amount int
	var description string

	cmd := &cobra.Command{
		Use:   "update <mod> <payment-id>",
		Short: "Correct a recorded payment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveModID(app, args[0])
			if err != nil {
				return err
			}

			var u ledger.PaymentUpdate
			if cmd.Flags().Changed("amount") {
				u.Amount = &amount
			}
			if cmd.Flags().Changed("desc") {
				u.Description = &description
			}

			if err := app.Store.UpdatePayment(context.Background(), id, args[1], u); err != nil {
				return err
			}

			fmt.Println("Payment updated.")
			return nil
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "Corrected amount")
	cmd.Flags().StringVar(&description, "desc", "", "Corrected description")

	return cmd
}

func newPaymentRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <mod> <payment-id>",
		Short: "Delete a recorded payment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveModID(app, args[0])
			if err != nil {
				return err
			}

			if err := app.Store.DeletePayment(context.Background(), id, args[1]); err != nil {
				return err
			}

			fmt.Println("Payment removed.")
			return nil
		},
	}
}
