package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/report"
)

func newSummaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary [trip-id]",
		Short: "Print a trip's expenses, balances and who pays whom. Lists trips when no ID is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				trips, err := store.ListTrips(ctx)
				if err != nil {
					return err
				}
				if len(trips) == 0 {
					fmt.Fprintln(out, "No trips yet.")
				}
				for _, trip := range trips {
					fmt.Fprintf(out, "%s  %s\n", trip.ID, trip.Line())
				}
				return nil
			}

			trip, err := store.GetTrip(ctx, args[0])
			if err != nil {
				return err
			}
			participants, err := store.ListParticipants(ctx, trip.ID)
			if err != nil {
				return err
			}
			expenses, err := store.ListExpenses(ctx, trip.ID)
			if err != nil {
				return err
			}

			printer := report.NewPrinter(out, a.cfg.Ledger.CurrencySymbol)
			if len(expenses) > 0 {
				fmt.Fprintln(out, "Expenses")
				if err := printer.Expenses(participants, expenses); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			return printer.Summary(trip, calculator.Summarize(participants, expenses))
		},
	}
}
