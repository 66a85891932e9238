package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/report"
)

func newQuickSplitCommand(a *app) *cobra.Command {
	var (
		total  string
		people int
		tip    string
	)

	cmd := &cobra.Command{
		Use:   "quick-split",
		Short: "Split one bill plus tip evenly without saving anything.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			totalAmount, err := decimal.NewFromString(total)
			if err != nil {
				return calculator.ErrInvalidQuickSplit
			}
			tipPercent, err := decimal.NewFromString(tip)
			if err != nil {
				return fmt.Errorf("invalid tip %q: %w", tip, err)
			}

			result, err := calculator.QuickSplit(totalAmount, people, tipPercent)
			if err != nil {
				return err
			}
			return report.NewPrinter(cmd.OutOrStdout(), a.cfg.Ledger.CurrencySymbol).QuickSplit(result)
		},
	}

	cmd.Flags().StringVar(&total, "total", "", "bill total")
	cmd.Flags().IntVar(&people, "people", 0, "number of people sharing the bill")
	cmd.Flags().StringVar(&tip, "tip", "0", "tip percent")
	return cmd
}
