// Package report renders trip summaries and quick splits as plain text for the CLI.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/models"
)

// SettledMessage is printed in place of the plan when nobody owes anything.
const SettledMessage = "Everyone is perfectly settled."

// Money formats an amount with two decimals behind the currency symbol.
func Money(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}

// Printer writes reports using a fixed currency symbol.
type Printer struct {
	w        io.Writer
	currency string
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, currency string) *Printer {
	return &Printer{w: w, currency: currency}
}

func (p *Printer) money(amount decimal.Decimal) string {
	return Money(p.currency, amount)
}

// Summary prints the trip line, totals, per-participant balances and the
// settlement plan.
func (p *Printer) Summary(trip *models.Trip, s *calculator.Summary) error {
	var b strings.Builder

	if line := trip.Line(); line != "" {
		fmt.Fprintln(&b, line)
	}
	fmt.Fprintf(&b, "Participants: %d  Expenses: %d  Total: %s\n",
		s.ParticipantCount, s.ExpenseCount, p.money(s.TotalAmount))

	if len(s.Members) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "Balances")
		tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		for _, m := range s.Members {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n",
				m.Initials, m.Name, m.Status, p.money(m.NetBalance.Abs()))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Who pays whom")
	if s.Settled() {
		fmt.Fprintf(&b, "  %s\n", SettledMessage)
	}
	for _, st := range s.Settlements {
		fmt.Fprintf(&b, "  %s pays %s %s\n",
			s.MemberName(st.FromParticipantID), s.MemberName(st.ToParticipantID), p.money(st.Amount))
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}

// Expenses prints one line per expense with its payer and how many people share it.
// Unknown participant IDs are printed as-is.
func (p *Printer) Expenses(participants []*models.Participant, expenses []*models.Expense) error {
	names := make(map[string]string, len(participants))
	for _, pt := range participants {
		names[pt.ID] = pt.Name
	}
	name := func(id string) string {
		if n, ok := names[id]; ok {
			return n
		}
		return id
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for _, e := range expenses {
		fmt.Fprintf(tw, "%s\t%s\tpaid by %s\tsplit %d ways\n",
			e.Title, p.money(e.Amount), name(e.PayerID), len(e.IncludedParticipantIDs))
	}
	return tw.Flush()
}

// QuickSplit prints the result of calculator.QuickSplit.
func (p *Printer) QuickSplit(r *calculator.QuickSplitResult) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Total: %s", p.money(r.Total))
	if !r.TipPercent.IsZero() {
		fmt.Fprintf(&b, " + tip %s%% (%s)", r.TipPercent.StringFixed(0), p.money(r.TipAmount))
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Grand total: %s\n", p.money(r.GrandTotal))
	fmt.Fprintf(&b, "Each person pays: %s\n", p.money(r.PerPerson))

	_, err := io.WriteString(p.w, b.String())
	return err
}
