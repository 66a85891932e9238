package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/tripsplit/internal/models"
)

// Epsilon is the tolerance (0.01 currency units) below which a balance or a
// payment is treated as zero.
var Epsilon = decimal.New(1, -2)

// Balances maps a participant ID to its net balance.
// Positive = owed money, negative = owes money.
type Balances map[string]decimal.Decimal

// Sum returns the total of all balances. It is zero (within Epsilon) for any
// expense set whose references are all known.
func (b Balances) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, v := range b {
		sum = sum.Add(v)
	}
	return sum
}

// Status describes which side of the ledger a participant is on.
type Status string

const (
	StatusOwes     Status = "owes"
	StatusGetsBack Status = "gets back"
	StatusSettled  Status = "settled"
)

// StatusOf classifies a balance using Epsilon.
func StatusOf(balance decimal.Decimal) Status {
	switch {
	case balance.LessThan(Epsilon.Neg()):
		return StatusOwes
	case balance.GreaterThan(Epsilon):
		return StatusGetsBack
	default:
		return StatusSettled
	}
}

// ComputeBalances computes each participant's net balance from the expense list.
//
// Algorithm:
//   - Every known participant starts at zero
//   - For each expense: the payer is credited the full amount, and each included
//     participant is debited amount / n, where n is the number of included ids
//     floored to 1
//   - Ids that don't match a known participant are skipped
//   - Expenses with a non-positive amount contribute nothing
//
// The result does not depend on expense order.
func ComputeBalances(participants []*models.Participant, expenses []*models.Expense) Balances {
	balances := make(Balances, len(participants))
	for _, p := range participants {
		balances[p.ID] = decimal.Zero
	}

	for _, expense := range expenses {
		if !expense.Amount.IsPositive() {
			continue
		}

		included := uniqueIDs(expense.IncludedParticipantIDs)
		n := int64(len(included))
		if n < 1 {
			n = 1
		}
		share := expense.Amount.Div(decimal.NewFromInt(n))

		// Payer fronted the full amount
		if bal, ok := balances[expense.PayerID]; ok {
			balances[expense.PayerID] = bal.Add(expense.Amount)
		}

		// Each included participant owes their share
		for _, id := range included {
			if bal, ok := balances[id]; ok {
				balances[id] = bal.Sub(share)
			}
		}
	}

	return balances
}

// uniqueIDs drops repeated ids, keeping first-seen order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
