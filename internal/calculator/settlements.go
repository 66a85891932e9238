package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tripsplit/internal/models"
)

// Settlement is a suggested direct payment that reduces outstanding balances.
type Settlement struct {
	FromParticipantID string // Person who owes
	ToParticipantID   string // Person who is owed
	Amount            decimal.Decimal
}

type position struct {
	participantID string
	amount        decimal.Decimal
}

// PlanSettlements turns balances into a list of pairwise payments that brings
// every participant to within Epsilon of zero.
//
// Debtors and creditors are each sorted largest first and matched greedily
// with two cursors. The plan has at most debtors+creditors-1 entries. It is a
// heuristic and not guaranteed to use the fewest possible payments.
//
// Only participants that are both in participants and in balances take part.
// balances is not modified.
func PlanSettlements(participants []*models.Participant, balances Balances) []Settlement {
	var debtors, creditors []position
	seen := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}

		bal, ok := balances[p.ID]
		if !ok {
			continue
		}
		switch {
		case bal.LessThan(Epsilon.Neg()):
			debtors = append(debtors, position{participantID: p.ID, amount: bal.Neg()})
		case bal.GreaterThan(Epsilon):
			creditors = append(creditors, position{participantID: p.ID, amount: bal})
		}
	}

	// Largest first; ties keep participant order
	sort.SliceStable(debtors, func(a, b int) bool {
		return debtors[a].amount.GreaterThan(debtors[b].amount)
	})
	sort.SliceStable(creditors, func(a, b int) bool {
		return creditors[a].amount.GreaterThan(creditors[b].amount)
	})

	var settlements []Settlement
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		// Amount to settle is minimum of what debtor owes and creditor is owed
		pay := decimal.Min(debtor.amount, creditor.amount)

		if !pay.Round(2).IsZero() {
			settlements = append(settlements, Settlement{
				FromParticipantID: debtor.participantID,
				ToParticipantID:   creditor.participantID,
				Amount:            pay,
			})
		}

		debtor.amount = debtor.amount.Sub(pay)
		creditor.amount = creditor.amount.Sub(pay)

		// Move to next debtor/creditor if fully settled
		if debtor.amount.LessThan(Epsilon) {
			i++
		}
		if creditor.amount.LessThan(Epsilon) {
			j++
		}
	}

	return settlements
}

// Apply returns a copy of balances with every settlement applied as a transfer.
func Apply(balances Balances, settlements []Settlement) Balances {
	out := make(Balances, len(balances))
	for id, bal := range balances {
		out[id] = bal
	}
	for _, s := range settlements {
		out[s.FromParticipantID] = out[s.FromParticipantID].Add(s.Amount)
		out[s.ToParticipantID] = out[s.ToParticipantID].Sub(s.Amount)
	}
	return out
}
