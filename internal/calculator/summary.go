package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/tripsplit/internal/models"
)

// MemberBalance represents the balance information for one participant.
type MemberBalance struct {
	ParticipantID string
	Name          string
	Initials      string
	NetBalance    decimal.Decimal // Positive = owed money, Negative = owes money
	TotalPaid     decimal.Decimal // Total amount fronted across all expenses
	TotalShare    decimal.Decimal // Total of this participant's shares
	ExpenseCount  int             // Expenses this participant is included in
	Status        Status
}

// Summary is everything needed to render a trip's totals and settlement plan.
type Summary struct {
	Members          []MemberBalance
	Settlements      []Settlement
	TotalAmount      decimal.Decimal
	ParticipantCount int
	ExpenseCount     int // Expenses with a positive amount; others are ignored
}

// Settled reports whether nobody needs to pay anybody.
func (s *Summary) Settled() bool {
	return len(s.Settlements) == 0
}

// MemberName returns the display name for a participant ID, or the ID itself
// when it is unknown.
func (s *Summary) MemberName(participantID string) string {
	for _, m := range s.Members {
		if m.ParticipantID == participantID {
			return m.Name
		}
	}
	return participantID
}

// Summarize computes per-participant balances, trip totals and the settlement plan.
// Members are returned in participant order.
func Summarize(participants []*models.Participant, expenses []*models.Expense) *Summary {
	balances := ComputeBalances(participants, expenses)

	paid := make(map[string]decimal.Decimal, len(participants))
	share := make(map[string]decimal.Decimal, len(participants))
	counts := make(map[string]int, len(participants))
	total := decimal.Zero
	contributing := 0

	for _, expense := range expenses {
		if !expense.Amount.IsPositive() {
			continue
		}
		total = total.Add(expense.Amount)
		contributing++

		included := uniqueIDs(expense.IncludedParticipantIDs)
		n := int64(len(included))
		if n < 1 {
			n = 1
		}
		perPerson := expense.Amount.Div(decimal.NewFromInt(n))

		paid[expense.PayerID] = paid[expense.PayerID].Add(expense.Amount)
		for _, id := range included {
			share[id] = share[id].Add(perPerson)
			counts[id]++
		}
	}

	members := make([]MemberBalance, 0, len(participants))
	for _, p := range participants {
		net := balances[p.ID]
		members = append(members, MemberBalance{
			ParticipantID: p.ID,
			Name:          p.Name,
			Initials:      p.Initials,
			NetBalance:    net,
			TotalPaid:     paid[p.ID],
			TotalShare:    share[p.ID],
			ExpenseCount:  counts[p.ID],
			Status:        StatusOf(net),
		})
	}

	return &Summary{
		Members:          members,
		Settlements:      PlanSettlements(participants, balances),
		TotalAmount:      total,
		ParticipantCount: len(participants),
		ExpenseCount:     contributing,
	}
}
