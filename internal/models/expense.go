package models

import "github.com/shopspring/decimal"

// Expense is a single payment made by one participant on behalf of a subset
// of the trip's participants. Expenses are immutable once recorded.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// TripID is the trip this expense belongs to.
	TripID string

	// Title is the human-readable description (e.g., "Dinner").
	Title string

	// Amount is the positive amount fronted by the payer.
	Amount decimal.Decimal

	// PayerID is the participant who paid.
	PayerID string

	// IncludedParticipantIDs are the participants who share this cost equally.
	// Order is irrelevant; ids may go stale and are then ignored by the calculator.
	IncludedParticipantIDs []string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// Includes reports whether participantID shares this expense.
func (e *Expense) Includes(participantID string) bool {
	for _, id := range e.IncludedParticipantIDs {
		if id == participantID {
			return true
		}
	}
	return false
}
