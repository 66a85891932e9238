package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mmynk/tripsplit/internal/models"
)

func participants(ids ...string) []*models.Participant {
	out := make([]*models.Participant, len(ids))
	for i, id := range ids {
		out[i] = &models.Participant{ID: id, Name: id, Initials: models.Initials(id)}
	}
	return out
}

func expense(amount string, payer string, included ...string) *models.Expense {
	return &models.Expense{
		Title:                  "Expense",
		Amount:                 decimal.RequireFromString(amount),
		PayerID:                payer,
		IncludedParticipantIDs: included,
	}
}

// assertNear checks got is within Epsilon of want.
func assertNear(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	w := decimal.RequireFromString(want)
	assert.Truef(t, got.Sub(w).Abs().LessThanOrEqual(Epsilon), "got %s, want %s %v", got, want, msgAndArgs)
}

func assertSameBalances(t *testing.T, want, got Balances) {
	t.Helper()
	assert.Len(t, got, len(want))
	for id, w := range want {
		assert.Truef(t, w.Equal(got[id]), "%s: got %s, want %s", id, got[id], w)
	}
}
