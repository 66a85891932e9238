package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/models"
)

func dinner() ([]*models.Participant, []*models.Expense) {
	participants := []*models.Participant{
		{ID: "a", Name: "Asha", Initials: "A"},
		{ID: "b", Name: "Bala", Initials: "B"},
		{ID: "c", Name: "Chitra", Initials: "C"},
	}
	expenses := []*models.Expense{{
		ID:                     "e1",
		Title:                  "Dinner",
		Amount:                 decimal.NewFromInt(90),
		PayerID:                "a",
		IncludedParticipantIDs: []string{"a", "b", "c"},
	}}
	return participants, expenses
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "₹30.00", Money("₹", decimal.NewFromInt(30)))
	assert.Equal(t, "$0.33", Money("$", decimal.RequireFromString("0.333")))
}

func TestSummary(t *testing.T) {
	participants, expenses := dinner()
	trip := &models.Trip{Name: "Goa", Location: "North Goa"}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, "₹").Summary(trip, calculator.Summarize(participants, expenses)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Goa · North Goa\n"), out)
	assert.Contains(t, out, "Participants: 3  Expenses: 1  Total: ₹90.00")
	assert.Regexp(t, `A\s+Asha\s+gets back\s+₹60\.00`, out)
	assert.Regexp(t, `B\s+Bala\s+owes\s+₹30\.00`, out)
	assert.Contains(t, out, "Bala pays Asha ₹30.00")
	assert.Contains(t, out, "Chitra pays Asha ₹30.00")
	assert.NotContains(t, out, SettledMessage)
}

func TestSummary_Settled(t *testing.T) {
	participants, _ := dinner()

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, "₹").Summary(&models.Trip{}, calculator.Summarize(participants, nil)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Participants: 3"), "empty trip line is skipped: %q", out)
	assert.Contains(t, out, SettledMessage)
	assert.Regexp(t, `C\s+Chitra\s+settled\s+₹0\.00`, out)
}

func TestExpenses(t *testing.T) {
	participants, expenses := dinner()
	expenses = append(expenses, &models.Expense{
		Title:                  "Ferry",
		Amount:                 decimal.RequireFromString("12.5"),
		PayerID:                "gone",
		IncludedParticipantIDs: []string{"b"},
	})

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, "$").Expenses(participants, expenses))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	require.Len(t, lines, 2)
	assert.Regexp(t, `^Dinner\s+\$90\.00\s+paid by Asha\s+split 3 ways$`, lines[0])
	assert.Regexp(t, `^Ferry\s+\$12\.50\s+paid by gone\s+split 1 ways$`, lines[1])
}

func TestQuickSplit(t *testing.T) {
	tests := []struct {
		name string
		tip  string
		want string
	}{
		{
			name: "with tip",
			tip:  "10",
			want: "Total: ₹1200.00 + tip 10% (₹120.00)\nGrand total: ₹1320.00\nEach person pays: ₹330.00\n",
		},
		{
			name: "without tip",
			tip:  "0",
			want: "Total: ₹1200.00\nGrand total: ₹1200.00\nEach person pays: ₹300.00\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := calculator.QuickSplit(decimal.NewFromInt(1200), 4, decimal.RequireFromString(tt.tip))
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, NewPrinter(&buf, "₹").QuickSplit(r))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
