package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickSplit(t *testing.T) {
	tests := []struct {
		name         string
		total        string
		people       int
		tipPercent   string
		wantErr      error
		validateFunc func(t *testing.T, r *QuickSplitResult)
	}{
		{
			name:       "no tip",
			total:      "1200",
			people:     4,
			tipPercent: "0",
			validateFunc: func(t *testing.T, r *QuickSplitResult) {
				assertNear(t, "0", r.TipAmount)
				assertNear(t, "1200", r.GrandTotal)
				assertNear(t, "300", r.PerPerson)
			},
		},
		{
			name:       "ten percent tip",
			total:      "1000",
			people:     3,
			tipPercent: "10",
			validateFunc: func(t *testing.T, r *QuickSplitResult) {
				// Tip = 100, grand total = 1100, 366.67 each
				assertNear(t, "100", r.TipAmount)
				assertNear(t, "1100", r.GrandTotal)
				assertNear(t, "366.67", r.PerPerson)
				assert.Equal(t, 3, r.People)
			},
		},
		{
			name:       "fractional tip",
			total:      "80",
			people:     2,
			tipPercent: "12.5",
			validateFunc: func(t *testing.T, r *QuickSplitResult) {
				assertNear(t, "10", r.TipAmount)
				assertNear(t, "45", r.PerPerson)
			},
		},
		{
			name:       "zero total should error",
			total:      "0",
			people:     2,
			tipPercent: "0",
			wantErr:    ErrInvalidQuickSplit,
		},
		{
			name:       "zero people should error",
			total:      "100",
			people:     0,
			tipPercent: "0",
			wantErr:    ErrInvalidQuickSplit,
		},
		{
			name:       "negative tip should error",
			total:      "100",
			people:     2,
			tipPercent: "-5",
			wantErr:    ErrNegativeTip,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := QuickSplit(decimal.RequireFromString(tt.total), tt.people, decimal.RequireFromString(tt.tipPercent))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.validateFunc(t, result)
		})
	}
}
