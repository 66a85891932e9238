package calculator

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuickSplit = errors.New("please enter a valid total and number of people")
	ErrNegativeTip       = errors.New("tip percent cannot be negative")
)

var hundred = decimal.NewFromInt(100)

// QuickSplitResult is the per-person share of a single bill with an optional tip.
type QuickSplitResult struct {
	Total      decimal.Decimal
	People     int
	TipPercent decimal.Decimal
	TipAmount  decimal.Decimal
	GrandTotal decimal.Decimal
	PerPerson  decimal.Decimal
}

// QuickSplit divides total plus a percentage tip equally among people.
// Based on: per_person = total × (1 + tip_percent / 100) / people
func QuickSplit(total decimal.Decimal, people int, tipPercent decimal.Decimal) (*QuickSplitResult, error) {
	if !total.IsPositive() || people <= 0 {
		return nil, ErrInvalidQuickSplit
	}
	if tipPercent.IsNegative() {
		return nil, ErrNegativeTip
	}

	tip := total.Mul(tipPercent).Div(hundred)
	grand := total.Add(tip)

	return &QuickSplitResult{
		Total:      total,
		People:     people,
		TipPercent: tipPercent,
		TipAmount:  tip,
		GrandTotal: grand,
		PerPerson:  grand.Div(decimal.NewFromInt(int64(people))),
	}, nil
}
