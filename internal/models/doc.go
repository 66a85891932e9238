// Package models defines the domain models for tripsplit.
//
// # Models
//
//   - Trip: a named outing that owns participants and expenses
//   - Participant: a person sharing the trip's costs
//   - Expense: one payment made by a participant on behalf of a subset of participants
//
// Balances and settlements are derived from these models by the calculator
// package and are never stored.
//
// # Design Principles
//
// 1. **Immutability**: participants and expenses are never edited after creation
// 2. **IDs, not pointers**: relationships are expressed as ID strings
// 3. **Fixed-point money**: amounts are decimal.Decimal, never float64
package models
