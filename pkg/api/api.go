// Package api defines the request and response messages of the tripsplit.v1
// services. Field names follow the protobuf JSON mapping (lowerCamelCase) and
// money is carried as decimal strings.
package api

import "github.com/shopspring/decimal"

type Trip struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location,omitempty"`
	Dates     string `json:"dates,omitempty"`
	Line      string `json:"line"`
	CreatedAt int64  `json:"createdAt"`
}

type Participant struct {
	Id        string `json:"id"`
	TripId    string `json:"tripId"`
	Name      string `json:"name"`
	Initials  string `json:"initials"`
	CreatedAt int64  `json:"createdAt"`
}

type Expense struct {
	Id                     string          `json:"id"`
	TripId                 string          `json:"tripId"`
	Title                  string          `json:"title"`
	Amount                 decimal.Decimal `json:"amount"`
	PayerId                string          `json:"payerId"`
	IncludedParticipantIds []string        `json:"includedParticipantIds"`
	CreatedAt              int64           `json:"createdAt"`
}

type MemberBalance struct {
	ParticipantId string          `json:"participantId"`
	Name          string          `json:"name"`
	Initials      string          `json:"initials"`
	NetBalance    decimal.Decimal `json:"netBalance"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	TotalShare    decimal.Decimal `json:"totalShare"`
	ExpenseCount  int32           `json:"expenseCount"`
	// Status is one of "owes", "gets back" or "settled".
	Status string `json:"status"`
}

type Settlement struct {
	FromParticipantId string          `json:"fromParticipantId"`
	FromName          string          `json:"fromName"`
	ToParticipantId   string          `json:"toParticipantId"`
	ToName            string          `json:"toName"`
	Amount            decimal.Decimal `json:"amount"`
}

type CreateTripRequest struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Dates    string `json:"dates,omitempty"`
}

type CreateTripResponse struct {
	Trip *Trip `json:"trip"`
}

type GetTripRequest struct {
	TripId string `json:"tripId"`
}

type GetTripResponse struct {
	Trip *Trip `json:"trip"`
}

type ListTripsRequest struct{}

type ListTripsResponse struct {
	Trips []*Trip `json:"trips"`
}

type UpdateTripRequest struct {
	TripId   string `json:"tripId"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Dates    string `json:"dates,omitempty"`
}

type UpdateTripResponse struct {
	Trip *Trip `json:"trip"`
}

type ResetTripRequest struct {
	TripId string `json:"tripId"`
}

type ResetTripResponse struct{}

type DeleteTripRequest struct {
	TripId string `json:"tripId"`
}

type DeleteTripResponse struct{}

type AddParticipantRequest struct {
	TripId string `json:"tripId"`
	Name   string `json:"name"`
}

type AddParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

type ListParticipantsRequest struct {
	TripId string `json:"tripId"`
}

type ListParticipantsResponse struct {
	Participants []*Participant `json:"participants"`
}

type GetTripSummaryRequest struct {
	TripId string `json:"tripId"`
}

type GetTripSummaryResponse struct {
	Trip             *Trip            `json:"trip"`
	MemberBalances   []*MemberBalance `json:"memberBalances"`
	Settlements      []*Settlement    `json:"settlements"`
	TotalAmount      decimal.Decimal  `json:"totalAmount"`
	ParticipantCount int32            `json:"participantCount"`
	ExpenseCount     int32            `json:"expenseCount"`
	// Settled is true when no payments are needed.
	Settled bool `json:"settled"`
}

type AddExpenseRequest struct {
	TripId  string          `json:"tripId"`
	Title   string          `json:"title"`
	Amount  decimal.Decimal `json:"amount"`
	PayerId string          `json:"payerId"`
	// IncludedParticipantIds defaults to every participant of the trip when empty.
	IncludedParticipantIds []string `json:"includedParticipantIds,omitempty"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct {
	TripId string `json:"tripId"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type QuickSplitRequest struct {
	Total      decimal.Decimal `json:"total"`
	People     int32           `json:"people"`
	TipPercent decimal.Decimal `json:"tipPercent"`
}

type QuickSplitResponse struct {
	Total      decimal.Decimal `json:"total"`
	People     int32           `json:"people"`
	TipPercent decimal.Decimal `json:"tipPercent"`
	TipAmount  decimal.Decimal `json:"tipAmount"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
	PerPerson  decimal.Decimal `json:"perPerson"`
}
