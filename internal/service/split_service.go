package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
	"github.com/mmynk/tripsplit/pkg/api"
	"github.com/mmynk/tripsplit/pkg/api/apiconnect"
)

// SplitService implements the Connect SplitService
type SplitService struct {
	apiconnect.UnimplementedSplitServiceHandler
	store storage.Store
}

// NewSplitService creates a new SplitService with the given storage backend.
func NewSplitService(store storage.Store) *SplitService {
	return &SplitService{store: store}
}

// resolveIncluded deduplicates the requested participant IDs and checks each
// against the trip. An empty request means everyone currently on the trip.
func resolveIncluded(requested []string, participants []*models.Participant) ([]string, error) {
	known := make(map[string]bool, len(participants))
	for _, p := range participants {
		known[p.ID] = true
	}

	if len(requested) == 0 {
		all := make([]string, len(participants))
		for i, p := range participants {
			all[i] = p.ID
		}
		return all, nil
	}

	seen := make(map[string]bool, len(requested))
	included := make([]string, 0, len(requested))
	for _, id := range requested {
		if seen[id] {
			continue
		}
		if !known[id] {
			return nil, fmt.Errorf("participant %q: %w", id, ErrUnknownParticipant)
		}
		seen[id] = true
		included = append(included, id)
	}
	return included, nil
}

// validateExpense checks the request fields that do not need the store.
func validateExpense(msg *api.AddExpenseRequest) error {
	if msg.TripId == "" {
		return ErrTripIDRequired
	}
	if strings.TrimSpace(msg.Title) == "" {
		return ErrTitleRequired
	}
	if !msg.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if msg.PayerId == "" {
		return ErrPayerRequired
	}
	return nil
}

// AddExpense records an expense against a trip.
func (s *SplitService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	slog.Info("AddExpense request received",
		"trip_id", req.Msg.TripId,
		"title", req.Msg.Title,
		"amount", req.Msg.Amount.String(),
		"payer_id", req.Msg.PayerId,
		"included_count", len(req.Msg.IncludedParticipantIds),
	)

	if err := validateExpense(req.Msg); err != nil {
		return nil, fail("AddExpense", err, "trip_id", req.Msg.TripId)
	}

	if _, err := s.store.GetTrip(ctx, req.Msg.TripId); err != nil {
		return nil, fail("AddExpense", err, "trip_id", req.Msg.TripId)
	}
	participants, err := s.store.ListParticipants(ctx, req.Msg.TripId)
	if err != nil {
		return nil, fail("AddExpense", err, "trip_id", req.Msg.TripId)
	}
	if len(participants) == 0 {
		return nil, fail("AddExpense", ErrNoParticipants, "trip_id", req.Msg.TripId)
	}

	payerKnown := false
	for _, p := range participants {
		if p.ID == req.Msg.PayerId {
			payerKnown = true
			break
		}
	}
	if !payerKnown {
		err := fmt.Errorf("payer %q: %w", req.Msg.PayerId, ErrUnknownParticipant)
		return nil, fail("AddExpense", err, "trip_id", req.Msg.TripId)
	}

	included, err := resolveIncluded(req.Msg.IncludedParticipantIds, participants)
	if err != nil {
		return nil, fail("AddExpense", err, "trip_id", req.Msg.TripId)
	}

	expense := &models.Expense{
		TripID:                 req.Msg.TripId,
		Title:                  strings.TrimSpace(req.Msg.Title),
		Amount:                 req.Msg.Amount,
		PayerID:                req.Msg.PayerId,
		IncludedParticipantIDs: included,
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.AddExpense(ctx, expense); err != nil {
		return nil, fail("AddExpense", err, "trip_id", req.Msg.TripId)
	}

	slog.Info("Expense added",
		"trip_id", expense.TripID,
		"expense_id", expense.ID,
		"included_count", len(included),
	)

	return connect.NewResponse(&api.AddExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// ListExpenses retrieves the expenses of a trip in the order they were added.
func (s *SplitService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	slog.Info("ListExpenses request received", "trip_id", req.Msg.TripId)

	if req.Msg.TripId == "" {
		return nil, fail("ListExpenses", ErrTripIDRequired)
	}
	if _, err := s.store.GetTrip(ctx, req.Msg.TripId); err != nil {
		return nil, fail("ListExpenses", err, "trip_id", req.Msg.TripId)
	}
	expenses, err := s.store.ListExpenses(ctx, req.Msg.TripId)
	if err != nil {
		return nil, fail("ListExpenses", err, "trip_id", req.Msg.TripId)
	}

	out := make([]*api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toAPIExpense(e)
	}

	slog.Info("ListExpenses successful", "trip_id", req.Msg.TripId, "count", len(out))

	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

// QuickSplit divides a single bill plus tip evenly. Nothing is stored.
func (s *SplitService) QuickSplit(_ context.Context, req *connect.Request[api.QuickSplitRequest]) (*connect.Response[api.QuickSplitResponse], error) {
	slog.Debug("QuickSplit request received",
		"total", req.Msg.Total.String(),
		"people", req.Msg.People,
		"tip_percent", req.Msg.TipPercent.String(),
	)

	result, err := calculator.QuickSplit(req.Msg.Total, int(req.Msg.People), req.Msg.TipPercent)
	if err != nil {
		return nil, fail("QuickSplit", err)
	}

	return connect.NewResponse(&api.QuickSplitResponse{
		Total:      result.Total,
		People:     int32(result.People),
		TipPercent: result.TipPercent,
		TipAmount:  result.TipAmount,
		GrandTotal: result.GrandTotal,
		PerPerson:  result.PerPerson,
	}), nil
}
