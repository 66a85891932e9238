package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
	"github.com/mmynk/tripsplit/pkg/api"
	"github.com/mmynk/tripsplit/pkg/api/apiconnect"
)

// TripService implements the Connect TripService
type TripService struct {
	apiconnect.UnimplementedTripServiceHandler
	store storage.Store
}

// NewTripService creates a new TripService with the given storage backend.
func NewTripService(store storage.Store) *TripService {
	return &TripService{store: store}
}

// CreateTrip creates a new trip. An empty name is replaced by a dated default.
func (s *TripService) CreateTrip(ctx context.Context, req *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	slog.Info("CreateTrip request received",
		"name", req.Msg.Name,
		"location", req.Msg.Location,
	)

	trip := &models.Trip{
		Name:     strings.TrimSpace(req.Msg.Name),
		Location: strings.TrimSpace(req.Msg.Location),
		Dates:    strings.TrimSpace(req.Msg.Dates),
	}

	// Save to storage (generates ID, CreatedAt and a default name)
	if err := s.store.CreateTrip(ctx, trip); err != nil {
		return nil, fail("CreateTrip", err)
	}

	slog.Info("Trip created", "trip_id", trip.ID, "name", trip.Name)

	return connect.NewResponse(&api.CreateTripResponse{Trip: toAPITrip(trip)}), nil
}

// GetTrip retrieves a trip by ID.
func (s *TripService) GetTrip(ctx context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	slog.Info("GetTrip request received", "trip_id", req.Msg.TripId)

	trip, err := s.getTrip(ctx, req.Msg.TripId)
	if err != nil {
		return nil, fail("GetTrip", err, "trip_id", req.Msg.TripId)
	}

	return connect.NewResponse(&api.GetTripResponse{Trip: toAPITrip(trip)}), nil
}

// ListTrips retrieves all trips, newest first.
func (s *TripService) ListTrips(ctx context.Context, _ *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	slog.Info("ListTrips request received")

	trips, err := s.store.ListTrips(ctx)
	if err != nil {
		return nil, fail("ListTrips", err)
	}

	out := make([]*api.Trip, len(trips))
	for i, trip := range trips {
		out[i] = toAPITrip(trip)
	}

	slog.Info("ListTrips successful", "count", len(trips))

	return connect.NewResponse(&api.ListTripsResponse{Trips: out}), nil
}

// UpdateTrip replaces the name, location and dates of a trip.
func (s *TripService) UpdateTrip(ctx context.Context, req *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error) {
	slog.Info("UpdateTrip request received",
		"trip_id", req.Msg.TripId,
		"name", req.Msg.Name,
	)

	if req.Msg.TripId == "" {
		return nil, fail("UpdateTrip", ErrTripIDRequired)
	}

	trip := &models.Trip{
		ID:       req.Msg.TripId,
		Name:     strings.TrimSpace(req.Msg.Name),
		Location: strings.TrimSpace(req.Msg.Location),
		Dates:    strings.TrimSpace(req.Msg.Dates),
	}
	if err := s.store.UpdateTrip(ctx, trip); err != nil {
		return nil, fail("UpdateTrip", err, "trip_id", trip.ID)
	}

	// Fetch updated trip to get CreatedAt
	updated, err := s.store.GetTrip(ctx, trip.ID)
	if err != nil {
		return nil, fail("UpdateTrip", err, "trip_id", trip.ID)
	}

	slog.Info("Trip updated", "trip_id", trip.ID)

	return connect.NewResponse(&api.UpdateTripResponse{Trip: toAPITrip(updated)}), nil
}

// ResetTrip clears a trip's details and removes its participants and expenses.
func (s *TripService) ResetTrip(ctx context.Context, req *connect.Request[api.ResetTripRequest]) (*connect.Response[api.ResetTripResponse], error) {
	slog.Info("ResetTrip request received", "trip_id", req.Msg.TripId)

	if req.Msg.TripId == "" {
		return nil, fail("ResetTrip", ErrTripIDRequired)
	}
	if err := s.store.ResetTrip(ctx, req.Msg.TripId); err != nil {
		return nil, fail("ResetTrip", err, "trip_id", req.Msg.TripId)
	}

	slog.Info("Trip reset", "trip_id", req.Msg.TripId)

	return connect.NewResponse(&api.ResetTripResponse{}), nil
}

// DeleteTrip removes a trip by ID.
func (s *TripService) DeleteTrip(ctx context.Context, req *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	slog.Info("DeleteTrip request received", "trip_id", req.Msg.TripId)

	if req.Msg.TripId == "" {
		return nil, fail("DeleteTrip", ErrTripIDRequired)
	}
	if err := s.store.DeleteTrip(ctx, req.Msg.TripId); err != nil {
		return nil, fail("DeleteTrip", err, "trip_id", req.Msg.TripId)
	}

	slog.Info("Trip deleted", "trip_id", req.Msg.TripId)

	return connect.NewResponse(&api.DeleteTripResponse{}), nil
}

// AddParticipant adds a named participant to a trip.
func (s *TripService) AddParticipant(ctx context.Context, req *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error) {
	slog.Info("AddParticipant request received",
		"trip_id", req.Msg.TripId,
		"name", req.Msg.Name,
	)

	if req.Msg.TripId == "" {
		return nil, fail("AddParticipant", ErrTripIDRequired)
	}
	participant := models.NewParticipant(req.Msg.TripId, req.Msg.Name)
	if participant.Name == "" {
		return nil, fail("AddParticipant", ErrNameRequired, "trip_id", req.Msg.TripId)
	}

	if err := s.store.AddParticipant(ctx, participant); err != nil {
		return nil, fail("AddParticipant", err, "trip_id", req.Msg.TripId)
	}

	slog.Info("Participant added",
		"trip_id", participant.TripID,
		"participant_id", participant.ID,
	)

	return connect.NewResponse(&api.AddParticipantResponse{
		Participant: toAPIParticipant(participant),
	}), nil
}

// ListParticipants retrieves the participants of a trip in the order they were added.
func (s *TripService) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	slog.Info("ListParticipants request received", "trip_id", req.Msg.TripId)

	if _, err := s.getTrip(ctx, req.Msg.TripId); err != nil {
		return nil, fail("ListParticipants", err, "trip_id", req.Msg.TripId)
	}
	participants, err := s.store.ListParticipants(ctx, req.Msg.TripId)
	if err != nil {
		return nil, fail("ListParticipants", err, "trip_id", req.Msg.TripId)
	}

	out := make([]*api.Participant, len(participants))
	for i, p := range participants {
		out[i] = toAPIParticipant(p)
	}

	return connect.NewResponse(&api.ListParticipantsResponse{Participants: out}), nil
}

// GetTripSummary computes balances, totals and the settlement plan for a trip.
func (s *TripService) GetTripSummary(ctx context.Context, req *connect.Request[api.GetTripSummaryRequest]) (*connect.Response[api.GetTripSummaryResponse], error) {
	slog.Info("GetTripSummary request received", "trip_id", req.Msg.TripId)

	trip, err := s.getTrip(ctx, req.Msg.TripId)
	if err != nil {
		return nil, fail("GetTripSummary", err, "trip_id", req.Msg.TripId)
	}
	participants, err := s.store.ListParticipants(ctx, trip.ID)
	if err != nil {
		return nil, fail("GetTripSummary", err, "trip_id", trip.ID)
	}
	expenses, err := s.store.ListExpenses(ctx, trip.ID)
	if err != nil {
		return nil, fail("GetTripSummary", err, "trip_id", trip.ID)
	}

	summary := calculator.Summarize(participants, expenses)

	slog.Info("GetTripSummary successful",
		"trip_id", trip.ID,
		"participants", summary.ParticipantCount,
		"expenses", summary.ExpenseCount,
		"settlements", len(summary.Settlements),
	)

	return connect.NewResponse(toAPISummary(trip, summary)), nil
}

func (s *TripService) getTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	if tripID == "" {
		return nil, ErrTripIDRequired
	}
	return s.store.GetTrip(ctx, tripID)
}
