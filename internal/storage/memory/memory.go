// Package memory provides an in-process implementation of storage.Store.
// Nothing survives a restart; it backs tests and throwaway servers.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps trips, participants and expenses in maps guarded by a RWMutex.
// Callers always receive copies.
type Store struct {
	mu           sync.RWMutex
	seq          int64
	trips        map[string]*tripRecord
	participants map[string][]*models.Participant // by trip ID
	expenses     map[string][]*models.Expense     // by trip ID
	ids          map[string]struct{}              // participant and expense IDs in use
}

type tripRecord struct {
	trip models.Trip
	seq  int64
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		trips:        make(map[string]*tripRecord),
		participants: make(map[string][]*models.Participant),
		expenses:     make(map[string][]*models.Expense),
		ids:          make(map[string]struct{}),
	}
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// CreateTrip adds a trip. trip is left untouched if the call fails.
func (s *Store) CreateTrip(_ context.Context, trip *models.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.trips[trip.ID]; exists {
		return fmt.Errorf("trip %s already exists", trip.ID)
	}
	s.insertTrip(trip)
	return nil
}

func (s *Store) insertTrip(trip *models.Trip) {
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	if trip.CreatedAt == 0 {
		trip.CreatedAt = time.Now().Unix()
	}
	if trip.Name == "" {
		trip.Name = fmt.Sprintf("Trip - %s", time.Unix(trip.CreatedAt, 0).Format("Jan 2, 2006"))
	}

	s.seq++
	s.trips[trip.ID] = &tripRecord{trip: *trip, seq: s.seq}
}

// GetTrip returns a copy of the trip.
func (s *Store) GetTrip(_ context.Context, tripID string) (*models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.trips[tripID]
	if !ok {
		return nil, fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	trip := rec.trip
	return &trip, nil
}

// ListTrips returns all trips, newest first.
func (s *Store) ListTrips(_ context.Context) ([]*models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*tripRecord, 0, len(s.trips))
	for _, rec := range s.trips {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].trip.CreatedAt != records[j].trip.CreatedAt {
			return records[i].trip.CreatedAt > records[j].trip.CreatedAt
		}
		return records[i].seq > records[j].seq
	})

	trips := make([]*models.Trip, len(records))
	for i, rec := range records {
		trip := rec.trip
		trips[i] = &trip
	}
	return trips, nil
}

// UpdateTrip replaces the trip details.
func (s *Store) UpdateTrip(_ context.Context, trip *models.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.trips[trip.ID]
	if !ok {
		return fmt.Errorf("trip %s: %w", trip.ID, storage.ErrNotFound)
	}
	rec.trip.Name = trip.Name
	rec.trip.Location = trip.Location
	rec.trip.Dates = trip.Dates
	return nil
}

// ResetTrip clears the details and ledger of a trip.
func (s *Store) ResetTrip(_ context.Context, tripID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.trips[tripID]
	if !ok {
		return fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	rec.trip.Name, rec.trip.Location, rec.trip.Dates = "", "", ""
	s.deleteLedger(tripID)
	return nil
}

// DeleteTrip removes a trip and its ledger.
func (s *Store) DeleteTrip(_ context.Context, tripID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trips[tripID]; !ok {
		return fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	delete(s.trips, tripID)
	s.deleteLedger(tripID)
	return nil
}

func (s *Store) deleteLedger(tripID string) {
	for _, p := range s.participants[tripID] {
		delete(s.ids, p.ID)
	}
	for _, e := range s.expenses[tripID] {
		delete(s.ids, e.ID)
	}
	delete(s.participants, tripID)
	delete(s.expenses, tripID)
}

// claim reserves id, failing if another participant or expense already uses it.
// An empty id is replaced by a fresh UUID.
func (s *Store) claim(id string, pending map[string]struct{}) (string, error) {
	if id == "" {
		return uuid.New().String(), nil
	}
	if _, taken := s.ids[id]; taken {
		return "", fmt.Errorf("id %s already exists", id)
	}
	if _, taken := pending[id]; taken {
		return "", fmt.Errorf("id %s already exists", id)
	}
	return id, nil
}

// AddParticipant appends a participant to its trip.
func (s *Store) AddParticipant(_ context.Context, participant *models.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trips[participant.TripID]; !ok {
		return fmt.Errorf("trip %s: %w", participant.TripID, storage.ErrNotFound)
	}
	id, err := s.claim(participant.ID, nil)
	if err != nil {
		return err
	}
	participant.ID = id
	s.insertParticipant(participant)
	return nil
}

func (s *Store) insertParticipant(participant *models.Participant) {
	if participant.CreatedAt == 0 {
		participant.CreatedAt = time.Now().Unix()
	}
	stored := *participant
	s.participants[participant.TripID] = append(s.participants[participant.TripID], &stored)
	s.ids[participant.ID] = struct{}{}
}

// ListParticipants returns copies of a trip's participants.
func (s *Store) ListParticipants(_ context.Context, tripID string) ([]*models.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.participants[tripID]
	out := make([]*models.Participant, len(stored))
	for i, p := range stored {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

// AddExpense appends an expense to its trip.
func (s *Store) AddExpense(_ context.Context, expense *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trips[expense.TripID]; !ok {
		return fmt.Errorf("trip %s: %w", expense.TripID, storage.ErrNotFound)
	}
	id, err := s.claim(expense.ID, nil)
	if err != nil {
		return err
	}
	expense.ID = id
	s.insertExpense(expense)
	return nil
}

func (s *Store) insertExpense(expense *models.Expense) {
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}
	s.expenses[expense.TripID] = append(s.expenses[expense.TripID], copyExpense(expense))
	s.ids[expense.ID] = struct{}{}
}

// ImportTrip adds a trip with its participants and expenses. All IDs are
// checked before anything is stored, so a failed import leaves no trace.
func (s *Store) ImportTrip(_ context.Context, trip *models.Trip, participants []*models.Participant, expenses []*models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.trips[trip.ID]; exists {
		return fmt.Errorf("trip %s already exists", trip.ID)
	}

	pending := make(map[string]struct{}, len(participants)+len(expenses))
	participantIDs := make([]string, len(participants))
	for i, p := range participants {
		id, err := s.claim(p.ID, pending)
		if err != nil {
			return err
		}
		pending[id] = struct{}{}
		participantIDs[i] = id
	}
	expenseIDs := make([]string, len(expenses))
	for i, e := range expenses {
		id, err := s.claim(e.ID, pending)
		if err != nil {
			return err
		}
		pending[id] = struct{}{}
		expenseIDs[i] = id
	}

	s.insertTrip(trip)
	for i, p := range participants {
		p.ID = participantIDs[i]
		p.TripID = trip.ID
		s.insertParticipant(p)
	}
	for i, e := range expenses {
		e.ID = expenseIDs[i]
		e.TripID = trip.ID
		s.insertExpense(e)
	}
	return nil
}

// ListExpenses returns copies of a trip's expenses.
func (s *Store) ListExpenses(_ context.Context, tripID string) ([]*models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.expenses[tripID]
	out := make([]*models.Expense, len(stored))
	for i, e := range stored {
		out[i] = copyExpense(e)
	}
	return out, nil
}

// copyExpense copies e, dropping repeated participant ids the way the SQLite store does.
func copyExpense(e *models.Expense) *models.Expense {
	cp := *e
	cp.IncludedParticipantIDs = make([]string, 0, len(e.IncludedParticipantIDs))
	seen := make(map[string]struct{}, len(e.IncludedParticipantIDs))
	for _, id := range e.IncludedParticipantIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		cp.IncludedParticipantIDs = append(cp.IncludedParticipantIDs, id)
	}
	return &cp
}
