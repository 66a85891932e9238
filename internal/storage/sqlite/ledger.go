package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
)

// AddParticipant persists a new participant to the database.
func (s *SQLiteStore) AddParticipant(ctx context.Context, participant *models.Participant) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := tripExists(ctx, tx, participant.TripID); err != nil {
			return err
		}
		return insertParticipant(ctx, tx, participant)
	})
}

// insertParticipant fills in the ID and CreatedAt if unset and inserts the row.
func insertParticipant(ctx context.Context, tx *sql.Tx, participant *models.Participant) error {
	if participant.ID == "" {
		participant.ID = uuid.New().String()
	}
	if participant.CreatedAt == 0 {
		participant.CreatedAt = time.Now().Unix()
	}

	_, err := tx.ExecContext(ctx,
		"INSERT INTO participants (id, trip_id, name, initials, created_at) VALUES (?, ?, ?, ?, ?)",
		participant.ID, participant.TripID, participant.Name, participant.Initials, participant.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	return nil
}

// ListParticipants retrieves all participants of a trip in the order they were added.
func (s *SQLiteStore) ListParticipants(ctx context.Context, tripID string) ([]*models.Participant, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, trip_id, name, initials, created_at FROM participants WHERE trip_id = ? ORDER BY rowid",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*models.Participant
	for rows.Next() {
		p := &models.Participant{}
		if err := rows.Scan(&p.ID, &p.TripID, &p.Name, &p.Initials, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return participants, nil
}

// AddExpense persists a new expense together with its shares.
func (s *SQLiteStore) AddExpense(ctx context.Context, expense *models.Expense) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := tripExists(ctx, tx, expense.TripID); err != nil {
			return err
		}
		return insertExpense(ctx, tx, expense)
	})
}

// insertExpense fills in the ID and CreatedAt if unset and inserts the expense
// and one share row per distinct included participant.
func insertExpense(ctx context.Context, tx *sql.Tx, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	_, err := tx.ExecContext(ctx,
		"INSERT INTO expenses (id, trip_id, title, amount, payer_id, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		expense.ID, expense.TripID, expense.Title, expense.Amount.String(), expense.PayerID, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for _, participantID := range expense.IncludedParticipantIDs {
		_, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO expense_shares (expense_id, participant_id) VALUES (?, ?)",
			expense.ID, participantID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense share: %w", err)
		}
	}
	return nil
}

// ImportTrip writes a trip with its participants and expenses in one transaction.
func (s *SQLiteStore) ImportTrip(ctx context.Context, trip *models.Trip, participants []*models.Participant, expenses []*models.Expense) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := insertTrip(ctx, tx, trip); err != nil {
			return err
		}
		for _, p := range participants {
			p.TripID = trip.ID
			if err := insertParticipant(ctx, tx, p); err != nil {
				return err
			}
		}
		for _, e := range expenses {
			e.TripID = trip.ID
			if err := insertExpense(ctx, tx, e); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListExpenses retrieves all expenses of a trip in the order they were recorded.
func (s *SQLiteStore) ListExpenses(ctx context.Context, tripID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, trip_id, title, amount, payer_id, created_at FROM expenses WHERE trip_id = ? ORDER BY rowid",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	byID := make(map[string]*models.Expense)
	for rows.Next() {
		e := &models.Expense{IncludedParticipantIDs: []string{}}
		if err := rows.Scan(&e.ID, &e.TripID, &e.Title, &e.Amount, &e.PayerID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
		byID[e.ID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	rows.Close()

	if len(expenses) == 0 {
		return expenses, nil
	}

	// Load all shares of the trip in one pass
	shareRows, err := s.db.QueryContext(ctx,
		`SELECT s.expense_id, s.participant_id
		 FROM expense_shares s JOIN expenses e ON e.id = s.expense_id
		 WHERE e.trip_id = ? ORDER BY s.rowid`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense shares: %w", err)
	}
	defer shareRows.Close()

	for shareRows.Next() {
		var expenseID, participantID string
		if err := shareRows.Scan(&expenseID, &participantID); err != nil {
			return nil, fmt.Errorf("failed to scan expense share: %w", err)
		}
		if e, ok := byID[expenseID]; ok {
			e.IncludedParticipantIDs = append(e.IncludedParticipantIDs, participantID)
		}
	}
	if err := shareRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense shares: %w", err)
	}

	return expenses, nil
}

// tripExists returns ErrNotFound unless the trip row is present.
func tripExists(ctx context.Context, tx *sql.Tx, tripID string) error {
	var exists int
	err := tx.QueryRowContext(ctx, "SELECT 1 FROM trips WHERE id = ?", tripID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check trip existence: %w", err)
	}
	return nil
}
