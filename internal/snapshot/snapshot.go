// Package snapshot exports a trip with its participants and expenses to a
// single YAML or JSON document and imports such documents back as new trips.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
)

// Version is the document version written by Export.
const Version = 1

var (
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	ErrInvalid            = errors.New("invalid snapshot")
)

// Format selects the document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks JSON for .json files and YAML for everything else.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Document is the serialized state of one trip.
type Document struct {
	Version      int           `yaml:"version" json:"version"`
	Trip         Trip          `yaml:"trip" json:"trip"`
	Participants []Participant `yaml:"participants" json:"participants"`
	Expenses     []Expense     `yaml:"expenses" json:"expenses"`
}

type Trip struct {
	Name      string `yaml:"name" json:"name"`
	Location  string `yaml:"location,omitempty" json:"location,omitempty"`
	Dates     string `yaml:"dates,omitempty" json:"dates,omitempty"`
	CreatedAt int64  `yaml:"createdAt,omitempty" json:"createdAt,omitempty"`
}

type Participant struct {
	ID        string `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	CreatedAt int64  `yaml:"createdAt,omitempty" json:"createdAt,omitempty"`
}

type Expense struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	// Amount is a decimal string, e.g. "90.50".
	Amount                 string   `yaml:"amount" json:"amount"`
	PayerID                string   `yaml:"payerId" json:"payerId"`
	IncludedParticipantIDs []string `yaml:"includedParticipantIds" json:"includedParticipantIds"`
	CreatedAt              int64    `yaml:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// Encode writes doc to w.
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown snapshot format %q", format)
	}
}

// Decode reads a document from r and checks its version.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	default:
		return nil, fmt.Errorf("unknown snapshot format %q", format)
	}

	if doc.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	return &doc, nil
}

// Export reads a trip and its ledger from store.
func Export(ctx context.Context, store storage.Store, tripID string) (*Document, error) {
	trip, err := store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	participants, err := store.ListParticipants(ctx, tripID)
	if err != nil {
		return nil, err
	}
	expenses, err := store.ListExpenses(ctx, tripID)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Version: Version,
		Trip: Trip{
			Name:      trip.Name,
			Location:  trip.Location,
			Dates:     trip.Dates,
			CreatedAt: trip.CreatedAt,
		},
		Participants: make([]Participant, len(participants)),
		Expenses:     make([]Expense, len(expenses)),
	}
	for i, p := range participants {
		doc.Participants[i] = Participant{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt}
	}
	for i, e := range expenses {
		doc.Expenses[i] = Expense{
			ID:                     e.ID,
			Title:                  e.Title,
			Amount:                 e.Amount.String(),
			PayerID:                e.PayerID,
			IncludedParticipantIDs: e.IncludedParticipantIDs,
			CreatedAt:              e.CreatedAt,
		}
	}
	return doc, nil
}

// Import stores doc as a new trip and returns it. Participants and expenses
// get fresh IDs; expense references to participants in the document are
// rewritten and any other reference is kept as written.
//
// The document is fully validated first and then written with a single
// ImportTrip call, so a failed import leaves the store unchanged.
func Import(ctx context.Context, store storage.Store, doc *Document) (*models.Trip, error) {
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}

	trip := &models.Trip{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(doc.Trip.Name),
		Location:  doc.Trip.Location,
		Dates:     doc.Trip.Dates,
		CreatedAt: doc.Trip.CreatedAt,
	}

	rekey := make(map[string]string, len(doc.Participants))
	participants := make([]*models.Participant, 0, len(doc.Participants))
	for i, p := range doc.Participants {
		participant := models.NewParticipant(trip.ID, p.Name)
		if participant.Name == "" {
			return nil, fmt.Errorf("%w: participant %d has no name", ErrInvalid, i)
		}
		participant.ID = uuid.New().String()
		participant.CreatedAt = p.CreatedAt
		if p.ID != "" {
			if _, dup := rekey[p.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate participant id %q", ErrInvalid, p.ID)
			}
			rekey[p.ID] = participant.ID
		}
		participants = append(participants, participant)
	}

	mapID := func(id string) string {
		if newID, ok := rekey[id]; ok {
			return newID
		}
		return id
	}

	expenses := make([]*models.Expense, 0, len(doc.Expenses))
	for i, e := range doc.Expenses {
		amount, err := decimal.NewFromString(strings.TrimSpace(e.Amount))
		if err != nil {
			return nil, fmt.Errorf("%w: expense %d amount %q", ErrInvalid, i, e.Amount)
		}
		included := make([]string, len(e.IncludedParticipantIDs))
		for j, id := range e.IncludedParticipantIDs {
			included[j] = mapID(id)
		}
		expenses = append(expenses, &models.Expense{
			ID:                     uuid.New().String(),
			TripID:                 trip.ID,
			Title:                  e.Title,
			Amount:                 amount,
			PayerID:                mapID(e.PayerID),
			IncludedParticipantIDs: included,
			CreatedAt:              e.CreatedAt,
		})
	}

	if err := store.ImportTrip(ctx, trip, participants, expenses); err != nil {
		return nil, err
	}
	return trip, nil
}
