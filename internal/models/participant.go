package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Participant is a person sharing trip costs.
// Participants are created once and never mutated or removed.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string

	// TripID is the trip this participant belongs to.
	TripID string

	// Name is the display name. Never empty.
	Name string

	// Initials are derived from Name when the participant is added.
	Initials string

	// CreatedAt is the Unix timestamp when the participant was added.
	CreatedAt int64
}

// Initials returns the upper-cased first letters of the first two words of name.
func Initials(name string) string {
	var b strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// NewParticipant builds a participant for tripID with initials filled in.
// ID and CreatedAt are assigned by the store.
func NewParticipant(tripID, name string) *Participant {
	name = strings.TrimSpace(name)
	return &Participant{
		TripID:   tripID,
		Name:     name,
		Initials: Initials(name),
	}
}
