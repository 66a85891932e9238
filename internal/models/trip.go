package models

import "strings"

// Trip is the unit that owns participants and expenses.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string

	// Name is the display name of the trip (e.g., "Goa Getaway").
	Name string

	// Location is where the trip takes place. Optional.
	Location string

	// Dates is a free-form description of when the trip happens. Optional.
	Dates string

	// CreatedAt is the Unix timestamp when the trip was created.
	CreatedAt int64
}

// Line renders the trip details as "name · location · dates", skipping empty parts.
func (t *Trip) Line() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{t.Name, t.Location, t.Dates} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " · ")
}
