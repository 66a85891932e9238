package models

import "testing"

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Alice", "A"},
		{"alice cooper", "AC"},
		{"  mary  jane watson ", "MJ"},
		{"", ""},
		{"élodie durand", "ÉD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Initials(tt.name); got != tt.want {
				t.Errorf("Initials(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewParticipantTrimsName(t *testing.T) {
	p := NewParticipant("trip-1", "  Bob Marley ")
	if p.Name != "Bob Marley" {
		t.Errorf("Name = %q, want %q", p.Name, "Bob Marley")
	}
	if p.Initials != "BM" {
		t.Errorf("Initials = %q, want %q", p.Initials, "BM")
	}
	if p.TripID != "trip-1" {
		t.Errorf("TripID = %q, want %q", p.TripID, "trip-1")
	}
}

func TestTripLine(t *testing.T) {
	tests := []struct {
		trip Trip
		want string
	}{
		{Trip{}, ""},
		{Trip{Name: "Goa"}, "Goa"},
		{Trip{Name: "Goa", Dates: "Dec 1-5"}, "Goa · Dec 1-5"},
		{Trip{Name: "Goa", Location: "India", Dates: "Dec 1-5"}, "Goa · India · Dec 1-5"},
	}

	for _, tt := range tests {
		if got := tt.trip.Line(); got != tt.want {
			t.Errorf("Line() = %q, want %q", got, tt.want)
		}
	}
}

func TestExpenseIncludes(t *testing.T) {
	e := &Expense{IncludedParticipantIDs: []string{"a", "b"}}
	if !e.Includes("a") {
		t.Error("expected a to be included")
	}
	if e.Includes("c") {
		t.Error("expected c not to be included")
	}
}
