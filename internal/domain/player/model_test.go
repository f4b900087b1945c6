package player

import (
	"errors"
	"testing"
)

func TestCheckDuplicate(t *testing.T) {
	t.Parallel()

	roster := []Player{
		{ID: "p1", TeamID: "t1", Name: "Budi Santoso", JerseyNumber: 10},
		{ID: "p2", TeamID: "t2", Name: "Andi", JerseyNumber: 7},
	}

	if err := CheckDuplicate(roster, Player{TeamID: "t1", Name: "Rudi", JerseyNumber: 10}); !errors.Is(err, ErrDuplicateJersey) {
		t.Fatalf("expected duplicate jersey, got %v", err)
	}
	if err := CheckDuplicate(roster, Player{TeamID: "t1", Name: " budi santoso ", JerseyNumber: 11}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected duplicate name, got %v", err)
	}
	if err := CheckDuplicate(roster, Player{TeamID: "t1", Name: "Andi", JerseyNumber: 7}); err != nil {
		t.Fatalf("players of other teams must not conflict: %v", err)
	}
}

func TestPlayerValidate(t *testing.T) {
	t.Parallel()

	if err := (Player{ID: "p", TeamID: "t", Name: "A", JerseyNumber: -1}).Validate(); err == nil {
		t.Fatalf("expected error for negative jersey")
	}
	if err := (Player{ID: "p", TeamID: "t", Name: "A", JerseyNumber: 0}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
