package models

import "testing"

func TestRendezVousStatusTransitions(t *testing.T) {
	cases := []struct {
		from    RendezVousStatus
		to      RendezVousStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestRendezVousStatusValid(t *testing.T) {
	for _, s := range []RendezVousStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if RendezVousStatus("postponed").Valid() {
		t.Error("unknown status should not be valid")
	}
	if RendezVousStatus("").Valid() {
		t.Error("empty status should not be valid")
	}
}
