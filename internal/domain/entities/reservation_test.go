package entities

import "testing"

func TestReservationStatus_IsValid(t *testing.T) {
	for _, s := range []ReservationStatus{ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled} {
		if !s.IsValid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	for _, s := range []ReservationStatus{"", "refunded", "PENDING"} {
		if s.IsValid() {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestReservationStatus_IsTerminal(t *testing.T) {
	if ReservationStatusPending.IsTerminal() {
		t.Fatal("pending must not be terminal")
	}
	if !ReservationStatusConfirmed.IsTerminal() || !ReservationStatusCancelled.IsTerminal() {
		t.Fatal("confirmed and cancelled must be terminal")
	}
}

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	if !ReservationStatusPending.CanTransitionTo(ReservationStatusConfirmed) {
		t.Fatal("pending -> confirmed must be allowed")
	}
	if !ReservationStatusPending.CanTransitionTo(ReservationStatusCancelled) {
		t.Fatal("pending -> cancelled must be allowed")
	}
	if ReservationStatusPending.CanTransitionTo(ReservationStatusPending) {
		t.Fatal("pending -> pending must be rejected")
	}
	if ReservationStatusConfirmed.CanTransitionTo(ReservationStatusCancelled) {
		t.Fatal("terminal states accept no transitions")
	}
	if ReservationStatusCancelled.CanTransitionTo(ReservationStatusConfirmed) {
		t.Fatal("terminal states accept no transitions")
	}
}
