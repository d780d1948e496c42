package request

import (
	"errors"
	"testing"
	"time"
)

func TestCheckoutRequest_ResolveHousingID(t *testing.T) {
	r := CheckoutRequest{HousingID: " h-123 "}
	if got := r.ResolveHousingID(); got != "h-123" {
		t.Fatalf("expected h-123, got %q", got)
	}

	r2 := CheckoutRequest{HousingID: "   "}
	if got := r2.ResolveHousingID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestCheckoutRequest_ResolveDates(t *testing.T) {
	r := CheckoutRequest{StartDate: "2025-09-01T00:00:00Z", EndDate: " 2025-10-01 "}
	start, end, err := r.ResolveDates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %v", start)
	}
	if !end.After(start) {
		t.Fatalf("expected end after start: %v / %v", start, end)
	}

	r2 := CheckoutRequest{StartDate: "01/09/2025", EndDate: "2025-10-01"}
	if _, _, err := r2.ResolveDates(); !errors.Is(err, ErrInvalidBookingDates) {
		t.Fatalf("expected ErrInvalidBookingDates, got %v", err)
	}

	r3 := CheckoutRequest{StartDate: "2025-09-01", EndDate: "2025-09-31"}
	if _, _, err := r3.ResolveDates(); !errors.Is(err, ErrInvalidBookingDates) {
		t.Fatalf("expected ErrInvalidBookingDates, got %v", err)
	}
}

func TestReservationStatusRequest_ResolveStatus(t *testing.T) {
	r := ReservationStatusRequest{Status: " Confirmed "}
	if got := r.ResolveStatus(); got != "confirmed" {
		t.Fatalf("expected confirmed, got %q", got)
	}
}
