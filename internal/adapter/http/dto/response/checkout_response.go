package response

import "rentora/internal/usecase"

// CheckoutResponse is the payload returned by the booking-checkout route: the
// gateway session plus a snapshot of the priced reservation.
type CheckoutResponse struct {
	SessionID   string              `json:"session_id"`
	RedirectURL string              `json:"url"`
	Replayed    bool                `json:"replayed,omitempty"`
	Reservation ReservationResponse `json:"reservation"`
}

func FromCheckoutResult(result usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		SessionID:   result.SessionID,
		RedirectURL: result.RedirectURL,
		Replayed:    result.Replayed,
		Reservation: FromReservation(result.Reservation),
	}
}
