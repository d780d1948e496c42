package events

// Event names emitted by the booking core. Subscribers are registered once at
// startup; payloads are the typed structs below.
const (
	BookingCreated       = "booking.created"
	BookingConfirmed     = "booking.confirmed"
	BookingStatusUpdated = "booking.statusUpdated"
)

type BookingCreatedPayload struct {
	ReservationID string  `json:"reservation_id"`
	TenantID      string  `json:"tenant_id"`
	HousingID     string  `json:"housing_id"`
	Total         float64 `json:"total"`
}

type BookingConfirmedPayload struct {
	ReservationID string  `json:"reservation_id"`
	Mismatch      bool    `json:"mismatch"`
	ExpectedTotal float64 `json:"expected_total"`
	RecordedTotal float64 `json:"recorded_total"`
}

type BookingStatusUpdatedPayload struct {
	ReservationID string `json:"reservation_id"`
	HousingID     string `json:"housing_id"`
	Status        string `json:"status"`
}
