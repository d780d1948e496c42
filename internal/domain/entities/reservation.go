package entities

import "time"

// ReservationStatus is the booking lifecycle state.
//
// State machine:
//
//	pending --(payment confirmation webhook)--> confirmed
//	pending --(manual landlord action)--------> confirmed | cancelled
//	confirmed, cancelled: terminal
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled:
		return true
	}
	return false
}

func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusConfirmed || s == ReservationStatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
// Terminal states accept no further transitions.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	return s == ReservationStatusPending &&
		(next == ReservationStatusConfirmed || next == ReservationStatusCancelled)
}

// Reservation is a tenant's booking of a housing unit, persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//   - GSI1 (tenant_id-index): tenant_id
//   - GSI2 (housing_id-index): housing_id
//
// Monetary fields are snapshots taken at creation time. The housing's live
// price may change afterwards without affecting an existing reservation, and
// once Status leaves pending the snapshot is frozen: confirmation only ever
// writes Status and Mismatch.
//
// Derivations (enforced at creation, never recomputed in place):
//
//	Commission  = round2(CommissionRate * (BaseRent + Deposit))
//	TotalAmount = round2(BaseRent + Deposit + Commission)

type Reservation struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	HousingID string    `json:"housing_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	BaseRent       float64 `json:"base_rent"`
	Deposit        float64 `json:"deposit"`
	CommissionRate float64 `json:"commission_rate"`
	Commission     float64 `json:"commission"`
	TotalAmount    float64 `json:"total_amount"`

	Status ReservationStatus `json:"status"`

	// Mismatch is set during payment confirmation when the total recomputed
	// from current housing data diverges from TotalAmount by more than one
	// cent. It flags the reservation for back-office review; it never blocks
	// confirmation.
	Mismatch bool `json:"mismatch"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
