package entities

import "time"

// Housing is the listing a reservation points at. Listing CRUD and search
// belong to the listings service; this service only reads the pricing
// attributes when creating a checkout session and when reconciling a payment
// confirmation.
//
// Storage model (DynamoDB):
//   - PK: id

type Housing struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Title        string    `json:"title"`
	MonthlyPrice float64   `json:"monthly_price"`
	Deposit      float64   `json:"deposit"`
	CreatedAt    time.Time `json:"created_at"`
}

// Role is the authenticated caller's role as carried in the JWT issued by the
// auth service. Checkout requires tenant; manual status updates require the
// landlord owning the housing.
type Role string

const (
	RoleTenant   Role = "tenant"
	RoleLandlord Role = "landlord"
)
