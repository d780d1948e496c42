package response

import (
	"time"

	"rentora/internal/domain/entities"
)

type ReservationResponse struct {
	ID             string    `json:"id"`
	TenantID       string    `json:"tenant_id"`
	HousingID      string    `json:"housing_id"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	BaseRent       float64   `json:"base_rent"`
	Deposit        float64   `json:"deposit"`
	CommissionRate float64   `json:"commission_rate"`
	Commission     float64   `json:"commission"`
	TotalAmount    float64   `json:"total_amount"`
	Status         string    `json:"status"`
	Mismatch       bool      `json:"mismatch"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromReservation(res entities.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:             res.ID,
		TenantID:       res.TenantID,
		HousingID:      res.HousingID,
		StartDate:      res.StartDate,
		EndDate:        res.EndDate,
		BaseRent:       res.BaseRent,
		Deposit:        res.Deposit,
		CommissionRate: res.CommissionRate,
		Commission:     res.Commission,
		TotalAmount:    res.TotalAmount,
		Status:         string(res.Status),
		Mismatch:       res.Mismatch,
		CreatedAt:      res.CreatedAt,
		UpdatedAt:      res.UpdatedAt,
	}
}

func FromReservations(items []entities.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(items))
	for _, res := range items {
		out = append(out, FromReservation(res))
	}
	return out
}
