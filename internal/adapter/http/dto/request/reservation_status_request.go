package request

import "strings"

// ReservationStatusRequest is the payload for the landlord's manual status
// override route.
type ReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r ReservationStatusRequest) ResolveStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}
