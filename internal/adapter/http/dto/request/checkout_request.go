package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidBookingDates = errors.New("invalid booking dates")

// CheckoutRequest is the payload for the booking-checkout route. Dates are
// RFC3339 timestamps; bare calendar days (YYYY-MM-DD) are accepted as
// midnight UTC. The window is half-open [start, end).
type CheckoutRequest struct {
	HousingID string `json:"housing_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

func (r CheckoutRequest) ResolveHousingID() string {
	return strings.TrimSpace(r.HousingID)
}

func (r CheckoutRequest) ResolveDates() (start, end time.Time, err error) {
	start, err = parseBookingDate(r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = parseBookingDate(r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func parseBookingDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, raw, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidBookingDates
}
