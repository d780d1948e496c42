// Package pricing holds the pure monetary computations of the booking core.
// No I/O, no state: callers are responsible for rejecting negative or
// non-finite inputs before calling.
//
// Two unrelated price formulas live here and must not be conflated:
//
//   - ComputeBreakdown is the charge actually billed for a reservation
//     (rent + deposit + commission).
//   - ProratedTotal is a legacy day-prorated price retained only to validate
//     that a booking window is non-degenerate; together with Cents it also
//     documents how amounts become payment-gateway minor units.
package pricing

import (
	"math"
	"time"
)

// DaysPerMonth is the fixed month convention of the legacy prorated formula.
const DaysPerMonth = 30

// Breakdown is a reservation's monetary decomposition. BaseRent is the
// unrounded pass-through of the input monthly rent; Commission and Total are
// rounded to 2 decimals.
type Breakdown struct {
	BaseRent       float64
	Deposit        float64
	CommissionRate float64
	Commission     float64
	Total          float64
}

// ComputeBreakdown derives the charge for a reservation:
//
//	base       = monthlyRent + deposit
//	commission = round2(base * commissionRate)
//	total      = round2(base + commission)
//
// The two-stage rounding (commission first, then total from the rounded
// commission) is intentional: rounding total straight from the unrounded
// commission occasionally disagrees by one cent.
func ComputeBreakdown(monthlyRent, deposit, commissionRate float64) Breakdown {
	base := monthlyRent + deposit
	commission := Round2(base * commissionRate)
	total := Round2(base + commission)
	return Breakdown{
		BaseRent:       monthlyRent,
		Deposit:        deposit,
		CommissionRate: commissionRate,
		Commission:     commission,
		Total:          total,
	}
}

// ProratedTotal computes the legacy day-prorated price of a date window from
// a monthly rate: whole days by ceiling division of the millisecond span,
// daily rate = monthlyRent / 30. Returns 0 when end is not strictly after
// start, which is the only property the booking flow still relies on.
//
// This is NOT the amount a reservation is charged; see ComputeBreakdown.
func ProratedTotal(monthlyRent float64, start, end time.Time) float64 {
	span := end.Sub(start).Milliseconds()
	if span <= 0 {
		return 0
	}
	const dayMs = 24 * 60 * 60 * 1000
	days := (span + dayMs - 1) / dayMs
	dailyRate := monthlyRent / DaysPerMonth
	return Round2(dailyRate * float64(days))
}

// Cents converts a 2-decimal currency amount to integer minor units for the
// payment gateway's amount field.
func Cents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// Round2 rounds half away from zero to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
