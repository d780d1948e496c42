package usecase

import (
	"context"
	"log"
	"math"

	"rentora/internal/domain/entities"
	"rentora/internal/domain/pricing"
	"rentora/internal/events"
	"rentora/internal/infrastructure/config"
	"rentora/internal/metrics"
	"rentora/internal/usecase/interfaces"
)

// MismatchEpsilon is the tolerance between the recomputed and the stored
// total before a confirmation is flagged for review.
const MismatchEpsilon = 0.01

// IConfirmationUseCase reconciles a payment-completion event against the
// reservation it references.
type IConfirmationUseCase interface {
	ProcessEvent(ctx context.Context, evt interfaces.WebhookEvent) error
}

// ConfirmationUseCase handles the asynchronous half of a booking. It
// re-derives the expected total from the housing's current price and deposit
// as an integrity check: a divergence beyond MismatchEpsilon sets the
// mismatch flag, but never blocks confirmation. Discrepancies are for
// back-office review, not automatic rejection.
type ConfirmationUseCase struct {
	reservations interfaces.IReservationRepository
	housings     interfaces.IHousingRepository
	bus          *events.Bus
	rates        config.RateSource
}

var _ IConfirmationUseCase = (*ConfirmationUseCase)(nil)

func NewConfirmationUseCase(
	reservations interfaces.IReservationRepository,
	housings interfaces.IHousingRepository,
	bus *events.Bus,
	rates config.RateSource,
) *ConfirmationUseCase {
	return &ConfirmationUseCase{reservations: reservations, housings: housings, bus: bus, rates: rates}
}

// ProcessEvent applies one webhook event. Unknown event kinds, events with
// no reservation reference and references to unknown reservations are all
// benign: the webhook transport acknowledges regardless, so there is nothing
// to signal back.
func (u *ConfirmationUseCase) ProcessEvent(ctx context.Context, evt interfaces.WebhookEvent) error {
	if evt.Type != interfaces.EventCheckoutCompleted {
		log.Printf("[confirmation][usecase] ignoring event type=%s", evt.Type)
		metrics.IncWebhookIgnored(evt.Type)
		return nil
	}

	reservationID := evt.Data.ExternalReference
	if reservationID == "" {
		log.Printf("[confirmation][usecase] event without reservation reference event_id=%s", evt.ID)
		return nil
	}

	reservation, err := u.reservations.GetByID(ctx, reservationID)
	if err != nil {
		log.Printf("[confirmation][usecase] reservation load failed reservation_id=%s err=%v", reservationID, err)
		return err
	}
	if reservation.ID == "" {
		log.Printf("[confirmation][usecase] reservation not found reservation_id=%s", reservationID)
		return nil
	}

	// Recompute from the housing's *current* attributes, independently of
	// the stored snapshot. The environment rate wins when configured; the
	// reservation's own rate is the explicit fallback.
	housing, err := u.housings.GetByID(ctx, reservation.HousingID)
	if err != nil {
		log.Printf("[confirmation][usecase] housing load failed housing_id=%s err=%v", reservation.HousingID, err)
		return err
	}

	rate := u.rates.Effective(reservation.CommissionRate)
	expected := pricing.ComputeBreakdown(housing.MonthlyPrice, housing.Deposit, rate)

	mismatch := math.Abs(expected.Total-reservation.TotalAmount) > MismatchEpsilon
	if mismatch {
		log.Printf("[confirmation][usecase] total mismatch reservation_id=%s expected=%.2f recorded=%.2f", reservation.ID, expected.Total, reservation.TotalAmount)
		metrics.IncTotalMismatch()
	}

	// Processors redeliver; re-confirming a terminal reservation is accepted.
	if reservation.Status.IsTerminal() {
		log.Printf("[confirmation][usecase] duplicate delivery reservation_id=%s status=%s", reservation.ID, reservation.Status)
	}

	// Status and mismatch go out in one write; the monetary snapshot stays
	// frozen. Confirmation is unconditional even on mismatch.
	updated, err := u.reservations.UpdateStatus(ctx, reservation.ID, entities.ReservationStatusConfirmed, mismatch)
	if err != nil {
		log.Printf("[confirmation][usecase] status update failed reservation_id=%s err=%v", reservation.ID, err)
		return err
	}
	log.Printf("[confirmation][usecase] reservation confirmed reservation_id=%s mismatch=%t", updated.ID, updated.Mismatch)

	u.bus.Emit(events.BookingConfirmed, events.BookingConfirmedPayload{
		ReservationID: updated.ID,
		Mismatch:      mismatch,
		ExpectedTotal: expected.Total,
		RecordedTotal: reservation.TotalAmount,
	})

	return nil
}
