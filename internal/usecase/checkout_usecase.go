package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"rentora/internal/domain/entities"
	"rentora/internal/domain/pricing"
	"rentora/internal/events"
	"rentora/internal/idempotency"
	"rentora/internal/infrastructure/config"
	"rentora/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNotTenant            = errors.New("caller is not a tenant")
	ErrHousingNotFound      = errors.New("housing not found")
	ErrInvalidBookingWindow = errors.New("invalid booking window")
	ErrInvalidHousingID     = errors.New("invalid housing id")
)

// Actor is the authenticated caller as extracted from the JWT by the auth
// middleware.
type Actor struct {
	UserID string
	Role   entities.Role
}

type CheckoutInput struct {
	HousingID string
	StartDate time.Time
	EndDate   time.Time

	// IdempotencyKey is optional. When supplied and already seen, the
	// original session is replayed instead of creating a new reservation.
	IdempotencyKey string
}

type CheckoutResult struct {
	SessionID   string
	RedirectURL string
	Reservation entities.Reservation
	Replayed    bool
}

// ICheckoutUseCase creates a pending reservation and the payment session the
// client is redirected to.
type ICheckoutUseCase interface {
	CreateSession(ctx context.Context, actor Actor, in CheckoutInput) (CheckoutResult, error)
}

// CheckoutUseCase orchestrates checkout creation: authorize, price, persist
// (status=pending), hand off to the payment processor. It never waits for
// payment completion; that arrives via the confirmation webhook.
type CheckoutUseCase struct {
	reservations interfaces.IReservationRepository
	housings     interfaces.IHousingRepository
	gateway      interfaces.IPaymentGateway
	bus          *events.Bus
	rates        config.RateSource
	idem         idempotency.Store
	frontendURL  string
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	reservations interfaces.IReservationRepository,
	housings interfaces.IHousingRepository,
	gateway interfaces.IPaymentGateway,
	bus *events.Bus,
	rates config.RateSource,
	idem idempotency.Store,
	frontendURL string,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		reservations: reservations,
		housings:     housings,
		gateway:      gateway,
		bus:          bus,
		rates:        rates,
		idem:         idem,
		frontendURL:  strings.TrimRight(frontendURL, "/"),
	}
}

func (u *CheckoutUseCase) CreateSession(ctx context.Context, actor Actor, in CheckoutInput) (CheckoutResult, error) {
	log.Printf("[checkout][usecase] create start tenant_id=%s housing_id=%s", actor.UserID, in.HousingID)

	// Role gate comes first: a non-tenant must be rejected before any
	// housing lookup or reservation write happens.
	if actor.Role != entities.RoleTenant {
		log.Printf("[checkout][usecase] forbidden role=%s user_id=%s", actor.Role, actor.UserID)
		return CheckoutResult{}, ErrNotTenant
	}

	housingID := strings.TrimSpace(in.HousingID)
	if housingID == "" {
		return CheckoutResult{}, ErrInvalidHousingID
	}

	if u.gateway == nil {
		log.Printf("[checkout][usecase] payment gateway not configured housing_id=%s", housingID)
		return CheckoutResult{}, errors.New("payment gateway not configured")
	}

	if key := strings.TrimSpace(in.IdempotencyKey); key != "" && u.idem != nil {
		if rec, found, err := u.idem.Get(ctx, key); err != nil {
			log.Printf("[checkout][usecase] idempotency lookup failed key=%s err=%v", key, err)
		} else if found {
			log.Printf("[checkout][usecase] replaying session reservation_id=%s key=%s", rec.ReservationID, key)
			res, err := u.reservations.GetByID(ctx, rec.ReservationID)
			if err != nil {
				return CheckoutResult{}, err
			}
			return CheckoutResult{SessionID: rec.SessionID, RedirectURL: rec.RedirectURL, Reservation: res, Replayed: true}, nil
		}
	}

	housing, err := u.housings.GetByID(ctx, housingID)
	if err != nil {
		log.Printf("[checkout][usecase] housing load failed housing_id=%s err=%v", housingID, err)
		return CheckoutResult{}, err
	}
	if housing.ID == "" {
		log.Printf("[checkout][usecase] housing not found housing_id=%s", housingID)
		return CheckoutResult{}, ErrHousingNotFound
	}

	// The legacy prorated price is used strictly as a window check: a
	// non-positive amount means end is not strictly after start.
	if pricing.ProratedTotal(housing.MonthlyPrice, in.StartDate, in.EndDate) <= 0 {
		log.Printf("[checkout][usecase] invalid window housing_id=%s start=%s end=%s", housingID, in.StartDate, in.EndDate)
		return CheckoutResult{}, ErrInvalidBookingWindow
	}

	rate := u.rates.Effective(config.DefaultCommissionRate)
	breakdown := pricing.ComputeBreakdown(housing.MonthlyPrice, housing.Deposit, rate)

	now := time.Now().UTC()
	reservation := entities.Reservation{
		ID:             uuid.NewString(),
		TenantID:       actor.UserID,
		HousingID:      housing.ID,
		StartDate:      in.StartDate.UTC(),
		EndDate:        in.EndDate.UTC(),
		BaseRent:       breakdown.BaseRent,
		Deposit:        breakdown.Deposit,
		CommissionRate: breakdown.CommissionRate,
		Commission:     breakdown.Commission,
		TotalAmount:    breakdown.Total,
		Status:         entities.ReservationStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.reservations.Create(ctx, reservation)
	if err != nil {
		log.Printf("[checkout][usecase] reservation create failed housing_id=%s err=%v", housingID, err)
		return CheckoutResult{}, err
	}
	log.Printf("[checkout][usecase] reservation created reservation_id=%s total=%.2f", created.ID, created.TotalAmount)

	u.bus.Emit(events.BookingCreated, events.BookingCreatedPayload{
		ReservationID: created.ID,
		TenantID:      created.TenantID,
		HousingID:     created.HousingID,
		Total:         created.TotalAmount,
	})

	session, err := u.gateway.CreateCheckoutSession(ctx, interfaces.CheckoutSessionParams{
		ReservationID: created.ID,
		Title:         fmt.Sprintf("Booking %s", housing.Title),
		AmountCents:   pricing.Cents(breakdown.Total),
		SuccessURL:    u.successURL(created.ID),
		CancelURL:     u.frontendURL + "/booking/cancelled",
	})
	if err != nil {
		// The pending reservation stays behind; a client retry creates a
		// fresh one unless it carries the same idempotency key.
		log.Printf("[checkout][usecase] payment session failed reservation_id=%s err=%v", created.ID, err)
		return CheckoutResult{}, err
	}
	log.Printf("[checkout][usecase] payment session created reservation_id=%s session_id=%s", created.ID, session.ID)

	if key := strings.TrimSpace(in.IdempotencyKey); key != "" && u.idem != nil {
		rec := idempotency.Record{ReservationID: created.ID, SessionID: session.ID, RedirectURL: session.RedirectURL}
		if err := u.idem.Put(ctx, key, rec); err != nil {
			log.Printf("[checkout][usecase] idempotency store failed key=%s err=%v", key, err)
		}
	}

	return CheckoutResult{SessionID: session.ID, RedirectURL: session.RedirectURL, Reservation: created}, nil
}

// successURL embeds both the processor's session placeholder and the
// reservation id, so the redirected client and the processor can reference
// the same reservation.
func (u *CheckoutUseCase) successURL(reservationID string) string {
	return fmt.Sprintf("%s/booking/success?session_id={CHECKOUT_SESSION_ID}&reservation_id=%s", u.frontendURL, reservationID)
}
