package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"rentora/internal/domain/entities"
	"rentora/internal/events"
	"rentora/internal/usecase/interfaces"
)

var (
	ErrReservationNotFound     = errors.New("reservation not found")
	ErrInvalidReservationID    = errors.New("invalid reservation id")
	ErrNotLandlord             = errors.New("caller is not a landlord")
	ErrNotHousingOwner         = errors.New("caller does not own the housing")
	ErrInvalidStatusValue      = errors.New("invalid target status")
	ErrInvalidStatusTransition = errors.New("status transition not allowed")
	ErrReservationAccessDenied = errors.New("reservation access denied")
)

// IReservationUseCase exposes the reservation operations outside the payment
// flow: the landlord's manual status override and reads.
type IReservationUseCase interface {
	UpdateStatus(ctx context.Context, actor Actor, reservationID string, status entities.ReservationStatus) (entities.Reservation, error)
	GetByID(ctx context.Context, actor Actor, reservationID string) (entities.Reservation, error)
	ListByTenant(ctx context.Context, actor Actor) ([]entities.Reservation, error)
}

type ReservationUseCase struct {
	reservations interfaces.IReservationRepository
	housings     interfaces.IHousingRepository
	bus          *events.Bus
}

var _ IReservationUseCase = (*ReservationUseCase)(nil)

func NewReservationUseCase(
	reservations interfaces.IReservationRepository,
	housings interfaces.IHousingRepository,
	bus *events.Bus,
) *ReservationUseCase {
	return &ReservationUseCase{reservations: reservations, housings: housings, bus: bus}
}

// UpdateStatus lets the landlord owning the housing confirm or cancel a
// pending reservation directly, e.g. for off-platform arrangements. No
// monetary field is recomputed.
func (u *ReservationUseCase) UpdateStatus(ctx context.Context, actor Actor, reservationID string, status entities.ReservationStatus) (entities.Reservation, error) {
	log.Printf("[reservation][usecase] update-status start reservation_id=%s status=%s user_id=%s", reservationID, status, actor.UserID)

	if actor.Role != entities.RoleLandlord {
		return entities.Reservation{}, ErrNotLandlord
	}

	reservationID = strings.TrimSpace(reservationID)
	if reservationID == "" {
		return entities.Reservation{}, ErrInvalidReservationID
	}
	if !status.IsValid() || status == entities.ReservationStatusPending {
		return entities.Reservation{}, ErrInvalidStatusValue
	}

	reservation, err := u.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return entities.Reservation{}, err
	}
	if reservation.ID == "" {
		return entities.Reservation{}, ErrReservationNotFound
	}

	housing, err := u.housings.GetByID(ctx, reservation.HousingID)
	if err != nil {
		return entities.Reservation{}, err
	}
	if housing.ID == "" || housing.OwnerID != actor.UserID {
		log.Printf("[reservation][usecase] ownership check failed reservation_id=%s user_id=%s", reservationID, actor.UserID)
		return entities.Reservation{}, ErrNotHousingOwner
	}

	if !reservation.Status.CanTransitionTo(status) {
		log.Printf("[reservation][usecase] invalid transition reservation_id=%s from=%s to=%s", reservationID, reservation.Status, status)
		return entities.Reservation{}, ErrInvalidStatusTransition
	}

	updated, err := u.reservations.UpdateStatus(ctx, reservation.ID, status, reservation.Mismatch)
	if err != nil {
		return entities.Reservation{}, err
	}
	log.Printf("[reservation][usecase] update-status success reservation_id=%s status=%s", updated.ID, updated.Status)

	u.bus.Emit(events.BookingStatusUpdated, events.BookingStatusUpdatedPayload{
		ReservationID: updated.ID,
		HousingID:     updated.HousingID,
		Status:        string(updated.Status),
	})

	return updated, nil
}

// GetByID is restricted to the tenant who booked or the landlord owning the
// housing.
func (u *ReservationUseCase) GetByID(ctx context.Context, actor Actor, reservationID string) (entities.Reservation, error) {
	reservationID = strings.TrimSpace(reservationID)
	if reservationID == "" {
		return entities.Reservation{}, ErrInvalidReservationID
	}

	reservation, err := u.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return entities.Reservation{}, err
	}
	if reservation.ID == "" {
		return entities.Reservation{}, ErrReservationNotFound
	}

	if actor.Role == entities.RoleTenant {
		if reservation.TenantID != actor.UserID {
			return entities.Reservation{}, ErrReservationAccessDenied
		}
		return reservation, nil
	}

	housing, err := u.housings.GetByID(ctx, reservation.HousingID)
	if err != nil {
		return entities.Reservation{}, err
	}
	if housing.ID == "" || housing.OwnerID != actor.UserID {
		return entities.Reservation{}, ErrReservationAccessDenied
	}
	return reservation, nil
}

// ListByTenant returns the caller's own reservations.
func (u *ReservationUseCase) ListByTenant(ctx context.Context, actor Actor) ([]entities.Reservation, error) {
	if actor.Role != entities.RoleTenant {
		return nil, ErrNotTenant
	}
	return u.reservations.ListByTenantID(ctx, actor.UserID)
}
