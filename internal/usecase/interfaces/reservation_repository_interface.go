package interfaces

import (
	"context"

	"rentora/internal/domain/entities"
)

// IReservationRepository abstracts DynamoDB persistence for Reservation.
//
// Conventions follow the store's zero-value-means-absent style: lookups
// return a zero Reservation (ID == "") rather than an error when nothing is
// found.
//
// UpdateStatus is the only mutation after creation. It writes status and
// mismatch together in a single update so the two never diverge, and it
// never touches the monetary snapshot.

type IReservationRepository interface {
	Create(ctx context.Context, r entities.Reservation) (entities.Reservation, error)
	GetByID(ctx context.Context, id string) (entities.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status entities.ReservationStatus, mismatch bool) (entities.Reservation, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Reservation, error)

	// DeleteByHousingID cascades reservation removal when the owning listing
	// is deleted. Invoked by the listings service, never from this core.
	DeleteByHousingID(ctx context.Context, housingID string) error
}
