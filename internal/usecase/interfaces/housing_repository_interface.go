package interfaces

import (
	"context"

	"rentora/internal/domain/entities"
)

// IHousingRepository abstracts the read side of the listings table. The
// booking core only needs the pricing attributes of a listing; writes exist
// for seeding and for the listings service's cascade.

type IHousingRepository interface {
	Create(ctx context.Context, h entities.Housing) (entities.Housing, error)
	GetByID(ctx context.Context, id string) (entities.Housing, error)
	Delete(ctx context.Context, id string) error
}
