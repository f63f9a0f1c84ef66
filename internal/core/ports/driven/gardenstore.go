package driven

import (
	"context"

	"github.com/verdant-labs/gardenlog/internal/core/domain"
)

// GardenStore persists the user's plantings.
type GardenStore interface {
	// List returns all plantings in identity order.
	List(ctx context.Context) ([]domain.GardenPlanting, error)

	// Exists reports whether at least one planting references the
	// given plant ID.
	Exists(ctx context.Context, plantID string) (bool, error)

	// Insert stores a new planting and returns the store-assigned ID.
	// Inserting a planting whose plant ID has no matching catalog row
	// fails with domain.ErrConstraint.
	Insert(ctx context.Context, gp domain.GardenPlanting) (int64, error)

	// Delete removes exactly the planting with the given identity.
	// Deleting a missing identity fails with domain.ErrNotFound.
	Delete(ctx context.Context, id int64) error

	// ListPlanted returns one aggregate per distinct planted plant,
	// each pairing the catalog plant with all of its plantings. The
	// read executes in a single transaction and never observes a
	// partially committed write.
	ListPlanted(ctx context.Context) ([]domain.PlantedGarden, error)

	// WatchList is the live variant of List.
	WatchList(ctx context.Context) Subscription[[]domain.GardenPlanting]

	// WatchExists is the live variant of Exists.
	WatchExists(ctx context.Context, plantID string) Subscription[bool]

	// WatchListPlanted is the live variant of ListPlanted.
	WatchListPlanted(ctx context.Context) Subscription[[]domain.PlantedGarden]
}
