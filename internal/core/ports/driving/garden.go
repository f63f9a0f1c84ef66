package driving

import (
	"context"

	"github.com/verdant-labs/gardenlog/internal/core/domain"
	"github.com/verdant-labs/gardenlog/internal/core/ports/driven"
)

// PlantingResult is the completion signal of an asynchronous planting
// write. On success Planting carries the persisted row including its
// store-assigned ID.
type PlantingResult struct {
	Planting domain.GardenPlanting
	Err      error
}

// GardenPlanter is the plantings façade consumed by the presentation
// layer. Writes are asynchronous: the caller receives a completion
// channel instead of blocking on store I/O. The façade never retries;
// failures surface on the completion channel unchanged.
type GardenPlanter interface {
	// CreateGardenPlanting constructs a planting of the given plant
	// with both timestamps set to the current time and inserts it.
	// The returned channel delivers exactly one result.
	CreateGardenPlanting(ctx context.Context, plantID string) <-chan PlantingResult

	// RemoveGardenPlanting deletes the planting by its identity.
	// The returned channel delivers exactly one result.
	RemoveGardenPlanting(ctx context.Context, gp domain.GardenPlanting) <-chan error

	// IsPlanted reports whether the plant has at least one planting.
	IsPlanted(ctx context.Context, plantID string) (bool, error)

	// GetPlantedGardens returns one aggregate per distinct planted
	// plant from a single transactional read.
	GetPlantedGardens(ctx context.Context) ([]domain.PlantedGarden, error)

	// WatchIsPlanted is the live variant of IsPlanted.
	WatchIsPlanted(ctx context.Context, plantID string) driven.Subscription[bool]

	// WatchPlantedGardens is the live variant of GetPlantedGardens.
	WatchPlantedGardens(ctx context.Context) driven.Subscription[[]domain.PlantedGarden]
}
