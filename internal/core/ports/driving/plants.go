package driving

import (
	"context"

	"github.com/verdant-labs/gardenlog/internal/core/domain"
	"github.com/verdant-labs/gardenlog/internal/core/ports/driven"
)

// PlantQueries is the catalog façade consumed by the presentation
// layer. Every method is a pure delegation to the matching query-layer
// operation; the façade adds no logic.
type PlantQueries interface {
	// GetPlants returns the whole catalog ordered by name.
	GetPlants(ctx context.Context) ([]domain.Plant, error)

	// GetPlant returns the plant with the given ID, or nil when no
	// such plant exists.
	GetPlant(ctx context.Context, id string) (*domain.Plant, error)

	// GetPlantsWithGrowZoneNumber returns the plants in the given grow
	// zone, ordered by name.
	GetPlantsWithGrowZoneNumber(ctx context.Context, zone int) ([]domain.Plant, error)

	// WatchPlants is the live variant of GetPlants.
	WatchPlants(ctx context.Context) driven.Subscription[[]domain.Plant]

	// WatchPlant is the live variant of GetPlant.
	WatchPlant(ctx context.Context, id string) driven.Subscription[*domain.Plant]

	// WatchPlantsWithGrowZoneNumber is the live variant of
	// GetPlantsWithGrowZoneNumber.
	WatchPlantsWithGrowZoneNumber(ctx context.Context, zone int) driven.Subscription[[]domain.Plant]
}
