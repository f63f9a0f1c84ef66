package services

import (
	"context"

	"github.com/verdant-labs/gardenlog/internal/core/domain"
	"github.com/verdant-labs/gardenlog/internal/core/ports/driven"
	"github.com/verdant-labs/gardenlog/internal/core/ports/driving"
)

// Ensure PlantService implements the interface.
var _ driving.PlantQueries = (*PlantService)(nil)

// PlantService is the process-wide catalog façade. It delegates every
// operation to the plant store bound at construction time.
type PlantService struct {
	plants driven.PlantStore
}

// NewPlantService creates a plant façade bound to one store handle.
func NewPlantService(plants driven.PlantStore) *PlantService {
	return &PlantService{plants: plants}
}

// GetPlants returns the whole catalog ordered by name.
func (s *PlantService) GetPlants(ctx context.Context) ([]domain.Plant, error) {
	return s.plants.List(ctx)
}

// GetPlant returns the plant with the given ID, or nil on a miss.
func (s *PlantService) GetPlant(ctx context.Context, id string) (*domain.Plant, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.plants.Get(ctx, id)
}

// GetPlantsWithGrowZoneNumber returns the plants in the given zone.
func (s *PlantService) GetPlantsWithGrowZoneNumber(ctx context.Context, zone int) ([]domain.Plant, error) {
	return s.plants.ListByGrowZone(ctx, zone)
}

// WatchPlants is the live variant of GetPlants.
func (s *PlantService) WatchPlants(ctx context.Context) driven.Subscription[[]domain.Plant] {
	return s.plants.WatchList(ctx)
}

// WatchPlant is the live variant of GetPlant.
func (s *PlantService) WatchPlant(ctx context.Context, id string) driven.Subscription[*domain.Plant] {
	return s.plants.WatchGet(ctx, id)
}

// WatchPlantsWithGrowZoneNumber is the live variant of
// GetPlantsWithGrowZoneNumber.
func (s *PlantService) WatchPlantsWithGrowZoneNumber(ctx context.Context, zone int) driven.Subscription[[]domain.Plant] {
	return s.plants.WatchListByGrowZone(ctx, zone)
}
