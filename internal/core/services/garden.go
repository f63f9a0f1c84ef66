package services

import (
	"context"
	"time"

	"github.com/verdant-labs/gardenlog/internal/core/domain"
	"github.com/verdant-labs/gardenlog/internal/core/ports/driven"
	"github.com/verdant-labs/gardenlog/internal/core/ports/driving"
)

// Ensure GardenService implements the interface.
var _ driving.GardenPlanter = (*GardenService)(nil)

// GardenService is the process-wide plantings façade. Reads delegate
// to the garden store; writes run asynchronously and complete through
// a result channel. The store's change notifications for a write are
// registered before its completion channel fires, so subscriptions
// never lag behind a completed write.
type GardenService struct {
	garden driven.GardenStore

	// now is the clock used for planting timestamps. Overridden in
	// tests for deterministic dates.
	now func() time.Time
}

// NewGardenService creates a garden façade bound to one store handle.
func NewGardenService(garden driven.GardenStore) *GardenService {
	return &GardenService{
		garden: garden,
		now:    time.Now,
	}
}

// CreateGardenPlanting constructs a planting with both timestamps set
// to the current time and inserts it without blocking the caller.
func (s *GardenService) CreateGardenPlanting(ctx context.Context, plantID string) <-chan driving.PlantingResult {
	out := make(chan driving.PlantingResult, 1)

	if plantID == "" {
		out <- driving.PlantingResult{Err: domain.ErrInvalidInput}
		close(out)
		return out
	}

	// Store precision is millisecond epoch time.
	now := s.now().UTC().Truncate(time.Millisecond)
	gp := domain.GardenPlanting{
		PlantID:          plantID,
		PlantDate:        now,
		LastWateringDate: now,
	}

	go func() {
		defer close(out)
		id, err := s.garden.Insert(ctx, gp)
		gp.ID = id
		out <- driving.PlantingResult{Planting: gp, Err: err}
	}()

	return out
}

// RemoveGardenPlanting deletes the planting by its identity without
// blocking the caller.
func (s *GardenService) RemoveGardenPlanting(ctx context.Context, gp domain.GardenPlanting) <-chan error {
	out := make(chan error, 1)

	if gp.ID == 0 {
		out <- domain.ErrInvalidInput
		close(out)
		return out
	}

	go func() {
		defer close(out)
		out <- s.garden.Delete(ctx, gp.ID)
	}()

	return out
}

// IsPlanted reports whether the plant has at least one planting.
func (s *GardenService) IsPlanted(ctx context.Context, plantID string) (bool, error) {
	return s.garden.Exists(ctx, plantID)
}

// GetPlantedGardens returns the planted-garden aggregates.
func (s *GardenService) GetPlantedGardens(ctx context.Context) ([]domain.PlantedGarden, error) {
	return s.garden.ListPlanted(ctx)
}

// WatchIsPlanted is the live variant of IsPlanted.
func (s *GardenService) WatchIsPlanted(ctx context.Context, plantID string) driven.Subscription[bool] {
	return s.garden.WatchExists(ctx, plantID)
}

// WatchPlantedGardens is the live variant of GetPlantedGardens.
func (s *GardenService) WatchPlantedGardens(ctx context.Context) driven.Subscription[[]domain.PlantedGarden] {
	return s.garden.WatchListPlanted(ctx)
}
