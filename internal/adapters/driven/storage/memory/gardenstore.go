package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/verdant-labs/gardenlog/internal/core/domain"
	"github.com/verdant-labs/gardenlog/internal/core/ports/driven"
)

// Ensure GardenStore implements the interface.
var _ driven.GardenStore = (*GardenStore)(nil)

// GardenStore is an in-memory implementation of driven.GardenStore.
// It checks the plant reference against the paired PlantStore, the
// way the real store's foreign key does.
type GardenStore struct {
	plants *PlantStore

	mu        sync.RWMutex
	plantings map[int64]domain.GardenPlanting
	nextID    int64
	hub       *watchHub
}

// NewGardenStore creates a new in-memory garden store backed by the
// given plant catalog.
func NewGardenStore(plants *PlantStore) *GardenStore {
	return &GardenStore{
		plants:    plants,
		plantings: make(map[int64]domain.GardenPlanting),
		hub:       newWatchHub(),
	}
}

// List returns all plantings in identity order.
func (s *GardenStore) List(_ context.Context) ([]domain.GardenPlanting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.GardenPlanting, 0, len(s.plantings))
	for _, gp := range s.plantings {
		out = append(out, gp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Exists reports whether at least one planting references plantID.
func (s *GardenStore) Exists(_ context.Context, plantID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, gp := range s.plantings {
		if gp.PlantID == plantID {
			return true, nil
		}
	}
	return false, nil
}

// Insert stores a new planting and returns the assigned ID. A plant
// ID without a matching catalog row fails with domain.ErrConstraint.
func (s *GardenStore) Insert(ctx context.Context, gp domain.GardenPlanting) (int64, error) {
	if ref, err := s.plants.Get(ctx, gp.PlantID); err != nil {
		return 0, err
	} else if ref == nil {
		return 0, domain.ErrConstraint
	}

	s.mu.Lock()
	s.nextID++
	gp.ID = s.nextID
	s.plantings[gp.ID] = gp
	s.mu.Unlock()

	s.hub.broadcast()
	return gp.ID, nil
}

// Delete removes exactly the planting with the given identity.
func (s *GardenStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	if _, ok := s.plantings[id]; !ok {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	delete(s.plantings, id)
	s.mu.Unlock()

	s.hub.broadcast()
	return nil
}

// ListPlanted returns one aggregate per distinct planted plant,
// ordered by plant name like the real store's join.
func (s *GardenStore) ListPlanted(ctx context.Context) ([]domain.PlantedGarden, error) {
	plantings, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	byPlant := make(map[string][]domain.GardenPlanting)
	for _, gp := range plantings {
		byPlant[gp.PlantID] = append(byPlant[gp.PlantID], gp)
	}

	var gardens []domain.PlantedGarden
	for plantID, group := range byPlant {
		p, err := s.plants.Get(ctx, plantID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		gardens = append(gardens, domain.PlantedGarden{Plant: *p, Plantings: group})
	}
	sort.Slice(gardens, func(i, j int) bool {
		return gardens[i].Plant.Name < gardens[j].Plant.Name
	})
	return gardens, nil
}

// WatchList is the live variant of List.
func (s *GardenStore) WatchList(ctx context.Context) driven.Subscription[[]domain.GardenPlanting] {
	return watchValue(ctx, s.List, s.hub)
}

// WatchExists is the live variant of Exists.
func (s *GardenStore) WatchExists(ctx context.Context, plantID string) driven.Subscription[bool] {
	return watchValue(ctx, func(ctx context.Context) (bool, error) {
		return s.Exists(ctx, plantID)
	}, s.hub)
}

// WatchListPlanted is the live variant of ListPlanted. It refreshes on
// changes to either the catalog or the plantings.
func (s *GardenStore) WatchListPlanted(ctx context.Context) driven.Subscription[[]domain.PlantedGarden] {
	return watchValue(ctx, s.ListPlanted, s.hub, s.plants.hub)
}
