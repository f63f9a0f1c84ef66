package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/verdant-labs/gardenlog/internal/core/domain"
	"github.com/verdant-labs/gardenlog/internal/core/ports/driven"
)

// Ensure PlantStore implements the interface.
var _ driven.PlantStore = (*PlantStore)(nil)

// PlantStore is an in-memory implementation of driven.PlantStore.
type PlantStore struct {
	mu     sync.RWMutex
	plants map[string]domain.Plant
	hub    *watchHub
}

// NewPlantStore creates a new in-memory plant store.
func NewPlantStore() *PlantStore {
	return &PlantStore{
		plants: make(map[string]domain.Plant),
		hub:    newWatchHub(),
	}
}

// List returns the catalog ordered by name ascending.
func (s *PlantStore) List(_ context.Context) ([]domain.Plant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(func(domain.Plant) bool { return true }), nil
}

// ListByGrowZone returns the plants in one grow zone, ordered by name.
func (s *PlantStore) ListByGrowZone(_ context.Context, zone int) ([]domain.Plant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(func(p domain.Plant) bool { return p.GrowZoneNumber == zone }), nil
}

// Get retrieves a plant by ID; a miss returns nil with no error.
func (s *PlantStore) Get(_ context.Context, id string) (*domain.Plant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.plants[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// UpsertAll stores the plants, replacing colliding IDs wholesale.
func (s *PlantStore) UpsertAll(_ context.Context, plants []domain.Plant) error {
	s.mu.Lock()
	for _, p := range plants {
		if p.ID == "" {
			s.mu.Unlock()
			return domain.ErrInvalidInput
		}
		s.plants[p.ID] = p
	}
	s.mu.Unlock()

	s.hub.broadcast()
	return nil
}

// WatchList is the live variant of List.
func (s *PlantStore) WatchList(ctx context.Context) driven.Subscription[[]domain.Plant] {
	return watchValue(ctx, s.List, s.hub)
}

// WatchListByGrowZone is the live variant of ListByGrowZone.
func (s *PlantStore) WatchListByGrowZone(ctx context.Context, zone int) driven.Subscription[[]domain.Plant] {
	return watchValue(ctx, func(ctx context.Context) ([]domain.Plant, error) {
		return s.ListByGrowZone(ctx, zone)
	}, s.hub)
}

// WatchGet is the live variant of Get.
func (s *PlantStore) WatchGet(ctx context.Context, id string) driven.Subscription[*domain.Plant] {
	return watchValue(ctx, func(ctx context.Context) (*domain.Plant, error) {
		return s.Get(ctx, id)
	}, s.hub)
}

func (s *PlantStore) sorted(keep func(domain.Plant) bool) []domain.Plant {
	var out []domain.Plant
	for _, p := range s.plants {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}
