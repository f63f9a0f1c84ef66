package driven

import (
	"context"

	"github.com/verdant-labs/gardenlog/internal/core/domain"
)

// PlantStore persists the plant catalog.
// Backed by SQLite for the real store; a memory implementation exists
// for tests.
type PlantStore interface {
	// List returns the whole catalog ordered by name ascending.
	List(ctx context.Context) ([]domain.Plant, error)

	// ListByGrowZone returns the plants in the given grow zone,
	// ordered by name ascending.
	ListByGrowZone(ctx context.Context, zone int) ([]domain.Plant, error)

	// Get retrieves a plant by ID. A miss is an empty result:
	// Get returns nil with no error when the row does not exist.
	Get(ctx context.Context, id string) (*domain.Plant, error)

	// UpsertAll inserts the given plants in one transaction with
	// insert-or-replace semantics: a row whose ID already exists is
	// fully replaced. Used by the seeding collaborator.
	UpsertAll(ctx context.Context, plants []domain.Plant) error

	// WatchList is the live variant of List.
	WatchList(ctx context.Context) Subscription[[]domain.Plant]

	// WatchListByGrowZone is the live variant of ListByGrowZone.
	WatchListByGrowZone(ctx context.Context, zone int) Subscription[[]domain.Plant]

	// WatchGet is the live variant of Get.
	WatchGet(ctx context.Context, id string) Subscription[*domain.Plant]
}
