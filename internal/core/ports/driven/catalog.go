package driven

import (
	"context"

	"github.com/verdant-labs/gardenlog/internal/core/domain"
)

// CatalogSource supplies the initial plant catalog. The store
// lifecycle manager invokes Seed exactly once, immediately after
// first-ever store creation.
type CatalogSource interface {
	// Load parses the catalog data.
	Load(ctx context.Context) ([]domain.Plant, error)

	// Seed loads the catalog and bulk-upserts it into the store.
	Seed(ctx context.Context, plants PlantStore) error
}
