package file

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/verdant-labs/gardenlog/internal/core/domain"
	"github.com/verdant-labs/gardenlog/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

//go:embed plants.json
var defaultCatalog []byte

// catalogEntry is the wire shape of one catalog row. wateringInterval
// and imageUrl are optional; absent values take the catalog defaults.
type catalogEntry struct {
	PlantID          string `json:"plantId"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	GrowZoneNumber   int    `json:"growZoneNumber"`
	WateringInterval int    `json:"wateringInterval"`
	ImageURL         string `json:"imageUrl"`
}

// Source loads the plant catalog used to seed a fresh store. With an
// empty path it serves the embedded default catalog; otherwise it
// reads the configured JSON file.
type Source struct {
	path string
}

// NewSource creates a catalog source. path may be empty.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Load parses the catalog data.
func (s *Source) Load(_ context.Context) ([]domain.Plant, error) {
	data := defaultCatalog
	if s.path != "" {
		var err error
		data, err = os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog file: %w", err)
		}
	}

	var entries []catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	plants := make([]domain.Plant, 0, len(entries))
	for _, e := range entries {
		if e.PlantID == "" {
			return nil, fmt.Errorf("catalog entry %q: %w", e.Name, domain.ErrInvalidInput)
		}
		interval := e.WateringInterval
		if interval <= 0 {
			interval = domain.DefaultWateringInterval
		}
		plants = append(plants, domain.Plant{
			ID:               e.PlantID,
			Name:             e.Name,
			Description:      e.Description,
			GrowZoneNumber:   e.GrowZoneNumber,
			WateringInterval: interval,
			ImageURL:         e.ImageURL,
		})
	}
	return plants, nil
}

// Seed loads the catalog and bulk-upserts it into the store.
func (s *Source) Seed(ctx context.Context, plants driven.PlantStore) error {
	catalog, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if err := plants.UpsertAll(ctx, catalog); err != nil {
		return fmt.Errorf("seeding %d plants: %w", len(catalog), err)
	}
	return nil
}
