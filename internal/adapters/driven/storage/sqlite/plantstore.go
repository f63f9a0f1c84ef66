package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/verdant-labs/gardenlog/internal/core/domain"
	"github.com/verdant-labs/gardenlog/internal/core/ports/driven"
)

// plantStore implements driven.PlantStore.
type plantStore struct {
	store *Store
}

var _ driven.PlantStore = (*plantStore)(nil)

const plantColumns = "id, name, description, growZoneNumber, wateringInterval, imageUrl"

// List returns the whole catalog ordered by name ascending.
func (s *plantStore) List(ctx context.Context) ([]domain.Plant, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+plantColumns+`
		FROM plants ORDER BY name
	`)
	if err != nil {
		return nil, storeErr("querying plants", err)
	}
	defer rows.Close()

	return scanPlants(rows)
}

// ListByGrowZone returns the plants in one grow zone, ordered by name.
func (s *plantStore) ListByGrowZone(ctx context.Context, zone int) ([]domain.Plant, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+plantColumns+`
		FROM plants WHERE growZoneNumber = ? ORDER BY name
	`, zone)
	if err != nil {
		return nil, storeErr("querying plants by grow zone", err)
	}
	defer rows.Close()

	return scanPlants(rows)
}

// Get retrieves a plant by ID. A miss returns nil with no error.
func (s *plantStore) Get(ctx context.Context, id string) (*domain.Plant, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT `+plantColumns+`
		FROM plants WHERE id = ?
	`, id)

	var p domain.Plant
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.GrowZoneNumber, &p.WateringInterval, &p.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("scanning plant", err)
	}
	return &p, nil
}

// UpsertAll inserts the plants in one transaction. A colliding primary
// key fully replaces the stored row's fields.
func (s *plantStore) UpsertAll(ctx context.Context, plants []domain.Plant) error {
	if len(plants) == 0 {
		return nil
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return txErr("beginning plant upsert", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO plants (`+plantColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			growZoneNumber = excluded.growZoneNumber,
			wateringInterval = excluded.wateringInterval,
			imageUrl = excluded.imageUrl
	`)
	if err != nil {
		return txErr("preparing plant upsert", err)
	}
	defer stmt.Close()

	for _, p := range plants {
		if p.ID == "" {
			return txErr("upserting plant", domain.ErrInvalidInput)
		}
		if _, err := stmt.ExecContext(ctx, p.ID, p.Name, p.Description,
			p.GrowZoneNumber, p.WateringInterval, p.ImageURL); err != nil {
			return txErr("upserting plant "+p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return txErr("committing plant upsert", err)
	}

	s.store.tracker.invalidate(tablePlants)
	return nil
}

// WatchList is the live variant of List.
func (s *plantStore) WatchList(ctx context.Context) driven.Subscription[[]domain.Plant] {
	return watch(ctx, s.store, []string{tablePlants}, s.List)
}

// WatchListByGrowZone is the live variant of ListByGrowZone.
func (s *plantStore) WatchListByGrowZone(ctx context.Context, zone int) driven.Subscription[[]domain.Plant] {
	return watch(ctx, s.store, []string{tablePlants}, func(ctx context.Context) ([]domain.Plant, error) {
		return s.ListByGrowZone(ctx, zone)
	})
}

// WatchGet is the live variant of Get.
func (s *plantStore) WatchGet(ctx context.Context, id string) driven.Subscription[*domain.Plant] {
	return watch(ctx, s.store, []string{tablePlants}, func(ctx context.Context) (*domain.Plant, error) {
		return s.Get(ctx, id)
	})
}

// scanPlants drains a plant result set.
func scanPlants(rows *sql.Rows) ([]domain.Plant, error) {
	var plants []domain.Plant
	for rows.Next() {
		var p domain.Plant
		if err := rows.Scan(&p.ID, &p.Name, &p.Description,
			&p.GrowZoneNumber, &p.WateringInterval, &p.ImageURL); err != nil {
			return nil, storeErr("scanning plant", err)
		}
		plants = append(plants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterating plants", err)
	}
	return plants, nil
}
