package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/verdant-labs/gardenlog/internal/core/domain"
	"github.com/verdant-labs/gardenlog/internal/core/ports/driven"
)

// gardenStore implements driven.GardenStore.
type gardenStore struct {
	store *Store
}

var _ driven.GardenStore = (*gardenStore)(nil)

const plantingColumns = "id, plant_id, plant_date, last_watering_date"

// List returns all plantings in identity order.
func (s *gardenStore) List(ctx context.Context) ([]domain.GardenPlanting, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+plantingColumns+`
		FROM garden_plantings ORDER BY id
	`)
	if err != nil {
		return nil, storeErr("querying plantings", err)
	}
	defer rows.Close()

	var plantings []domain.GardenPlanting
	for rows.Next() {
		gp, err := s.scanPlanting(rows.Scan)
		if err != nil {
			return nil, err
		}
		plantings = append(plantings, gp)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterating plantings", err)
	}
	return plantings, nil
}

// Exists reports whether at least one planting references plantID.
func (s *gardenStore) Exists(ctx context.Context, plantID string) (bool, error) {
	var exists bool
	err := s.store.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM garden_plantings WHERE plant_id = ?)
	`, plantID).Scan(&exists)
	if err != nil {
		return false, storeErr("checking planting existence", err)
	}
	return exists, nil
}

// Insert stores a new planting and returns the store-assigned ID.
// The timestamps go through the registered column codecs.
func (s *gardenStore) Insert(ctx context.Context, gp domain.GardenPlanting) (int64, error) {
	plantDate, err := s.store.encodeColumn(tableGardenPlantings, "plant_date", gp.PlantDate)
	if err != nil {
		return 0, storeErr("inserting planting", err)
	}
	lastWatering, err := s.store.encodeColumn(tableGardenPlantings, "last_watering_date", gp.LastWateringDate)
	if err != nil {
		return 0, storeErr("inserting planting", err)
	}

	res, err := s.store.db.ExecContext(ctx, `
		INSERT INTO garden_plantings (plant_id, plant_date, last_watering_date)
		VALUES (?, ?, ?)
	`, gp.PlantID, plantDate, lastWatering)
	if err != nil {
		return 0, storeErr("inserting planting", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storeErr("reading planting id", err)
	}

	s.store.tracker.invalidate(tableGardenPlantings)
	return id, nil
}

// Delete removes exactly the planting with the given identity.
func (s *gardenStore) Delete(ctx context.Context, id int64) error {
	res, err := s.store.db.ExecContext(ctx, `
		DELETE FROM garden_plantings WHERE id = ?
	`, id)
	if err != nil {
		return storeErr("deleting planting", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("deleting planting", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}

	s.store.tracker.invalidate(tableGardenPlantings)
	return nil
}

// ListPlanted returns one aggregate per distinct planted plant. The
// join runs inside a read transaction, so the result reflects one
// consistent instant even with concurrent writers.
func (s *gardenStore) ListPlanted(ctx context.Context) ([]domain.PlantedGarden, error) {
	tx, err := s.store.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, txErr("beginning planted read", err)
	}
	defer tx.Rollback() //nolint:errcheck

	rows, err := tx.QueryContext(ctx, `
		SELECT p.id, p.name, p.description, p.growZoneNumber, p.wateringInterval, p.imageUrl,
		       g.id, g.plant_id, g.plant_date, g.last_watering_date
		FROM plants p
		JOIN garden_plantings g ON g.plant_id = p.id
		ORDER BY p.name, p.id, g.id
	`)
	if err != nil {
		return nil, txErr("querying planted gardens", err)
	}
	defer rows.Close()

	var gardens []domain.PlantedGarden
	for rows.Next() {
		var p domain.Plant
		var gp domain.GardenPlanting
		var plantDate, lastWatering int64
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.GrowZoneNumber,
			&p.WateringInterval, &p.ImageURL,
			&gp.ID, &gp.PlantID, &plantDate, &lastWatering); err != nil {
			return nil, txErr("scanning planted garden", err)
		}
		if gp.PlantDate, err = s.decodeTime("plant_date", plantDate); err != nil {
			return nil, txErr("scanning planted garden", err)
		}
		if gp.LastWateringDate, err = s.decodeTime("last_watering_date", lastWatering); err != nil {
			return nil, txErr("scanning planted garden", err)
		}

		if n := len(gardens); n > 0 && gardens[n-1].Plant.ID == p.ID {
			gardens[n-1].Plantings = append(gardens[n-1].Plantings, gp)
		} else {
			gardens = append(gardens, domain.PlantedGarden{
				Plant:     p,
				Plantings: []domain.GardenPlanting{gp},
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, txErr("iterating planted gardens", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, txErr("committing planted read", err)
	}
	return gardens, nil
}

// WatchList is the live variant of List.
func (s *gardenStore) WatchList(ctx context.Context) driven.Subscription[[]domain.GardenPlanting] {
	return watch(ctx, s.store, []string{tableGardenPlantings}, s.List)
}

// WatchExists is the live variant of Exists.
func (s *gardenStore) WatchExists(ctx context.Context, plantID string) driven.Subscription[bool] {
	return watch(ctx, s.store, []string{tableGardenPlantings}, func(ctx context.Context) (bool, error) {
		return s.Exists(ctx, plantID)
	})
}

// WatchListPlanted is the live variant of ListPlanted. The join reads
// both tables, so writes to either re-emit.
func (s *gardenStore) WatchListPlanted(ctx context.Context) driven.Subscription[[]domain.PlantedGarden] {
	return watch(ctx, s.store, []string{tablePlants, tableGardenPlantings}, s.ListPlanted)
}

// scanPlanting scans one planting row, decoding time columns through
// the registered codecs.
func (s *gardenStore) scanPlanting(scan func(dest ...any) error) (domain.GardenPlanting, error) {
	var gp domain.GardenPlanting
	var plantDate, lastWatering int64
	if err := scan(&gp.ID, &gp.PlantID, &plantDate, &lastWatering); err != nil {
		return gp, storeErr("scanning planting", err)
	}

	var err error
	if gp.PlantDate, err = s.decodeTime("plant_date", plantDate); err != nil {
		return gp, storeErr("scanning planting", err)
	}
	if gp.LastWateringDate, err = s.decodeTime("last_watering_date", lastWatering); err != nil {
		return gp, storeErr("scanning planting", err)
	}
	return gp, nil
}

func (s *gardenStore) decodeTime(column string, ms int64) (time.Time, error) {
	v, err := s.store.decodeColumn(tableGardenPlantings, column, ms)
	if err != nil {
		return time.Time{}, err
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, storeErr("decoding "+column, domain.ErrInvalidInput)
	}
	return t, nil
}
