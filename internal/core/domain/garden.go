package domain

import "time"

// GardenPlanting records one planting event: a user adding a specific
// plant to their garden. A plant type may be planted any number of
// times; each event gets its own row and its own store-assigned ID.
type GardenPlanting struct {
	// ID is the store-assigned identity, monotonically increasing.
	// Zero means the planting has not been persisted yet.
	ID int64

	// PlantID references the catalog Plant this planting is an
	// instance of. The store enforces the reference at write time.
	PlantID string

	// PlantDate is when the plant was added to the garden.
	PlantDate time.Time

	// LastWateringDate is when the planting was last watered.
	// Defaults to the plant date.
	LastWateringDate time.Time
}

// PlantedGarden pairs a catalog plant with every planting of it.
// Aggregates are produced by a single transactional read, so the
// plant and its plantings always reflect one consistent instant.
type PlantedGarden struct {
	Plant     Plant
	Plantings []GardenPlanting
}
