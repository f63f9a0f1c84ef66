package domain

import "time"

// DefaultWateringInterval is the catalog-wide default number of days
// between required waterings, applied when a catalog entry does not
// specify its own interval.
const DefaultWateringInterval = 7

// Plant is a catalog entry describing a plantable species.
// Catalog rows are created in bulk by the seeding collaborator when the
// store is first created and are immutable afterwards.
type Plant struct {
	// ID is the externally assigned unique identifier.
	ID string

	// Name is the display name. Catalog listings are ordered by it.
	Name string

	// Description is the free-text catalog description.
	Description string

	// GrowZoneNumber is the hardiness zone the plant grows in.
	GrowZoneNumber int

	// WateringInterval is the number of days between required waterings.
	WateringInterval int

	// ImageURL points at the catalog image. May be empty.
	ImageURL string
}

// ShouldBeWatered reports whether the plant is due for watering at the
// given instant. A plant is due when since is strictly later than the
// last watering date plus the watering interval; at exact equality it
// is not yet due.
func (p *Plant) ShouldBeWatered(since, lastWatering time.Time) bool {
	return since.After(lastWatering.AddDate(0, 0, p.WateringInterval))
}
