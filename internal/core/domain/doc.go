// Package domain holds the entities of the garden data layer: the
// plant catalog, the user's plantings, and the pure rules derived from
// them. It has no dependencies on storage or presentation code.
package domain
