// Package driven defines the interfaces the core depends on: the
// typed query layer over the two entity tables, the live-query
// subscription contract, and the seed catalog source. Storage adapters
// implement these; the core never touches a table directly.
package driven
