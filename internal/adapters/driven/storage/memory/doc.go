// Package memory provides in-memory implementations of the garden
// store ports. Used by service and façade tests where a real SQLite
// file would add nothing.
package memory
