// Package sqlite is the persistent store behind the garden data
// layer. It owns the schema description, the column codecs, the typed
// query views over both entity tables, the per-table change tracker
// that drives live queries, and the lifecycle manager that builds the
// single process-wide handle exactly once.
package sqlite
