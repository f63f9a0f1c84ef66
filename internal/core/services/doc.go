// Package services implements the repository façades. Each façade is
// a process-wide singleton bound to one store handle; reads are pure
// delegations to the query layer and writes complete asynchronously.
// Retry and backoff policy belongs to the presentation layer.
package services
