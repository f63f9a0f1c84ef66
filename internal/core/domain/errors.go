package domain

import "errors"

// Domain errors represent persistence-layer failures.
// Query and façade layers propagate them unchanged; retry policy
// belongs to the caller.
var (
	// ErrNotFound indicates an operation addressed a row by identity
	// and no such row exists. Single-row reads do not return it; a
	// get-by-id miss is an empty result, not a failure.
	ErrNotFound = errors.New("not found")

	// ErrConstraint indicates a write violated a foreign-key or
	// uniqueness constraint, e.g. a planting whose plant ID has no
	// matching catalog row.
	ErrConstraint = errors.New("constraint violation")

	// ErrTxFailed indicates a transaction aborted and rolled back.
	// No partial effects of the transaction are visible to readers.
	ErrTxFailed = errors.New("transaction failed")

	// ErrInit indicates store construction failed, e.g. an ill-formed
	// schema or a schema version mismatch. Every caller blocked on the
	// same build attempt receives the same failure, and a later call
	// may retry the build.
	ErrInit = errors.New("store initialization failed")

	// ErrInvalidInput indicates malformed input, e.g. an empty plant ID.
	ErrInvalidInput = errors.New("invalid input")
)
