package sqlite

import (
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/verdant-labs/gardenlog/internal/core/domain"
)

// storeErr maps a driver-level failure onto the domain taxonomy and
// adds the failing operation. Constraint violations (foreign key,
// uniqueness) become domain.ErrConstraint; everything else is wrapped
// unchanged.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if isConstraint(err) {
		return fmt.Errorf("%s: %w (%v)", op, domain.ErrConstraint, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// txErr marks a failure that aborted a transaction. The rollback has
// already happened; no partial effect is visible to readers.
func txErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if isConstraint(err) {
		return fmt.Errorf("%s: %w (%v)", op, domain.ErrConstraint, err)
	}
	return fmt.Errorf("%s: %w (%v)", op, domain.ErrTxFailed, err)
}

// isConstraint reports whether err is any SQLITE_CONSTRAINT_* code.
func isConstraint(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code()&0xFF == sqlite3.SQLITE_CONSTRAINT
}
