package postgres

import (
	"database/sql"
	"errors"
)

// isNotFound reports whether a query came back empty, so repositories
// can answer with (zero, false, nil) instead of an error.
func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
