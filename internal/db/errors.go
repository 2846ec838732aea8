package db

import (
	"errors"

	"github.com/mattn/go-sqlite3"
	"modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

// QueryError is returned when the engine refuses to run a statement. Err is
// the engine's own error.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return "query failed: " + e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// EngineMessage returns the engine's error text when err wraps a QueryError,
// otherwise err.Error().
func EngineMessage(err error) string {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Err.Error()
	}
	return err.Error()
}

// IsConstraintViolation reports whether err is a UNIQUE, PRIMARY KEY, NOT
// NULL or other constraint failure raised by either driver.
func IsConstraintViolation(err error) bool {
	var mattnErr sqlite3.Error
	if errors.As(err, &mattnErr) {
		return mattnErr.Code == sqlite3.ErrConstraint
	}

	var moderncErr *sqlite.Error
	if errors.As(err, &moderncErr) {
		return moderncErr.Code()&0xff == sqlitelib.SQLITE_CONSTRAINT
	}

	return false
}
