package sqlstore

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"docdesk/internal/apperr"
)

// classify turns store-enforced integrity failures (UNIQUE, CHECK, NOT NULL)
// into ConstraintViolation. Other errors are returned unchanged.
func classify(op string, err error) error {
	if err == nil || !isConstraint(err) {
		return err
	}
	return &apperr.Error{
		Kind:    apperr.KindConstraintViolation,
		Op:      op,
		Message: "constraint violated",
		Err:     err,
	}
}

func isConstraint(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		// class 23: integrity constraint violation
		return strings.HasPrefix(pe.Code, "23")
	}
	return false
}
