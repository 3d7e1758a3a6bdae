package sqlstore

import "strconv"

// Dialect captures the few differences between the supported SQL backends.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// DialectFor maps a database driver name to its dialect. Unknown names use SQLite.
func DialectFor(driver string) Dialect {
	if driver == "postgres" {
		return Postgres
	}
	return SQLite
}

// bind returns the placeholder for the n-th (1-based) argument.
func (d Dialect) bind(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?" + strconv.Itoa(n)
}

// unboundedLimit is used when an offset is given without a limit.
func (d Dialect) unboundedLimit() string {
	if d == Postgres {
		return "ALL"
	}
	return "-1"
}

// lower folds col for case-insensitive matching. PostgreSQL's LOWER is
// Unicode aware; SQLite needs the registered fold function.
func (d Dialect) lower(col string) string {
	if d == Postgres {
		return "LOWER(" + col + ")"
	}
	return foldFunc + "(" + col + ")"
}
