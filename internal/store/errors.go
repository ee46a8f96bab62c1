package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmptyDSN is returned by Connect when no DSN is configured.
	ErrEmptyDSN = errors.New("database DSN is empty")

	// ErrNotFound is returned when the requested key does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when an insert hits an existing key.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrTransient wraps driver errors classified as [Retryable]; the same
	// call may succeed if attempted again.
	ErrTransient = errors.New("transient database error")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
