package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-codeblocks/internal/config"
	"github.com/MKhiriev/go-codeblocks/internal/logger"
	"github.com/MKhiriev/go-codeblocks/migrations"
)

// Driver is the database/sql driver name a DSN is opened with.
type Driver string

const (
	DriverPostgres Driver = "pgx"
	DriverSQLite   Driver = "sqlite3"
)

// DB wraps *sql.DB with the driver-specific query builder and error
// classifier used by the repositories.
type DB struct {
	*sql.DB
	driver             Driver
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened connection. It is used by Connect and by
// callers that manage the *sql.DB themselves (tests, custom pools).
func NewDB(conn *sql.DB, driver Driver, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case DriverPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Connect opens the database described by cfg. Postgres DSNs go through
// pgx, everything else is opened as a SQLite database.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.DSN == "" {
		return nil, ErrEmptyDSN
	}

	switch DetectDriver(cfg.DSN) {
	case DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

// DetectDriver picks the driver for dsn by its scheme.
func DetectDriver(dsn string) Driver {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// Driver reports the driver the connection was opened with.
func (db *DB) Driver() Driver {
	return db.driver
}

// Builder returns a squirrel statement builder using the placeholder format
// of the underlying driver.
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, string(db.driver)); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}
	return nil
}

// WrapError attaches op to a driver error and marks it with [ErrTransient]
// when the classifier considers it retryable.
func (db *DB) WrapError(op error, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrTransient, op, err)
	}
	return fmt.Errorf("%w: %w", op, err)
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}
