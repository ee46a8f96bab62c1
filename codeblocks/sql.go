package codeblocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-codeblocks/internal/config"
	"github.com/MKhiriev/go-codeblocks/internal/logger"
	"github.com/MKhiriev/go-codeblocks/internal/store"
)

// SQL is the relational database code block. Postgres DSNs
// ("postgres://", "postgresql://") are opened with pgx, anything else as a
// SQLite database.
type SQL struct {
	db     *store.DB
	repos  *store.Repositories
	logger *logger.Logger
}

// OpenSQL connects to dsn and applies the migrations of the storage code
// blocks.
func OpenSQL(ctx context.Context, dsn string) (*SQL, error) {
	return openSQL(ctx, dsn, logger.NewLogger("sql"))
}

// OpenSQLFromConfiguration is OpenSQL with the configured DSN.
func OpenSQLFromConfiguration(ctx context.Context, cfg *Configuration) (*SQL, error) {
	return openSQL(ctx, cfg.DatabaseDSN(), logger.NewLogger("sql").WithDebug(cfg.Debug()))
}

func openSQL(ctx context.Context, dsn string, log *logger.Logger) (*SQL, error) {
	db, err := store.Connect(ctx, config.DB{DSN: dsn}, log)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return newSQL(db, log), nil
}

func newSQL(db *store.DB, log *logger.Logger) *SQL {
	return &SQL{
		db:     db,
		repos:  store.NewRepositories(db, log),
		logger: log,
	}
}

// DB returns the underlying connection pool.
func (s *SQL) DB() *sql.DB {
	return s.db.DB
}

// Builder returns a squirrel statement builder with the placeholder format
// of the database.
func (s *SQL) Builder() sq.StatementBuilderType {
	return s.db.Builder()
}

// Exec runs an INSERT, UPDATE or DELETE statement.
func (s *SQL) Exec(ctx context.Context, query sq.Sqlizer) (sql.Result, error) {
	statement, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrBuildingSQLQuery, err)
	}

	result, err := s.db.ExecContext(ctx, statement, args...)
	if err != nil {
		return nil, s.db.WrapError(store.ErrExecutingStatement, err)
	}
	return result, nil
}

// Query runs a SELECT statement. The caller closes the rows.
func (s *SQL) Query(ctx context.Context, query sq.Sqlizer) (*sql.Rows, error) {
	statement, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, statement, args...)
	if err != nil {
		return nil, s.db.WrapError(store.ErrExecutingQuery, err)
	}
	return rows, nil
}

// QueryRow runs a SELECT statement expected to return at most one row and
// scans it into dest. It returns ErrNotFound when there is no row.
func (s *SQL) QueryRow(ctx context.Context, query sq.Sqlizer, dest ...any) error {
	statement, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrBuildingSQLQuery, err)
	}

	err = s.db.QueryRowContext(ctx, statement, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return s.db.WrapError(store.ErrScanningRow, err)
	}
	return nil
}

// Close closes the connection pool.
func (s *SQL) Close() error {
	return s.db.Close()
}
