package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-codeblocks/internal/logger"
)

// kvRepository is the SQL-backed implementation of [KVRepository].
// Values live in the "kv_store" table keyed by item_key.
type kvRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewKVRepository constructs a [KVRepository] on top of db.
func NewKVRepository(db *DB, logger *logger.Logger) KVRepository {
	logger.Debug().Msg("creating key/value repository")
	return &kvRepository{
		db:     db,
		logger: logger,
	}
}

// Put inserts or overwrites the value stored under key.
func (r *kvRepository) Put(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertKVQuery(r.db.Builder(), key, value, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*kvRepository.Put").Msg("error building query")
		return ErrBuildingSQLQuery
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*kvRepository.Put").Str("key", key).Msg("error upserting value")
		return r.db.WrapError(ErrExecutingStatement, err)
	}

	return nil
}

// Get returns the value stored under key or [ErrNotFound].
func (r *kvRepository) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectKVQuery(r.db.Builder(), key)
	if err != nil {
		log.Err(err).Str("func", "*kvRepository.Get").Msg("error building query")
		return nil, ErrBuildingSQLQuery
	}

	var value []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*kvRepository.Get").Str("key", key).Msg("error scanning value")
		return nil, r.db.WrapError(ErrScanningRow, err)
	}

	return value, nil
}

// Delete removes key. A missing key yields [ErrNotFound].
func (r *kvRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteKVQuery(r.db.Builder(), key)
	if err != nil {
		log.Err(err).Str("func", "*kvRepository.Delete").Msg("error building query")
		return ErrBuildingSQLQuery
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*kvRepository.Delete").Str("key", key).Msg("error deleting value")
		return r.db.WrapError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.WrapError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Keys lists every stored key in ascending order.
func (r *kvRepository) Keys(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectKVKeysQuery(r.db.Builder())
	if err != nil {
		log.Err(err).Str("func", "*kvRepository.Keys").Msg("error building query")
		return nil, ErrBuildingSQLQuery
	}

	return queryKeys(ctx, r.db, query, args)
}
