package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-codeblocks/internal/logger"
	"github.com/MKhiriev/go-codeblocks/models"
)

// blobRepository is the SQL-backed implementation of [BlobRepository].
// Objects live in the "blobs" table keyed by object_key.
type blobRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBlobRepository constructs a [BlobRepository] on top of db.
func NewBlobRepository(db *DB, logger *logger.Logger) BlobRepository {
	logger.Debug().Msg("creating blob repository")
	return &blobRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new object stamped with the current time. An existing
// key yields [ErrAlreadyExists].
func (r *blobRepository) Create(ctx context.Context, blob models.Blob) error {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	blob.CreatedAt, blob.UpdatedAt = now, now

	query, args, err := buildInsertBlobQuery(r.db.Builder(), blob)
	if err != nil {
		log.Err(err).Str("func", "*blobRepository.Create").Msg("error building query")
		return ErrBuildingSQLQuery
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*blobRepository.Create").Str("key", blob.Key).Msg("error inserting blob")
		if r.db.isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return r.db.WrapError(ErrExecutingStatement, err)
	}

	return nil
}

// Get returns the object stored under key or [ErrNotFound].
func (r *blobRepository) Get(ctx context.Context, key string) (models.Blob, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBlobQuery(r.db.Builder(), key)
	if err != nil {
		log.Err(err).Str("func", "*blobRepository.Get").Msg("error building query")
		return models.Blob{}, ErrBuildingSQLQuery
	}

	var blob models.Blob
	var contentType sql.NullString
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&blob.Key, &blob.Data, &contentType, &blob.CreatedAt, &blob.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Blob{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*blobRepository.Get").Str("key", key).Msg("error scanning blob")
		return models.Blob{}, r.db.WrapError(ErrScanningRow, err)
	}
	blob.ContentType = contentType.String

	return blob, nil
}

// Update replaces the data and content type of an existing object and
// bumps its updated_at. A missing key yields [ErrNotFound].
func (r *blobRepository) Update(ctx context.Context, blob models.Blob) error {
	log := logger.FromContext(ctx)

	blob.UpdatedAt = time.Now().UTC()

	query, args, err := buildUpdateBlobQuery(r.db.Builder(), blob)
	if err != nil {
		log.Err(err).Str("func", "*blobRepository.Update").Msg("error building query")
		return ErrBuildingSQLQuery
	}

	return r.execAffectingOne(ctx, "*blobRepository.Update", blob.Key, query, args)
}

// Delete removes the object under key. A missing key yields [ErrNotFound].
func (r *blobRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBlobQuery(r.db.Builder(), key)
	if err != nil {
		log.Err(err).Str("func", "*blobRepository.Delete").Msg("error building query")
		return ErrBuildingSQLQuery
	}

	return r.execAffectingOne(ctx, "*blobRepository.Delete", key, query, args)
}

// List returns the keys starting with prefix in ascending order.
func (r *blobRepository) List(ctx context.Context, prefix string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBlobKeysQuery(r.db.Builder(), prefix)
	if err != nil {
		log.Err(err).Str("func", "*blobRepository.List").Msg("error building query")
		return nil, ErrBuildingSQLQuery
	}

	return queryKeys(ctx, r.db, query, args)
}

func (r *blobRepository) execAffectingOne(ctx context.Context, fn, key, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Str("key", key).Msg("error executing statement")
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

// queryKeys runs a single-column key query and collects the results.
func queryKeys(ctx context.Context, db *DB, query string, args []any) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, db.WrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, db.WrapError(ErrScanningRows, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, db.WrapError(ErrScanningRows, err)
	}

	return keys, nil
}
