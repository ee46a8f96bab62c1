package codeblocks

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-codeblocks/internal/logger"
	"github.com/MKhiriev/go-codeblocks/internal/store"
	"github.com/MKhiriev/go-codeblocks/models"
)

// BlobStorage stores byte blobs under string keys in the blobs table of a
// SQL database.
type BlobStorage struct {
	repo   store.BlobRepository
	logger *logger.Logger
}

// NewBlobStorage stores blobs in db. The migrations applied by OpenSQL
// create the table.
func NewBlobStorage(db *SQL) *BlobStorage {
	return newBlobStorage(db.repos.Blobs, db.logger)
}

func newBlobStorage(repo store.BlobRepository, log *logger.Logger) *BlobStorage {
	return &BlobStorage{repo: repo, logger: log}
}

// Create stores data under a new key. It returns ErrAlreadyExists when the
// key is taken.
func (s *BlobStorage) Create(ctx context.Context, key string, data []byte) error {
	return s.repo.Create(ctx, models.Blob{
		Key:         key,
		Data:        data,
		ContentType: http.DetectContentType(data),
	})
}

// Retrieve returns the data stored under key, or ErrNotFound.
func (s *BlobStorage) Retrieve(ctx context.Context, key string) ([]byte, error) {
	blob, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return blob.Data, nil
}

// RetrieveBlob returns the blob stored under key with its metadata, or
// ErrNotFound.
func (s *BlobStorage) RetrieveBlob(ctx context.Context, key string) (models.Blob, error) {
	return s.repo.Get(ctx, key)
}

// Update replaces the data of an existing key, or returns ErrNotFound.
func (s *BlobStorage) Update(ctx context.Context, key string, data []byte) error {
	return s.repo.Update(ctx, models.Blob{
		Key:         key,
		Data:        data,
		ContentType: http.DetectContentType(data),
	})
}

// Delete removes key, or returns ErrNotFound.
func (s *BlobStorage) Delete(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}

// List returns the keys starting with prefix in ascending order. An empty
// prefix lists every key.
func (s *BlobStorage) List(ctx context.Context, prefix string) ([]string, error) {
	return s.repo.List(ctx, prefix)
}
