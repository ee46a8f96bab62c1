package store

import (
	"context"

	"github.com/MKhiriev/go-codeblocks/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BlobRepository persists opaque byte blobs addressed by a string key.
type BlobRepository interface {
	Create(ctx context.Context, blob models.Blob) error
	Get(ctx context.Context, key string) (models.Blob, error)
	Update(ctx context.Context, blob models.Blob) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]string, error)
}

// KVRepository persists encoded values addressed by a string key.
type KVRepository interface {
	Put(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// ErrorClassificator inspects driver errors so repositories can translate
// them into the sentinel errors of this package.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
