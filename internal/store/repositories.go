package store

import "github.com/MKhiriev/go-codeblocks/internal/logger"

// Repositories groups the SQL-backed repositories sharing one connection.
type Repositories struct {
	Blobs BlobRepository
	KV    KVRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		Blobs: NewBlobRepository(db, log),
		KV:    NewKVRepository(db, log),
	}
}
