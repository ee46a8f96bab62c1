package codeblocks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-codeblocks/internal/logger"
	"github.com/MKhiriev/go-codeblocks/internal/store"
)

// PersistentDataStorage is a [KeyValueStore] kept in the kv_store table of
// a SQL database, so values survive restarts.
type PersistentDataStorage struct {
	repo   store.KVRepository
	logger *logger.Logger
}

// NewPersistentDataStorage stores values in db. The migrations applied by
// OpenSQL create the table.
func NewPersistentDataStorage(db *SQL) *PersistentDataStorage {
	return newPersistentDataStorage(db.repos.KV, db.logger)
}

func newPersistentDataStorage(repo store.KVRepository, log *logger.Logger) *PersistentDataStorage {
	return &PersistentDataStorage{repo: repo, logger: log}
}

func (s *PersistentDataStorage) Set(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding value of %q: %w", key, err)
	}

	if err := s.repo.Put(ctx, key, encoded); err != nil {
		s.logger.Err(err).Str("func", "*PersistentDataStorage.Set").Str("key", key).Msg("error storing value")
		return err
	}
	return nil
}

func (s *PersistentDataStorage) Get(ctx context.Context, key string, out any) error {
	encoded, err := s.repo.Get(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(encoded, out); err != nil {
		return fmt.Errorf("error decoding value of %q: %w", key, err)
	}
	return nil
}

func (s *PersistentDataStorage) Delete(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}

func (s *PersistentDataStorage) Keys(ctx context.Context) ([]string, error) {
	return s.repo.Keys(ctx)
}
