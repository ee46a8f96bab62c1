package codeblocks

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
)

// KeyValueStore stores JSON encodable values under string keys.
type KeyValueStore interface {
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value any) error
	// Get decodes the value stored under key into out. It returns
	// ErrNotFound for unknown keys.
	Get(ctx context.Context, key string, out any) error
	// Delete removes key. It returns ErrNotFound for unknown keys.
	Delete(ctx context.Context, key string) error
	// Keys returns the stored keys in ascending order.
	Keys(ctx context.Context) ([]string, error)
}

// DataStorage is an in-process [KeyValueStore]. Values are kept JSON
// encoded so callers never share memory with the store. It is safe for
// concurrent use and empty when the process starts.
type DataStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewDataStorage returns an empty DataStorage.
func NewDataStorage() *DataStorage {
	return &DataStorage{data: make(map[string][]byte)}
}

func (s *DataStorage) Set(_ context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding value of %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = encoded

	return nil
}

func (s *DataStorage) Get(_ context.Context, key string, out any) error {
	s.mu.RLock()
	encoded, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	if err := json.Unmarshal(encoded, out); err != nil {
		return fmt.Errorf("error decoding value of %q: %w", key, err)
	}
	return nil
}

func (s *DataStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	delete(s.data, key)

	return nil
}

func (s *DataStorage) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return keys, nil
}
