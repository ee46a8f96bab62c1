package codeblocks

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-codeblocks/internal/logger"
	"github.com/MKhiriev/go-codeblocks/internal/mock"
	"github.com/MKhiriev/go-codeblocks/models"
)

type item struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestDataStorage(t *testing.T) {
	ctx := context.Background()
	s := NewDataStorage()

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, s.Set(ctx, "b", item{Name: "bee", Count: 2}))
	require.NoError(t, s.Set(ctx, "a", "plain"))

	var got item
	require.NoError(t, s.Get(ctx, "b", &got))
	assert.Equal(t, item{Name: "bee", Count: 2}, got)

	keys, err = s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, s.Delete(ctx, "a"))
	assert.ErrorIs(t, s.Delete(ctx, "a"), ErrNotFound)
	assert.ErrorIs(t, s.Get(ctx, "a", &got), ErrNotFound)

	assert.Error(t, s.Set(ctx, "bad", func() {}))
}

func TestDataStorage_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	s := NewDataStorage()

	value := map[string]int{"n": 1}
	require.NoError(t, s.Set(ctx, "m", value))
	value["n"] = 2

	var got map[string]int
	require.NoError(t, s.Get(ctx, "m", &got))
	assert.Equal(t, 1, got["n"])
}

func TestDataStorage_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewDataStorage()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := fmt.Sprintf("k%02d", i)
			assert.NoError(t, s.Set(ctx, key, i))
			var n int
			assert.NoError(t, s.Get(ctx, key, &n))
		}()
	}
	wg.Wait()

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 50)
}

func TestPersistentDataStorage(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockKVRepository(ctrl)
	s := newPersistentDataStorage(repo, logger.Nop())

	repo.EXPECT().Put(ctx, "item", []byte(`{"name":"bee","count":2}`)).Return(nil)
	require.NoError(t, s.Set(ctx, "item", item{Name: "bee", Count: 2}))

	repo.EXPECT().Get(ctx, "item").Return([]byte(`{"name":"bee","count":2}`), nil)
	var got item
	require.NoError(t, s.Get(ctx, "item", &got))
	assert.Equal(t, item{Name: "bee", Count: 2}, got)

	repo.EXPECT().Get(ctx, "missing").Return(nil, ErrNotFound)
	assert.ErrorIs(t, s.Get(ctx, "missing", &got), ErrNotFound)

	repo.EXPECT().Get(ctx, "broken").Return([]byte(`{`), nil)
	assert.Error(t, s.Get(ctx, "broken", &got))

	repo.EXPECT().Put(ctx, "item", gomock.Any()).Return(ErrTransient)
	assert.ErrorIs(t, s.Set(ctx, "item", 1), ErrTransient)

	repo.EXPECT().Delete(ctx, "item").Return(nil)
	require.NoError(t, s.Delete(ctx, "item"))

	repo.EXPECT().Keys(ctx).Return([]string{"a", "b"}, nil)
	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestBlobStorage(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockBlobRepository(ctrl)
	s := newBlobStorage(repo, logger.Nop())

	png := []byte("\x89PNG\r\n\x1a\n0000")

	repo.EXPECT().Create(ctx, models.Blob{Key: "cat", Data: png, ContentType: "image/png"}).Return(nil)
	require.NoError(t, s.Create(ctx, "cat", png))

	repo.EXPECT().Create(ctx, gomock.Any()).Return(ErrAlreadyExists)
	assert.ErrorIs(t, s.Create(ctx, "cat", png), ErrAlreadyExists)

	now := time.Now()
	repo.EXPECT().Get(ctx, "cat").Return(models.Blob{Key: "cat", Data: png, ContentType: "image/png", CreatedAt: now}, nil).Times(2)
	data, err := s.Retrieve(ctx, "cat")
	require.NoError(t, err)
	assert.Equal(t, png, data)

	blob, err := s.RetrieveBlob(ctx, "cat")
	require.NoError(t, err)
	assert.Equal(t, "image/png", blob.ContentType)

	repo.EXPECT().Get(ctx, "dog").Return(models.Blob{}, ErrNotFound)
	_, err = s.Retrieve(ctx, "dog")
	assert.ErrorIs(t, err, ErrNotFound)

	repo.EXPECT().Update(ctx, models.Blob{Key: "cat", Data: []byte("text"), ContentType: "text/plain; charset=utf-8"}).Return(nil)
	require.NoError(t, s.Update(ctx, "cat", []byte("text")))

	repo.EXPECT().Delete(ctx, "cat").Return(nil)
	require.NoError(t, s.Delete(ctx, "cat"))

	repo.EXPECT().List(ctx, "c").Return([]string{"cat"}, nil)
	keys, err := s.List(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, keys)
}
