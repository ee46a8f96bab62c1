package codeblocks

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQL {
	t.Helper()
	db, err := OpenSQL(context.Background(), filepath.Join(t.TempDir(), "codeblocks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBlobStorage_SQLite_List(t *testing.T) {
	ctx := context.Background()
	blobs := NewBlobStorage(openTestSQLite(t))

	for _, key := range []string{"a_b/1", "ab/2", "axb/3", "A/4", "a/5", "a%/6", "фото/7"} {
		require.NoError(t, blobs.Create(ctx, key, []byte(key)))
	}

	tests := []struct {
		prefix string
		want   []string
	}{
		{prefix: "", want: []string{"A/4", "a%/6", "a/5", "a_b/1", "ab/2", "axb/3", "фото/7"}},
		{prefix: "a_b", want: []string{"a_b/1"}},
		{prefix: "a%", want: []string{"a%/6"}},
		{prefix: "A", want: []string{"A/4"}},
		{prefix: "a/", want: []string{"a/5"}},
		{prefix: "фото", want: []string{"фото/7"}},
		{prefix: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			keys, err := blobs.List(ctx, tt.prefix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, keys)
		})
	}
}

func TestBlobStorage_SQLite_Lifecycle(t *testing.T) {
	ctx := context.Background()
	blobs := NewBlobStorage(openTestSQLite(t))

	require.NoError(t, blobs.Create(ctx, "notes/1", []byte("first")))
	assert.ErrorIs(t, blobs.Create(ctx, "notes/1", []byte("again")), ErrAlreadyExists)

	created, err := blobs.RetrieveBlob(ctx, "notes/1")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), created.Data)
	assert.Equal(t, "text/plain; charset=utf-8", created.ContentType)
	assert.WithinDuration(t, time.Now(), created.CreatedAt, time.Minute)
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, blobs.Update(ctx, "notes/1", []byte("second")))

	updated, err := blobs.RetrieveBlob(ctx, "notes/1")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), updated.Data)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	assert.ErrorIs(t, blobs.Update(ctx, "notes/missing", []byte("x")), ErrNotFound)

	require.NoError(t, blobs.Delete(ctx, "notes/1"))
	assert.ErrorIs(t, blobs.Delete(ctx, "notes/1"), ErrNotFound)
	_, err = blobs.Retrieve(ctx, "notes/1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPersistentDataStorage_SQLite(t *testing.T) {
	ctx := context.Background()
	db := openTestSQLite(t)
	s := NewPersistentDataStorage(db)

	require.NoError(t, s.Set(ctx, "b", item{Name: "bee", Count: 1}))
	require.NoError(t, s.Set(ctx, "b", item{Name: "bee", Count: 2}))
	require.NoError(t, s.Set(ctx, "a", "plain"))

	var got item
	require.NoError(t, s.Get(ctx, "b", &got))
	assert.Equal(t, item{Name: "bee", Count: 2}, got)

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	var rows int
	require.NoError(t, db.QueryRow(ctx, sq.Select("count(*)").From("kv_store"), &rows))
	assert.Equal(t, 2, rows)

	require.NoError(t, s.Delete(ctx, "a"))
	assert.ErrorIs(t, s.Delete(ctx, "a"), ErrNotFound)
	assert.ErrorIs(t, s.Get(ctx, "a", &got), ErrNotFound)
}
