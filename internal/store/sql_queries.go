package store

import (
	"time"
	"unicode/utf8"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-codeblocks/models"
)

const (
	blobsTable = "blobs"
	kvTable    = "kv_store"
)

var blobColumns = []string{"object_key", "data", "content_type", "created_at", "updated_at"}

func buildInsertBlobQuery(b sq.StatementBuilderType, blob models.Blob) (string, []any, error) {
	return b.Insert(blobsTable).
		Columns(blobColumns...).
		Values(blob.Key, blob.Data, blob.ContentType, blob.CreatedAt, blob.UpdatedAt).
		ToSql()
}

func buildSelectBlobQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select(blobColumns...).
		From(blobsTable).
		Where(sq.Eq{"object_key": key}).
		ToSql()
}

func buildUpdateBlobQuery(b sq.StatementBuilderType, blob models.Blob) (string, []any, error) {
	return b.Update(blobsTable).
		Set("data", blob.Data).
		Set("content_type", blob.ContentType).
		Set("updated_at", blob.UpdatedAt).
		Where(sq.Eq{"object_key": blob.Key}).
		ToSql()
}

func buildDeleteBlobQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Delete(blobsTable).
		Where(sq.Eq{"object_key": key}).
		ToSql()
}

// buildListBlobKeysQuery selects keys starting with prefix; an empty prefix
// selects every key. The comparison is exact and case-sensitive on both
// dialects, so LIKE is not used.
func buildListBlobKeysQuery(b sq.StatementBuilderType, prefix string) (string, []any, error) {
	query := b.Select("object_key").From(blobsTable).OrderBy("object_key")
	if prefix != "" {
		query = query.Where(sq.Expr("substr(object_key, 1, ?) = ?", utf8.RuneCountInString(prefix), prefix))
	}
	return query.ToSql()
}

func buildUpsertKVQuery(b sq.StatementBuilderType, key string, value []byte, now time.Time) (string, []any, error) {
	return b.Insert(kvTable).
		Columns("item_key", "value", "updated_at").
		Values(key, value, now).
		Suffix("ON CONFLICT (item_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectKVQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select("value").
		From(kvTable).
		Where(sq.Eq{"item_key": key}).
		ToSql()
}

func buildDeleteKVQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Delete(kvTable).
		Where(sq.Eq{"item_key": key}).
		ToSql()
}

func buildSelectKVKeysQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("item_key").
		From(kvTable).
		OrderBy("item_key").
		ToSql()
}
