package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-codeblocks/internal/logger"
	"github.com/MKhiriev/go-codeblocks/models"
)

const (
	insertBlobSQL = "INSERT INTO blobs (object_key,data,content_type,created_at,updated_at) VALUES (?,?,?,?,?)"
	selectBlobSQL = "SELECT object_key, data, content_type, created_at, updated_at FROM blobs WHERE object_key = ?"
	updateBlobSQL = "UPDATE blobs SET data = ?, content_type = ?, updated_at = ? WHERE object_key = ?"
	deleteBlobSQL = "DELETE FROM blobs WHERE object_key = ?"
)

func newTestBlobRepo(t *testing.T, driver Driver) (BlobRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t, driver)
	return NewBlobRepository(db, logger.Nop()), mock
}

func TestBlobRepository_Create(t *testing.T) {
	blob := models.Blob{Key: "k", Data: []byte("data"), ContentType: "text/plain"}

	tests := []struct {
		name    string
		driver  Driver
		execErr error
		wantErr error
	}{
		{name: "success", driver: DriverSQLite},
		{
			name:    "sqlite unique violation",
			driver:  DriverSQLite,
			execErr: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey},
			wantErr: ErrAlreadyExists,
		},
		{
			name:    "postgres unique violation",
			driver:  DriverPostgres,
			execErr: &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			wantErr: ErrAlreadyExists,
		},
		{
			name:    "postgres deadlock is transient",
			driver:  DriverPostgres,
			execErr: &pgconn.PgError{Code: pgerrcode.DeadlockDetected},
			wantErr: ErrTransient,
		},
		{
			name:    "other error",
			driver:  DriverSQLite,
			execErr: errors.New("disk I/O"),
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestBlobRepo(t, tt.driver)

			exp := mock.ExpectExec("INSERT INTO blobs").
				WithArgs(blob.Key, blob.Data, blob.ContentType, sqlmock.AnyArg(), sqlmock.AnyArg())
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.Create(testContext(), blob)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBlobRepository_Get(t *testing.T) {
	repo, mock := newTestBlobRepo(t, DriverSQLite)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(blobColumns).AddRow("k", []byte("data"), "text/plain", now, now)
	mock.ExpectQuery(regexp.QuoteMeta(selectBlobSQL)).WithArgs("k").WillReturnRows(rows)

	blob, err := repo.Get(testContext(), "k")
	require.NoError(t, err)
	assert.Equal(t, "k", blob.Key)
	assert.Equal(t, []byte("data"), blob.Data)
	assert.Equal(t, "text/plain", blob.ContentType)
	assert.Equal(t, now, blob.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_Get_NullContentType(t *testing.T) {
	repo, mock := newTestBlobRepo(t, DriverSQLite)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(blobColumns).AddRow("k", []byte("data"), nil, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(selectBlobSQL)).WithArgs("k").WillReturnRows(rows)

	blob, err := repo.Get(testContext(), "k")
	require.NoError(t, err)
	assert.Empty(t, blob.ContentType)
}

func TestBlobRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestBlobRepo(t, DriverSQLite)

	mock.ExpectQuery(regexp.QuoteMeta(selectBlobSQL)).WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(blobColumns))

	_, err := repo.Get(testContext(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlobRepository_Get_QueryError(t *testing.T) {
	repo, mock := newTestBlobRepo(t, DriverSQLite)

	mock.ExpectQuery(regexp.QuoteMeta(selectBlobSQL)).WithArgs("k").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})

	_, err := repo.Get(testContext(), "k")
	assert.ErrorIs(t, err, ErrTransient)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestBlobRepository_Update(t *testing.T) {
	blob := models.Blob{Key: "k", Data: []byte("new"), ContentType: "text/plain"}

	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "updated", affected: 1},
		{name: "missing key", affected: 0, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestBlobRepo(t, DriverSQLite)
			mock.ExpectExec(regexp.QuoteMeta(updateBlobSQL)).
				WithArgs(blob.Data, blob.ContentType, sqlmock.AnyArg(), blob.Key).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.Update(testContext(), blob)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBlobRepository_Delete(t *testing.T) {
	repo, mock := newTestBlobRepo(t, DriverSQLite)

	mock.ExpectExec(regexp.QuoteMeta(deleteBlobSQL)).WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteBlobSQL)).WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(testContext(), "k"))
	assert.ErrorIs(t, repo.Delete(testContext(), "k"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_Delete_ExecError(t *testing.T) {
	repo, mock := newTestBlobRepo(t, DriverSQLite)

	mock.ExpectExec(regexp.QuoteMeta(deleteBlobSQL)).WithArgs("k").
		WillReturnError(errors.New("boom"))

	err := repo.Delete(testContext(), "k")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrTransient)
}

func TestBlobRepository_List(t *testing.T) {
	repo, mock := newTestBlobRepo(t, DriverSQLite)

	rows := sqlmock.NewRows([]string{"object_key"}).AddRow("thumbs/a").AddRow("thumbs/b")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT object_key FROM blobs WHERE substr(object_key, 1, ?) = ? ORDER BY object_key")).
		WithArgs(7, "thumbs/").
		WillReturnRows(rows)

	keys, err := repo.List(testContext(), "thumbs/")
	require.NoError(t, err)
	assert.Equal(t, []string{"thumbs/a", "thumbs/b"}, keys)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_List_Empty(t *testing.T) {
	repo, mock := newTestBlobRepo(t, DriverSQLite)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT object_key FROM blobs ORDER BY object_key")).
		WillReturnRows(sqlmock.NewRows([]string{"object_key"}))

	keys, err := repo.List(testContext(), "")
	require.NoError(t, err)
	assert.NotNil(t, keys)
	assert.Empty(t, keys)
}

func TestBlobRepository_List_RowError(t *testing.T) {
	repo, mock := newTestBlobRepo(t, DriverSQLite)

	rows := sqlmock.NewRows([]string{"object_key"}).AddRow("a").RowError(0, errors.New("row failed"))
	mock.ExpectQuery("SELECT object_key FROM blobs").WillReturnRows(rows)

	_, err := repo.List(testContext(), "")
	assert.ErrorIs(t, err, ErrScanningRows)
}
