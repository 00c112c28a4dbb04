package filerepo

import (
	"context"
	"testing"
	"time"

	"lifehub/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func fileColumns() []string {
	return []string{"id", "owner_id", "stored_name", "original_name", "mime", "path", "size", "created_at", "updated_at"}
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	now := time.Now()
	file := &models.File{
		ID:           "f1",
		OwnerID:      "u1",
		StoredName:   "1700000000000.pdf",
		OriginalName: "report.pdf",
		Mime:         "application/pdf",
		Path:         "/blobs/files/1700000000000.pdf",
		Size:         42,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO files").
		WithArgs(file.ID, file.OwnerID, file.StoredName, file.OriginalName, file.Mime, file.Path, file.Size, file.CreatedAt, file.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), file)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFileByID_NotFound(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT(.|\n)+FROM files").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(fileColumns()))

	file, err := repo.FileByID(context.Background(), "missing")
	assert.Nil(t, file)
	assert.ErrorIs(t, err, models.ErrFileNotFound)
}

func TestFileByID_Success(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	now := time.Now()

	mock.ExpectQuery("SELECT(.|\n)+FROM files").
		WithArgs("f1").
		WillReturnRows(sqlmock.NewRows(fileColumns()).
			AddRow("f1", "u1", "1700000000000.pdf", "report.pdf", "application/pdf", "/blobs/files/1700000000000.pdf", int64(42), now, now))

	file, err := repo.FileByID(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", file.OriginalName)
	assert.Equal(t, "/blobs/files/1700000000000.pdf", file.Path)
}

func TestListByOwner_Success(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	now := time.Now()

	mock.ExpectQuery("SELECT(.|\n)+FROM files(.|\n)+ORDER BY f.created_at ASC").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(fileColumns()).
			AddRow("f1", "u1", "a.pdf", "a.pdf", "application/pdf", "/blobs/files/a.pdf", int64(1), now, now).
			AddRow("f2", "u1", "b.pdf", "b.pdf", "application/pdf", "/blobs/files/b.pdf", int64(2), now, now))

	files, err := repo.ListByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "f1", files[0].ID)
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM files").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrFileNotFound)
}

func TestCountByOwner_Success(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

	count, err := repo.CountByOwner(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 9, count)
}
