package todorepo

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

func todoColumns() []string {
	return []string{"id", "owner_id", "text", "completed", "created_at", "updated_at"}
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	now := time.Now()
	todo := &models.Todo{
		ID:        "t1",
		OwnerID:   "u1",
		Text:      "buy milk",
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO todos").
		WithArgs(todo.ID, todo.OwnerID, todo.Text, todo.Completed, todo.CreatedAt, todo.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), todo)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByOwner_OrderedOldestFirst(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	now := time.Now()

	mock.ExpectQuery("SELECT(.|\n)+FROM todos(.|\n)+ORDER BY t.created_at ASC").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(todoColumns()).
			AddRow("t1", "u1", "older", false, now.Add(-time.Hour), now.Add(-time.Hour)).
			AddRow("t2", "u1", "newer", true, now, now))

	todos, err := repo.ListByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "t1", todos[0].ID)
	assert.True(t, todos[1].Completed)
}

func TestSetCompleted_Success(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	now := time.Now()

	mock.ExpectQuery("UPDATE todos SET").
		WithArgs("t1", true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(todoColumns()).
			AddRow("t1", "u1", "buy milk", true, now, now))

	todo, err := repo.SetCompleted(context.Background(), "t1", true)
	require.NoError(t, err)
	assert.True(t, todo.Completed)
	assert.Equal(t, "buy milk", todo.Text)
}

func TestSetCompleted_NotFound(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	mock.ExpectQuery("UPDATE todos SET").
		WithArgs("missing", true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(todoColumns()))

	todo, err := repo.SetCompleted(context.Background(), "missing", true)
	assert.Nil(t, todo)
	assert.ErrorIs(t, err, models.ErrTodoNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM todos").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrTodoNotFound)
}

func TestCountByOwner_Success(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountByOwner(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
