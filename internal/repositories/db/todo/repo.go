package todorepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lifehub/internal/entities"
	"lifehub/internal/models"

	"github.com/jmoiron/sqlx"
)

const pkg = "todoRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, todo *models.Todo) error {
	op := pkg + "Create"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (id, owner_id, text, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		todo.ID, todo.OwnerID, todo.Text, todo.Completed, todo.CreatedAt, todo.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) TodoByID(ctx context.Context, id string) (*models.Todo, error) {
	op := pkg + "TodoByID"

	rawTodo := entities.Todo{}

	err := r.db.GetContext(ctx, &rawTodo,
		`SELECT
			t.id AS id,
			t.owner_id AS owner_id,
			t.text AS text,
			t.completed AS completed,
			t.created_at AS created_at,
			t.updated_at AS updated_at
		FROM todos t
		WHERE t.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrTodoNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return todoFromEntity(&rawTodo), nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Todo, error) {
	op := pkg + "ListByOwner"

	rawTodos := make([]entities.Todo, 0)

	err := r.db.SelectContext(ctx, &rawTodos,
		`SELECT
			t.id AS id,
			t.owner_id AS owner_id,
			t.text AS text,
			t.completed AS completed,
			t.created_at AS created_at,
			t.updated_at AS updated_at
		FROM todos t
		WHERE t.owner_id = $1
		ORDER BY t.created_at ASC`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	todos := make([]*models.Todo, 0, len(rawTodos))

	for _, rawTodo := range rawTodos {
		todos = append(todos, todoFromEntity(&rawTodo))
	}

	return todos, nil
}

// SetCompleted is the only mutation a todo supports: text is fixed at
// creation time.
func (r *repository) SetCompleted(ctx context.Context, id string, completed bool) (*models.Todo, error) {
	op := pkg + "SetCompleted"

	rawTodo := entities.Todo{}

	err := r.db.GetContext(ctx, &rawTodo,
		`UPDATE todos SET
			completed = $2,
			updated_at = $3
		WHERE id = $1
		RETURNING id, owner_id, text, completed, created_at, updated_at`,
		id, completed, time.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrTodoNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return todoFromEntity(&rawTodo), nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	op := pkg + "Delete"

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM todos WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrTodoNotFound)
	}

	return nil
}

func (r *repository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	op := pkg + "CountByOwner"

	var count int

	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM todos WHERE owner_id = $1`,
		ownerID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func todoFromEntity(e *entities.Todo) *models.Todo {
	return &models.Todo{
		ID:        e.ID,
		OwnerID:   e.OwnerID,
		Text:      e.Text,
		Completed: e.Completed,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
