package todoservice

import (
	"context"

	"lifehub/internal/models"
)

type TodoRepository interface {
	Create(ctx context.Context, todo *models.Todo) error
	TodoByID(ctx context.Context, id string) (*models.Todo, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Todo, error)
	SetCompleted(ctx context.Context, id string, completed bool) (*models.Todo, error)
	Delete(ctx context.Context, id string) error
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}

type CountCache interface {
	Count(ctx context.Context, resource string, ownerID string) (int, bool, error)
	SetCount(ctx context.Context, resource string, ownerID string, count int) error
	Invalidate(ctx context.Context, resource string, ownerID string) error
}
