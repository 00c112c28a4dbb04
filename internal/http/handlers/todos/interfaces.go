package todos

import (
	"context"

	"lifehub/internal/models"
)

const pkg = "todosHandler/"

type TodoService interface {
	List(ctx context.Context, requester *models.User) ([]*models.Todo, error)
	Create(ctx context.Context, requester *models.User, text string) (*models.Todo, error)
	SetCompleted(ctx context.Context, requester *models.User, todoID string, completed bool) (*models.Todo, error)
	Delete(ctx context.Context, requester *models.User, todoID string) error
	Count(ctx context.Context, requester *models.User) (int, error)
}
