package files

import (
	"context"
	"io"

	"lifehub/internal/lifecycle"
	"lifehub/internal/models"
)

const pkg = "filesHandler/"

type FileService interface {
	List(ctx context.Context, requester *models.User) ([]*models.File, error)
	Upload(ctx context.Context, requester *models.User, payload lifecycle.Payload) (*models.File, error)
	Delete(ctx context.Context, requester *models.User, fileID string) error
	Download(ctx context.Context, requester *models.User, fileID string) (*models.File, io.ReadCloser, error)
	Count(ctx context.Context, requester *models.User) (int, error)
}
