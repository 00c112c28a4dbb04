package blogs

import (
	"context"
	"io"

	"lifehub/internal/lifecycle"
	"lifehub/internal/models"
)

const pkg = "blogsHandler/"

type BlogService interface {
	ListOwn(ctx context.Context, requester *models.User) ([]*models.Blog, error)
	ListPublic(ctx context.Context) ([]*models.Blog, error)
	BlogByID(ctx context.Context, requester *models.User, blogID string) (*models.Blog, error)
	Image(ctx context.Context, blogID string, position int) (string, io.ReadCloser, error)
	Create(ctx context.Context, requester *models.User, title string, content string, images []lifecycle.Payload) (*models.Blog, error)
	Update(ctx context.Context, requester *models.User, blogID string, upd models.BlogUpdate, images []lifecycle.Payload) (*models.Blog, error)
	Delete(ctx context.Context, requester *models.User, blogID string) error
	Count(ctx context.Context, requester *models.User) (int, error)
}
