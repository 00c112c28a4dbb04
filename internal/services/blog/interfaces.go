package blogservice

import (
	"context"
	"io"

	"lifehub/internal/lifecycle"
	"lifehub/internal/models"
)

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	BlogByID(ctx context.Context, id string) (*models.Blog, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Blog, error)
	ListAll(ctx context.Context) ([]*models.Blog, error)
	Update(ctx context.Context, id string, upd models.BlogUpdate, imagePaths []string) (*models.Blog, error)
	Delete(ctx context.Context, id string) error
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}

type Lifecycle interface {
	StoreImages(payloads []lifecycle.Payload) ([]lifecycle.StoredBlob, error)
	RemoveImages(paths []string)
	Open(path string) (io.ReadCloser, error)
}

type CountCache interface {
	Count(ctx context.Context, resource string, ownerID string) (int, bool, error)
	SetCount(ctx context.Context, resource string, ownerID string, count int) error
	Invalidate(ctx context.Context, resource string, ownerID string) error
}
