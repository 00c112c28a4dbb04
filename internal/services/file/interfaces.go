package fileservice

import (
	"context"
	"io"

	"lifehub/internal/lifecycle"
	"lifehub/internal/models"
)

type FileRepository interface {
	Create(ctx context.Context, file *models.File) error
	FileByID(ctx context.Context, id string) (*models.File, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.File, error)
	Delete(ctx context.Context, id string) error
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}

type Lifecycle interface {
	StoreFile(p lifecycle.Payload) (*lifecycle.StoredBlob, error)
	RemoveFile(path string) error
	Open(path string) (io.ReadCloser, error)
}

type CountCache interface {
	Count(ctx context.Context, resource string, ownerID string) (int, bool, error)
	SetCount(ctx context.Context, resource string, ownerID string, count int) error
	Invalidate(ctx context.Context, resource string, ownerID string) error
}
