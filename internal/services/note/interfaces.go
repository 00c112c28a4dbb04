package noteservice

import (
	"context"

	"lifehub/internal/models"
)

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	NoteByID(ctx context.Context, id string) (*models.Note, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Note, error)
	Update(ctx context.Context, id string, upd models.NoteUpdate) (*models.Note, error)
	Delete(ctx context.Context, id string) error
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}

type CountCache interface {
	Count(ctx context.Context, resource string, ownerID string) (int, bool, error)
	SetCount(ctx context.Context, resource string, ownerID string, count int) error
	Invalidate(ctx context.Context, resource string, ownerID string) error
}
