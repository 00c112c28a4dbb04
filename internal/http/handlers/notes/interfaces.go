package notes

import (
	"context"

	"lifehub/internal/models"
)

const pkg = "notesHandler/"

type NoteService interface {
	List(ctx context.Context, requester *models.User) ([]*models.Note, error)
	Create(ctx context.Context, requester *models.User, title string, content string) (*models.Note, error)
	Update(ctx context.Context, requester *models.User, noteID string, upd models.NoteUpdate) (*models.Note, error)
	Delete(ctx context.Context, requester *models.User, noteID string) error
	Count(ctx context.Context, requester *models.User) (int, error)
}
