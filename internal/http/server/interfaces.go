package server

import (
	"context"
	"io"

	"lifehub/internal/lifecycle"
	"lifehub/internal/models"
)

type AuthService interface {
	Register(ctx context.Context, login string, name string, password string) (*models.User, error)
	Login(ctx context.Context, login string, password string) (string, *models.User, error)
	UserByToken(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}

type NoteService interface {
	List(ctx context.Context, requester *models.User) ([]*models.Note, error)
	Create(ctx context.Context, requester *models.User, title string, content string) (*models.Note, error)
	Update(ctx context.Context, requester *models.User, noteID string, upd models.NoteUpdate) (*models.Note, error)
	Delete(ctx context.Context, requester *models.User, noteID string) error
	Count(ctx context.Context, requester *models.User) (int, error)
}

type TodoService interface {
	List(ctx context.Context, requester *models.User) ([]*models.Todo, error)
	Create(ctx context.Context, requester *models.User, text string) (*models.Todo, error)
	SetCompleted(ctx context.Context, requester *models.User, todoID string, completed bool) (*models.Todo, error)
	Delete(ctx context.Context, requester *models.User, todoID string) error
	Count(ctx context.Context, requester *models.User) (int, error)
}

type FileService interface {
	List(ctx context.Context, requester *models.User) ([]*models.File, error)
	Upload(ctx context.Context, requester *models.User, payload lifecycle.Payload) (*models.File, error)
	Delete(ctx context.Context, requester *models.User, fileID string) error
	Download(ctx context.Context, requester *models.User, fileID string) (*models.File, io.ReadCloser, error)
	Count(ctx context.Context, requester *models.User) (int, error)
}

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
