package authservice

import (
	"context"

	"lifehub/internal/models"
)

type UserAdder interface {
	AddUser(ctx context.Context, user models.User) error
}

type UserProvider interface {
	UserByLogin(ctx context.Context, login string) (*models.User, error)
}

type SessionStorer interface {
	SaveSession(ctx context.Context, sessionID string, userJSON string) error
	DeleteSession(ctx context.Context, sessionID string) error
	UserBySession(ctx context.Context, sessionID string) (string, error)
}
