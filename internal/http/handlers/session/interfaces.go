package session

import (
	"context"

	"lifehub/internal/models"
)

const pkg = "sessionHandler/"

type Authenticator interface {
	Login(ctx context.Context, login string, password string) (string, *models.User, error)
}

type SessionDeleter interface {
	Logout(ctx context.Context, token string) error
}
