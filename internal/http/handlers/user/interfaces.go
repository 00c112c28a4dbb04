package user

import (
	"context"

	"lifehub/internal/models"
)

const pkg = "userHandler/"

type UserRegistrar interface {
	Register(ctx context.Context, login string, name string, password string) (*models.User, error)
}
