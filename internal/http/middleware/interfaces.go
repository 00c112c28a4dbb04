package middleware

import (
	"context"

	"lifehub/internal/models"
)

const pkg = "middleware/"

type UserResolver interface {
	UserByToken(ctx context.Context, token string) (*models.User, error)
}
