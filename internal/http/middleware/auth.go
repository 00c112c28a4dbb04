package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"lifehub/internal/models"
	utils "lifehub/internal/utils/http_errors"
)

// Auth resolves the bearer token into a user and stores it in the request
// context. Requests without a valid, unrevoked token never reach the handler.
func Auth(log *slog.Logger, resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			op := pkg + "Auth"

			log := log.With(slog.String("op", op))

			token, ok := bearerToken(r)
			if !ok {
				log.Warn("missing bearer token")
				utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
				return
			}

			requester, err := resolver.UserByToken(r.Context(), token)
			if err != nil {
				log.Warn("failed to resolve user by token", slog.String("error", err.Error()))
				utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
				return
			}

			ctx := context.WithValue(r.Context(), models.UserContextKey, requester)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", false
	}

	return token, true
}
