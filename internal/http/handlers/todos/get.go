package todos

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"lifehub/internal/dto"
	"lifehub/internal/models"
	utils "lifehub/internal/utils/http_errors"
)

func List(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, ts TodoService) {
	op := pkg + "List"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	rawTodos, err := ts.List(ctx, requester)
	if err != nil {
		log.Error("failed to list todos", slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	response := make([]dto.TodoResponse, 0, len(rawTodos))

	for _, todo := range rawTodos {
		response = append(response, dto.TodoResponse{
			ID:        todo.ID,
			Text:      todo.Text,
			Completed: todo.Completed,
			CreatedAt: todo.CreatedAt,
			UpdatedAt: todo.UpdatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func Count(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, ts TodoService) {
	op := pkg + "Count"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	count, err := ts.Count(ctx, requester)
	if err != nil {
		log.Error("failed to count todos", slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.CountResponse{Count: count}); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
