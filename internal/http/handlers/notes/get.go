package notes

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"lifehub/internal/dto"
	"lifehub/internal/models"
	utils "lifehub/internal/utils/http_errors"
)

func List(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, ns NoteService) {
	op := pkg + "List"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	rawNotes, err := ns.List(ctx, requester)
	if err != nil {
		log.Error("failed to list notes", slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	response := make([]dto.NoteResponse, 0, len(rawNotes))

	for _, note := range rawNotes {
		response = append(response, dto.NoteResponse{
			ID:        note.ID,
			Title:     note.Title,
			Content:   note.Content,
			CreatedAt: note.CreatedAt,
			UpdatedAt: note.UpdatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func Count(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, ns NoteService) {
	op := pkg + "Count"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	count, err := ns.Count(ctx, requester)
	if err != nil {
		log.Error("failed to count notes", slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.CountResponse{Count: count}); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
