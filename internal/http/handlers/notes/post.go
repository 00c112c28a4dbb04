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

func Create(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, ns NoteService) {
	op := pkg + "Create"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	var req dto.CreateNoteRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode body", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrValidation.Error())
		return
	}
	defer r.Body.Close()

	note, err := ns.Create(ctx, requester, req.Title, req.Content)
	if err != nil {
		log.Warn("failed to create note", slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	response := dto.NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
