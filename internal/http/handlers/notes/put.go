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

func Update(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, noteID string, ns NoteService) {
	op := pkg + "Update"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	var req dto.UpdateNoteRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode body", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrValidation.Error())
		return
	}
	defer r.Body.Close()

	note, err := ns.Update(ctx, requester, noteID, models.NoteUpdate{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		log.Warn("failed to update note", slog.String("note_id", noteID), slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

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
