package notes

import (
	"context"
	"log/slog"
	"net/http"

	"lifehub/internal/models"
	utils "lifehub/internal/utils/http_errors"
)

func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, noteID string, ns NoteService) {
	op := pkg + "Delete"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	if err := ns.Delete(ctx, requester, noteID); err != nil {
		log.Warn("failed to delete note", slog.String("note_id", noteID), slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
