package files

import (
	"context"
	"log/slog"
	"net/http"

	"lifehub/internal/models"
	utils "lifehub/internal/utils/http_errors"
)

// Delete removes blob then row; a blob failure keeps the row and reports 500
// so the client can retry.
func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, fileID string, fs FileService) {
	op := pkg + "Delete"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	if err := fs.Delete(ctx, requester, fileID); err != nil {
		log.Warn("failed to delete file", slog.String("file_id", fileID), slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
