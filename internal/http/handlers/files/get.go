package files

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"lifehub/internal/dto"
	"lifehub/internal/models"
	utils "lifehub/internal/utils/http_errors"
)

func List(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, fs FileService) {
	op := pkg + "List"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	rawFiles, err := fs.List(ctx, requester)
	if err != nil {
		log.Error("failed to list files", slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	response := make([]dto.FileResponse, 0, len(rawFiles))

	for _, file := range rawFiles {
		response = append(response, dto.FileResponse{
			ID:           file.ID,
			StoredName:   file.StoredName,
			OriginalName: file.OriginalName,
			Mime:         file.Mime,
			Size:         file.Size,
			CreatedAt:    file.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

// Download streams the blob with the original upload name as the suggested
// client-side filename.
func Download(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, fileID string, fs FileService) {
	op := pkg + "Download"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	file, rc, err := fs.Download(ctx, requester, fileID)
	if err != nil {
		log.Warn("failed to download file", slog.String("file_id", fileID), slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.OriginalName))
	w.Header().Set("Content-Type", file.Mime)
	w.Header().Set("Content-Length", strconv.FormatInt(file.Size, 10))

	if _, err := io.Copy(w, rc); err != nil {
		log.Error("failed to write file response", slog.String("error", err.Error()))
	}
}

func Count(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, fs FileService) {
	op := pkg + "Count"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	count, err := fs.Count(ctx, requester)
	if err != nil {
		log.Error("failed to count files", slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.CountResponse{Count: count}); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
