package files

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"lifehub/internal/dto"
	"lifehub/internal/lifecycle"
	"lifehub/internal/models"
	utils "lifehub/internal/utils/http_errors"
)

func Upload(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, fs FileService) {
	op := pkg + "Upload"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		log.Warn("failed to parse multipart form", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	part, header, err := r.FormFile("file")
	if err != nil {
		log.Warn("missing file part", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, "missing file part")
		return
	}
	defer part.Close()

	payload := lifecycle.Payload{
		OriginalName: header.Filename,
		Mime:         header.Header.Get("Content-Type"),
		Size:         header.Size,
		Content:      part,
	}

	file, err := fs.Upload(ctx, requester, payload)
	if err != nil {
		log.Warn("failed to upload file", slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	response := dto.FileResponse{
		ID:           file.ID,
		StoredName:   file.StoredName,
		OriginalName: file.OriginalName,
		Mime:         file.Mime,
		Size:         file.Size,
		CreatedAt:    file.CreatedAt,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
