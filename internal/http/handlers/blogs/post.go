package blogs

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"lifehub/internal/models"
	utils "lifehub/internal/utils/http_errors"
)

func Create(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, bs BlogService) {
	op := pkg + "Create"

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

	title := r.FormValue("title")
	content := r.FormValue("content")

	images, closeImages, err := imagePayloads(r)
	if err != nil {
		log.Warn("failed to open image part", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, "failed to read image part")
		return
	}
	defer closeImages()

	blog, err := bs.Create(ctx, requester, title, content, images)
	if err != nil {
		log.Warn("failed to create blog", slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(blog)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
