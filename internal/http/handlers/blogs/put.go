package blogs

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"lifehub/internal/models"
	utils "lifehub/internal/utils/http_errors"
)

// Update merges title/content; when the request carries images they replace
// the existing set wholesale.
func Update(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, blogID string, bs BlogService) {
	op := pkg + "Update"

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

	var upd models.BlogUpdate

	if values, ok := r.MultipartForm.Value["title"]; ok && len(values) > 0 {
		upd.Title = &values[0]
	}
	if values, ok := r.MultipartForm.Value["content"]; ok && len(values) > 0 {
		upd.Content = &values[0]
	}

	images, closeImages, err := imagePayloads(r)
	if err != nil {
		log.Warn("failed to open image part", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadRequest, "failed to read image part")
		return
	}
	defer closeImages()

	blog, err := bs.Update(ctx, requester, blogID, upd, images)
	if err != nil {
		log.Warn("failed to update blog", slog.String("blog_id", blogID), slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toResponse(blog)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
