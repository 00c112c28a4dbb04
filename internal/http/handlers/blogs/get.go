package blogs

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"lifehub/internal/dto"
	"lifehub/internal/models"
	utils "lifehub/internal/utils/http_errors"
)

// ListPublic serves the anonymous feed. It runs outside the auth middleware.
func ListPublic(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, bs BlogService) {
	op := pkg + "ListPublic"

	log = log.With(slog.String("op", op))

	rawBlogs, err := bs.ListPublic(ctx)
	if err != nil {
		log.Error("failed to list public blogs", slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	writeBlogList(log, w, rawBlogs)
}

func ListOwn(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, bs BlogService) {
	op := pkg + "ListOwn"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	rawBlogs, err := bs.ListOwn(ctx, requester)
	if err != nil {
		log.Error("failed to list blogs", slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	writeBlogList(log, w, rawBlogs)
}

func GetByID(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, blogID string, bs BlogService) {
	op := pkg + "GetByID"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	blog, err := bs.BlogByID(ctx, requester, blogID)
	if err != nil {
		log.Warn("failed to get blog", slog.String("blog_id", blogID), slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toResponse(blog)); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

// Image streams one blog image by position. It runs outside the auth
// middleware, like the feed, and resolves the stored path server-side.
func Image(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, blogID string, position string, bs BlogService) {
	op := pkg + "Image"

	log = log.With(slog.String("op", op))

	pos, err := strconv.Atoi(position)
	if err != nil || pos < 0 {
		log.Warn("invalid image position", slog.String("position", position))
		utils.WriteJSONError(w, http.StatusBadRequest, models.ErrValidation.Error())
		return
	}

	contentType, rc, err := bs.Image(ctx, blogID, pos)
	if err != nil {
		log.Warn("failed to get blog image", slog.String("blog_id", blogID), slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentType)

	if _, err := io.Copy(w, rc); err != nil {
		log.Error("failed to write image response", slog.String("error", err.Error()))
	}
}

func Count(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, bs BlogService) {
	op := pkg + "Count"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		utils.WriteJSONError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
		return
	}

	count, err := bs.Count(ctx, requester)
	if err != nil {
		log.Error("failed to count blogs", slog.String("error", err.Error()))
		utils.WriteDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.CountResponse{Count: count}); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func writeBlogList(log *slog.Logger, w http.ResponseWriter, rawBlogs []*models.Blog) {
	response := make([]dto.BlogResponse, 0, len(rawBlogs))

	for _, blog := range rawBlogs {
		response = append(response, toResponse(blog))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
